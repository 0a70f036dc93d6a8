// Package timeclock implements the attendance time arithmetic: elapsed
// duration between wall-clock check-in/check-out times, day classification
// against worked-hour thresholds, and monthly aggregation of daily records.
package timeclock

import (
	"fmt"
	"time"
)

// Layout is the wall-clock time-of-day format used on the wire and in storage.
const Layout = "15:04:05"

// Status is the classification of a single attendance day.
type Status string

const (
	StatusPresent   Status = "Present"
	StatusHalfDay   Status = "Half Day"
	StatusAbsent    Status = "Absent"
	StatusCheckedIn Status = "Checked In"
)

// Rules holds the worked-hour thresholds for day classification.
// A day is Present at >= PresentHours, Half Day at >= HalfDayHours.
type Rules struct {
	PresentHours float64
	HalfDayHours float64
}

// DefaultRules reflects the standard 7h/4h business thresholds.
var DefaultRules = Rules{PresentHours: 7, HalfDayHours: 4}

// ParseClock parses an HH:MM:SS time-of-day string.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: expected HH:MM:SS", s)
	}
	return t, nil
}

// Between returns checkOut - checkIn with both times placed on the same
// reference date. A check-out earlier than the check-in yields a negative
// duration; callers classify that as Absent rather than assuming an
// over-midnight shift.
func Between(checkIn, checkOut string) (time.Duration, error) {
	in, err := ParseClock(checkIn)
	if err != nil {
		return 0, err
	}
	out, err := ParseClock(checkOut)
	if err != nil {
		return 0, err
	}
	return out.Sub(in), nil
}

// Hours converts a duration to decimal hours for threshold comparison.
func Hours(d time.Duration) float64 {
	return d.Hours()
}

// FormatHMS renders a duration as H:MM:SS. Negative durations keep a
// leading minus on the hour component.
func FormatHMS(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%s%d:%02d:%02d", sign, total/3600, (total%3600)/60, total%60)
}

// ParseHMS parses an H:MM:SS (or HH:MM:SS) duration string back into a
// time.Duration. It is the inverse of FormatHMS for non-negative values.
func ParseHMS(s string) (time.Duration, error) {
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		return 0, fmt.Errorf("invalid duration %q: expected H:MM:SS", s)
	}
	if m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("invalid duration %q: minutes and seconds must be 0-59", s)
	}
	d := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second
	if h < 0 {
		d = time.Duration(h)*time.Hour - time.Duration(m)*time.Minute - time.Duration(sec)*time.Second
	}
	return d, nil
}

// Classify labels a day from its worked hours and which punches exist.
//
//	hours >= PresentHours            -> Present
//	HalfDayHours <= hours < Present  -> Half Day
//	check-in without check-out       -> Checked In (pending)
//	anything else                    -> Absent
func (r Rules) Classify(hours float64, hasCheckIn, hasCheckOut bool) Status {
	if hasCheckIn && !hasCheckOut {
		return StatusCheckedIn
	}
	if !hasCheckIn {
		return StatusAbsent
	}
	switch {
	case hours >= r.PresentHours:
		return StatusPresent
	case hours >= r.HalfDayHours:
		return StatusHalfDay
	default:
		return StatusAbsent
	}
}

// Record is one day of attendance input to Aggregate. TotalHours, when
// present, is a precomputed H:MM:SS duration; otherwise the duration is
// derived from the check-in/check-out pair.
type Record struct {
	CheckIn    *string
	CheckOut   *string
	TotalHours *string
}

// WorkedHours returns the decimal hours for a record, preferring the
// precomputed total and falling back to punch arithmetic.
func (rec Record) WorkedHours() (float64, error) {
	if rec.TotalHours != nil && *rec.TotalHours != "" {
		d, err := ParseHMS(*rec.TotalHours)
		if err != nil {
			return 0, err
		}
		return Hours(d), nil
	}
	if rec.CheckIn == nil || rec.CheckOut == nil {
		return 0, nil
	}
	d, err := Between(*rec.CheckIn, *rec.CheckOut)
	if err != nil {
		return 0, err
	}
	return Hours(d), nil
}

// Classify labels a single record under the rules.
func (r Rules) ClassifyRecord(rec Record) (Status, error) {
	hasIn := rec.CheckIn != nil && *rec.CheckIn != ""
	hasOut := rec.CheckOut != nil && *rec.CheckOut != ""
	hours, err := rec.WorkedHours()
	if err != nil {
		return "", err
	}
	return r.Classify(hours, hasIn, hasOut), nil
}

// Summary is the monthly attendance aggregate for one employee.
type Summary struct {
	PresentDays int
	HalfDays    int
	AbsentDays  int
}

// Aggregate counts present and half days over a month's records and derives
// absent days as the remainder of totalWorkingDays. The remainder can go
// negative when more days were worked than the configured working days;
// that is surfaced as-is rather than clamped.
func (r Rules) Aggregate(records []Record, totalWorkingDays int) (Summary, error) {
	var s Summary
	for _, rec := range records {
		status, err := r.ClassifyRecord(rec)
		if err != nil {
			return Summary{}, err
		}
		switch status {
		case StatusPresent:
			s.PresentDays++
		case StatusHalfDay:
			s.HalfDays++
		}
	}
	s.AbsentDays = totalWorkingDays - s.PresentDays - s.HalfDays
	return s, nil
}
