package timeclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBetween(t *testing.T) {
	d, err := Between("09:00:00", "16:30:00")
	require.NoError(t, err)
	assert.Equal(t, 7*time.Hour+30*time.Minute, d)

	d, err = Between("09:00:00", "09:00:00")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), d)

	// check-out before check-in stays negative, no midnight wrap
	d, err = Between("22:00:00", "06:00:00")
	require.NoError(t, err)
	assert.Equal(t, -16*time.Hour, d)

	_, err = Between("9am", "17:00:00")
	assert.Error(t, err)
}

func TestFormatHMS(t *testing.T) {
	assert.Equal(t, "7:30:00", FormatHMS(7*time.Hour+30*time.Minute))
	assert.Equal(t, "0:00:00", FormatHMS(0))
	assert.Equal(t, "0:05:09", FormatHMS(5*time.Minute+9*time.Second))
	assert.Equal(t, "-16:00:00", FormatHMS(-16*time.Hour))
}

func TestParseHMS(t *testing.T) {
	d, err := ParseHMS("7:30:00")
	require.NoError(t, err)
	assert.Equal(t, 7*time.Hour+30*time.Minute, d)

	d, err = ParseHMS("08:00:15")
	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour+15*time.Second, d)

	_, err = ParseHMS("7:61:00")
	assert.Error(t, err)

	_, err = ParseHMS("seven hours")
	assert.Error(t, err)
}

func TestClassifyBoundaries(t *testing.T) {
	rules := DefaultRules

	cases := []struct {
		name     string
		hours    float64
		hasIn    bool
		hasOut   bool
		expected Status
	}{
		{"exactly seven hours", 7.0, true, true, StatusPresent},
		{"just under seven hours", 6.0 + 59.0/60 + 59.0/3600, true, true, StatusHalfDay},
		{"exactly four hours", 4.0, true, true, StatusHalfDay},
		{"just under four hours", 3.999, true, true, StatusAbsent},
		{"zero hours", 0, true, true, StatusAbsent},
		{"negative hours", -16, true, true, StatusAbsent},
		{"well over seven", 10.5, true, true, StatusPresent},
		{"check-in only", 0, true, false, StatusCheckedIn},
		{"no punches", 0, false, false, StatusAbsent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, rules.Classify(tc.hours, tc.hasIn, tc.hasOut))
		})
	}
}

func TestClassifyRecord(t *testing.T) {
	rules := DefaultRules

	// full day via punches
	status, err := rules.ClassifyRecord(Record{
		CheckIn:  strPtr("09:00:00"),
		CheckOut: strPtr("16:30:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPresent, status)

	// equal punches worked zero hours
	status, err = rules.ClassifyRecord(Record{
		CheckIn:  strPtr("09:00:00"),
		CheckOut: strPtr("09:00:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, StatusAbsent, status)

	// precomputed total wins over punches
	status, err = rules.ClassifyRecord(Record{
		CheckIn:    strPtr("09:00:00"),
		CheckOut:   strPtr("10:00:00"),
		TotalHours: strPtr("8:00:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPresent, status)

	// missing total falls back to punch arithmetic
	status, err = rules.ClassifyRecord(Record{
		CheckIn:  strPtr("09:00:00"),
		CheckOut: strPtr("13:30:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, StatusHalfDay, status)

	// check-in without check-out is pending
	status, err = rules.ClassifyRecord(Record{CheckIn: strPtr("09:00:00")})
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedIn, status)
}

func TestAggregate(t *testing.T) {
	rules := DefaultRules
	records := []Record{
		{CheckIn: strPtr("09:00:00"), CheckOut: strPtr("17:00:00")}, // present
		{CheckIn: strPtr("09:00:00"), CheckOut: strPtr("16:00:00")}, // present
		{CheckIn: strPtr("09:00:00"), CheckOut: strPtr("13:30:00")}, // half
		{CheckIn: strPtr("09:00:00"), CheckOut: strPtr("10:00:00")}, // absent
		{CheckIn: strPtr("09:00:00")},                               // checked in, not counted
	}

	summary, err := rules.Aggregate(records, 26)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.PresentDays)
	assert.Equal(t, 1, summary.HalfDays)
	assert.Equal(t, 23, summary.AbsentDays)

	// counts always sum back to the configured working days
	assert.Equal(t, 26, summary.PresentDays+summary.HalfDays+summary.AbsentDays)
}

func TestAggregateNegativeRemainder(t *testing.T) {
	rules := DefaultRules
	var records []Record
	for i := 0; i < 10; i++ {
		records = append(records, Record{
			CheckIn:  strPtr("09:00:00"),
			CheckOut: strPtr("17:00:00"),
		})
	}

	summary, err := rules.Aggregate(records, 5)
	require.NoError(t, err)
	assert.Equal(t, 10, summary.PresentDays)
	assert.Equal(t, -5, summary.AbsentDays)
}

func TestAggregateEmpty(t *testing.T) {
	summary, err := DefaultRules.Aggregate(nil, 26)
	require.NoError(t, err)
	assert.Equal(t, Summary{PresentDays: 0, HalfDays: 0, AbsentDays: 26}, summary)
}

func TestCustomRules(t *testing.T) {
	rules := Rules{PresentHours: 8, HalfDayHours: 5}
	assert.Equal(t, StatusHalfDay, rules.Classify(7.5, true, true))
	assert.Equal(t, StatusPresent, rules.Classify(8, true, true))
	assert.Equal(t, StatusAbsent, rules.Classify(4.5, true, true))
}
