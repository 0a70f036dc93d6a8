package attendance

import (
	"context"
	"time"

	"github.com/humbingo/hrms-backend-go/internal/config"
	"github.com/humbingo/hrms-backend-go/internal/domain/attendance"
	"github.com/humbingo/hrms-backend-go/internal/domain/employee"
	"github.com/humbingo/hrms-backend-go/internal/pkg/sse"
	"github.com/humbingo/hrms-backend-go/internal/pkg/timeclock"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employeeRepo employee.EmployeeRepository
	events       *sse.Hub
	rules        timeclock.Rules
	hr           config.HRConfig

	// now is swapped in tests
	now func() time.Time
}

func NewAttendanceService(
	repo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	events *sse.Hub,
	hr config.HRConfig,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		employeeRepo:         employeeRepo,
		events:               events,
		rules: timeclock.Rules{
			PresentHours: hr.PresentThresholdHours,
			HalfDayHours: hr.HalfDayThresholdHours,
		},
		hr:  hr,
		now: time.Now,
	}
}

// publish pushes an event onto the live feed; a nil hub disables the feed.
func (s *AttendanceServiceImpl) publish(name string, resp attendance.AttendanceResponse) {
	if s.events != nil {
		s.events.Publish(sse.Event{Name: name, Data: resp})
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !emp.IsActive {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeInactive
	}

	now := s.now()
	today := dateOnly(now)

	existing, err := s.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	checkIn := now.Format(timeclock.Layout)
	att := attendance.Attendance{
		EmployeeID: employeeID,
		Date:       today,
		CheckIn:    &checkIn,
		Status:     string(timeclock.StatusCheckedIn),
	}

	created, err := s.AttendanceRepository.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created.EmployeeName = &emp.Name
	created.EmployeeCode = &emp.Code
	resp := toAttendanceResponse(created)
	s.publish("attendance.checked_in", resp)
	return resp, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	now := s.now()
	today := dateOnly(now)

	existing, err := s.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing == nil || existing.CheckIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if existing.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	checkOut := now.Format(timeclock.Layout)
	existing.CheckOut = &checkOut

	d, err := timeclock.Between(*existing.CheckIn, checkOut)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	totalHours := timeclock.FormatHMS(d)
	existing.TotalHours = &totalHours
	existing.Status = string(s.rules.Classify(timeclock.Hours(d), true, true))

	if err := s.AttendanceRepository.Update(ctx, *existing); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	resp := toAttendanceResponse(*existing)
	s.publish("attendance.checked_out", resp)
	return resp, nil
}

// MarkAttendance implements attendance.AttendanceService.
// A second write for the same employee and date overrides the stored day.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec := timeclock.Record{CheckIn: req.CheckIn, CheckOut: req.CheckOut}
	status, err := s.rules.ClassifyRecord(rec)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var totalHours *string
	if req.CheckIn != nil && req.CheckOut != nil {
		d, err := timeclock.Between(*req.CheckIn, *req.CheckOut)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		formatted := timeclock.FormatHMS(d)
		totalHours = &formatted
	}

	existing, err := s.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if existing != nil {
		existing.CheckIn = req.CheckIn
		existing.CheckOut = req.CheckOut
		existing.TotalHours = totalHours
		existing.Status = string(status)
		if err := s.AttendanceRepository.Update(ctx, *existing); err != nil {
			return attendance.AttendanceResponse{}, err
		}
		existing.EmployeeName = &emp.Name
		existing.EmployeeCode = &emp.Code
		resp := toAttendanceResponse(*existing)
		s.publish("attendance.marked", resp)
		return resp, nil
	}

	att := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		TotalHours: totalHours,
		Status:     string(status),
	}

	created, err := s.AttendanceRepository.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created.EmployeeName = &emp.Name
	created.EmployeeCode = &emp.Code
	resp := toAttendanceResponse(created)
	s.publish("attendance.marked", resp)
	return resp, nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := s.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toAttendanceResponse(att), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, int64, error) {
	atts, total, err := s.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(atts))
	for _, att := range atts {
		responses = append(responses, toAttendanceResponse(att))
	}
	return responses, total, nil
}

// GetMonthlySummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMonthlySummary(ctx context.Context, employeeID string, year, month, totalWorkingDays int) (attendance.MonthlySummaryResponse, error) {
	if totalWorkingDays < 1 {
		totalWorkingDays = s.hr.DefaultWorkingDays
	}
	if totalWorkingDays > 31 {
		totalWorkingDays = 31
	}

	records, err := s.ListByEmployeeMonth(ctx, employeeID, year, time.Month(month))
	if err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	tcRecords := make([]timeclock.Record, 0, len(records))
	for _, att := range records {
		tcRecords = append(tcRecords, timeclock.Record{
			CheckIn:    att.CheckIn,
			CheckOut:   att.CheckOut,
			TotalHours: att.TotalHours,
		})
	}

	summary, err := s.rules.Aggregate(tcRecords, totalWorkingDays)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	var totalHours float64
	for _, rec := range tcRecords {
		hours, err := rec.WorkedHours()
		if err != nil {
			return attendance.MonthlySummaryResponse{}, err
		}
		if hours > 0 {
			totalHours += hours
		}
	}

	return attendance.MonthlySummaryResponse{
		EmployeeID:       employeeID,
		Year:             year,
		Month:            month,
		TotalWorkingDays: totalWorkingDays,
		PresentDays:      summary.PresentDays,
		HalfDays:         summary.HalfDays,
		AbsentDays:       summary.AbsentDays,
		TotalHoursWorked: totalHours,
	}, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toAttendanceResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:         att.ID,
		EmployeeID: att.EmployeeID,
		Date:       att.Date.Format("2006-01-02"),
		CheckIn:    att.CheckIn,
		CheckOut:   att.CheckOut,
		TotalHours: att.TotalHours,
		Status:     att.Status,
		CreatedAt:  att.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  att.UpdatedAt.Format(time.RFC3339),
	}
	if att.EmployeeName != nil {
		resp.EmployeeName = *att.EmployeeName
	}
	if att.EmployeeCode != nil {
		resp.EmployeeCode = *att.EmployeeCode
	}
	return resp
}
