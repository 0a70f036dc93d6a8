package cron

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/humbingo/hrms-backend-go/internal/domain/attendance"
	"github.com/humbingo/hrms-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceRepo struct {
	records []attendance.Attendance
}

func (s *stubAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	att.ID = fmt.Sprintf("att-%d", len(s.records)+1)
	s.records = append(s.records, att)
	return att, nil
}

func (s *stubAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (s *stubAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	for _, att := range s.records {
		if att.EmployeeID == employeeID && att.Date.Equal(date) {
			found := att
			return &found, nil
		}
	}
	return nil, nil
}

func (s *stubAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	return nil
}

func (s *stubAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return s.records, int64(len(s.records)), nil
}

func (s *stubAttendanceRepo) ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Attendance, error) {
	return nil, nil
}

type stubEmployeeRepo struct {
	activeIDs []string
}

func (s *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) GetByCode(ctx context.Context, code string) (*employee.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }

func (s *stubEmployeeRepo) Deactivate(ctx context.Context, id string) error { return nil }

func (s *stubEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (s *stubEmployeeRepo) ListActiveIDs(ctx context.Context) ([]string, error) {
	return s.activeIDs, nil
}

func TestMarkAbsentEmployeesFillsMissingDays(t *testing.T) {
	yesterday := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	attRepo := &stubAttendanceRepo{}
	_, err := attRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID: "emp-2",
		Date:       yesterday,
		Status:     "Present",
	})
	require.NoError(t, err)

	jobs := NewAttendanceJobs(attRepo, &stubEmployeeRepo{activeIDs: []string{"emp-1", "emp-2"}})
	jobs.now = func() time.Time { return time.Date(2025, 6, 2, 0, 15, 0, 0, time.UTC) }

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))

	require.Len(t, attRepo.records, 2)
	created := attRepo.records[1]
	assert.Equal(t, "emp-1", created.EmployeeID)
	assert.Equal(t, "Absent", created.Status)
	assert.True(t, created.Date.Equal(yesterday))
	assert.Nil(t, created.CheckIn)
}

func TestMarkAbsentEmployeesOnlyRunsAfterMidnight(t *testing.T) {
	attRepo := &stubAttendanceRepo{}
	jobs := NewAttendanceJobs(attRepo, &stubEmployeeRepo{activeIDs: []string{"emp-1"}})
	jobs.now = func() time.Time { return time.Date(2025, 6, 2, 13, 0, 0, 0, time.UTC) }

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))
	assert.Empty(t, attRepo.records)
}

func TestMarkAbsentEmployeesIsIdempotent(t *testing.T) {
	attRepo := &stubAttendanceRepo{}
	jobs := NewAttendanceJobs(attRepo, &stubEmployeeRepo{activeIDs: []string{"emp-1"}})
	jobs.now = func() time.Time { return time.Date(2025, 6, 2, 0, 15, 0, 0, time.UTC) }

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))
	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))
	assert.Len(t, attRepo.records, 1)
}
