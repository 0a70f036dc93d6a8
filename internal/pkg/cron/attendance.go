package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/humbingo/hrms-backend-go/internal/domain/attendance"
	"github.com/humbingo/hrms-backend-go/internal/domain/employee"
	"github.com/humbingo/hrms-backend-go/internal/pkg/timeclock"
)

// AttendanceJobs backfills attendance records that no one will touch again:
// active employees with no record for a closed day get an explicit absence.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository

	// now is swapped in tests
	now func() time.Time
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees inserts an Absent record for yesterday for every active
// employee without one. Gated to the first hour after midnight UTC so the
// hourly tick only does work once per day.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	now := j.now().UTC()
	if now.Hour() != 0 {
		return nil
	}

	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)

	ids, err := j.employeeRepo.ListActiveIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	marked := 0
	for _, id := range ids {
		existing, err := j.attendanceRepo.GetByEmployeeAndDate(ctx, id, yesterday)
		if err != nil {
			slog.Error("Cron: failed to look up attendance", "employee_id", id, "error", err)
			continue
		}
		if existing != nil {
			continue
		}

		_, err = j.attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID: id,
			Date:       yesterday,
			Status:     string(timeclock.StatusAbsent),
		})
		if err != nil {
			slog.Error("Cron: failed to mark absence", "employee_id", id, "error", err)
			continue
		}
		marked++
	}

	if marked > 0 {
		slog.Info("Cron: marked absent employees", "count", marked, "date", yesterday.Format("2006-01-02"))
	}
	return nil
}
