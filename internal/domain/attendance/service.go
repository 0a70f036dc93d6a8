package attendance

import (
	"context"
)

type AttendanceService interface {
	// CheckIn opens today's attendance for an employee
	CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// CheckOut closes today's open attendance and computes worked hours
	CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// MarkAttendance records or overrides a full day (admin)
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, int64, error)

	// GetMonthlySummary aggregates one employee's month into day counts
	GetMonthlySummary(ctx context.Context, employeeID string, year, month, totalWorkingDays int) (MonthlySummaryResponse, error)
}
