package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// Uniqueness per (employee, date) is enforced at the storage layer.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves attendance for a specific employee on a specific date
	// Used to prevent double check-in
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, att Attendance) error

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListByEmployeeMonth retrieves one employee's records within a calendar month,
	// ordered by date ascending. Input to the monthly aggregate.
	ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]Attendance, error)
}
