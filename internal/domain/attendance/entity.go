package attendance

import (
	"time"
)

// Attendance is one employee-day. CheckIn/CheckOut are wall-clock HH:MM:SS
// strings; TotalHours is the precomputed H:MM:SS duration set at check-out.
// At most one record exists per (employee, date).
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *string
	CheckOut   *string
	TotalHours *string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
	EmployeeCode *string
}
