package department

import (
	"time"
)

type Department struct {
	ID        string
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeCount *int
}
