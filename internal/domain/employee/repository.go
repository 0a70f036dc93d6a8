package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	// Create creates a new employee
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByCode retrieves an employee by employee code
	GetByCode(ctx context.Context, code string) (*Employee, error)

	// GetByEmail retrieves an employee by email
	GetByEmail(ctx context.Context, email string) (*Employee, error)

	// Update updates an existing employee
	Update(ctx context.Context, emp Employee) error

	// Deactivate soft-deletes an employee by clearing the active flag
	Deactivate(ctx context.Context, id string) error

	// List retrieves employees with filters and pagination
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	// ListActiveIDs retrieves the IDs of all active employees
	ListActiveIDs(ctx context.Context) ([]string, error)
}
