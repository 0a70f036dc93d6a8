package department

import (
	"context"
)

// DepartmentRepository defines data access methods for departments.
type DepartmentRepository interface {
	// Create creates a new department
	Create(ctx context.Context, dept Department) (Department, error)

	// GetByID retrieves a department by ID
	GetByID(ctx context.Context, id string) (Department, error)

	// GetByName retrieves a department by its exact name
	// Used to prevent duplicate names
	GetByName(ctx context.Context, name string) (*Department, error)

	// Update updates an existing department
	Update(ctx context.Context, dept Department) error

	// List retrieves departments with filters
	List(ctx context.Context, filter DepartmentFilter) ([]Department, int64, error)
}
