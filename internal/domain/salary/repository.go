package salary

import (
	"context"
)

// SalaryRepository defines data access methods for salary records.
// Uniqueness per (employee, year, month) is enforced at the storage layer.
type SalaryRepository interface {
	// Create creates a new salary record
	Create(ctx context.Context, rec SalaryRecord) (SalaryRecord, error)

	// GetByID retrieves a salary record by ID, with employee and department
	// fields joined for slip rendering
	GetByID(ctx context.Context, id string) (SalaryRecord, error)

	// GetByEmployeeAndPeriod retrieves the record for one employee and period
	// Used to pre-check duplicate periods before insert
	GetByEmployeeAndPeriod(ctx context.Context, employeeID string, year, month int) (*SalaryRecord, error)

	// Update updates an existing salary record
	Update(ctx context.Context, rec SalaryRecord) error

	// UpdatePaymentStatus toggles the payment status of a record
	UpdatePaymentStatus(ctx context.Context, id string, status PaymentStatus) error

	// List retrieves salary records with filters and pagination
	List(ctx context.Context, filter SalaryFilter) ([]SalaryRecord, int64, error)
}
