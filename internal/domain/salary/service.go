package salary

import (
	"context"
)

type SalaryService interface {
	// CreateSalary computes and stores one employee's pay for a period.
	// Attendance counts are derived from the month's records unless the
	// request overrides them.
	CreateSalary(ctx context.Context, req CreateSalaryRequest) (SalaryResponse, error)

	// UpdateSalary recomputes derived amounts from the changed inputs
	UpdateSalary(ctx context.Context, id string, req UpdateSalaryRequest) (SalaryResponse, error)

	UpdatePaymentStatus(ctx context.Context, id string, req UpdatePaymentStatusRequest) (SalaryResponse, error)
	GetSalary(ctx context.Context, id string) (SalaryResponse, error)
	ListSalaries(ctx context.Context, filter SalaryFilter) ([]SalaryResponse, int64, error)

	// GetSalarySlip renders the printable slip for a record
	GetSalarySlip(ctx context.Context, id string) (SalarySlipResponse, error)

	// SendSalarySlip emails the slip to the employee's address
	SendSalarySlip(ctx context.Context, id string) error
}
