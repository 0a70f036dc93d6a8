package employee

import (
	"context"
)

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	DeactivateEmployee(ctx context.Context, id string) error
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, int64, error)
}
