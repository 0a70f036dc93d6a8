package department

import (
	"context"
)

type DepartmentService interface {
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (DepartmentResponse, error)
	ListDepartments(ctx context.Context, filter DepartmentFilter) ([]DepartmentResponse, int64, error)
}
