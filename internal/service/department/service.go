package department

import (
	"context"
	"time"

	"github.com/humbingo/hrms-backend-go/internal/domain/department"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
}

func NewDepartmentService(repo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{
		DepartmentRepository: repo,
	}
}

// CreateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	existing, err := s.GetByName(ctx, req.Name)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	if existing != nil {
		return department.DepartmentResponse{}, department.ErrDepartmentNameTaken
	}

	dept := department.Department{
		Name:     req.Name,
		IsActive: true,
	}

	created, err := s.Create(ctx, dept)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return toDepartmentResponse(created), nil
}

// UpdateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) UpdateDepartment(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	dept, err := s.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.Name != nil {
		dept.Name = *req.Name
	}
	if req.IsActive != nil {
		dept.IsActive = *req.IsActive
	}

	if err := s.Update(ctx, dept); err != nil {
		return department.DepartmentResponse{}, err
	}

	return toDepartmentResponse(dept), nil
}

// GetDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := s.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return toDepartmentResponse(dept), nil
}

// ListDepartments implements department.DepartmentService.
func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context, filter department.DepartmentFilter) ([]department.DepartmentResponse, int64, error) {
	depts, total, err := s.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]department.DepartmentResponse, 0, len(depts))
	for _, dept := range depts {
		responses = append(responses, toDepartmentResponse(dept))
	}
	return responses, total, nil
}

func toDepartmentResponse(dept department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:            dept.ID,
		Name:          dept.Name,
		IsActive:      dept.IsActive,
		EmployeeCount: dept.EmployeeCount,
		CreatedAt:     dept.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     dept.UpdatedAt.Format(time.RFC3339),
	}
}
