package leave

import (
	"context"
	"time"

	"github.com/humbingo/hrms-backend-go/internal/domain/employee"
	"github.com/humbingo/hrms-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(repo leave.LeaveRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: repo,
		employeeRepo:    employeeRepo,
	}
}

// CreateLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !emp.IsActive {
		return leave.LeaveResponse{}, employee.ErrEmployeeInactive
	}

	fromDate, err := time.Parse("2006-01-02", req.FromDate)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	toDate, err := time.Parse("2006-01-02", req.ToDate)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if fromDate.After(toDate) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	req2 := leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		FromDate:   fromDate,
		ToDate:     toDate,
		Reason:     req.Reason,
		Status:     leave.LeaveStatusPending,
	}

	created, err := s.Create(ctx, req2)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	created.EmployeeName = &emp.Name
	created.EmployeeCode = &emp.Code
	return toLeaveResponse(created), nil
}

// UpdateLeaveStatus implements leave.LeaveService.
// Status transitions are unrestricted: an admin can reset any decision.
func (s *LeaveServiceImpl) UpdateLeaveStatus(ctx context.Context, id string, req leave.UpdateLeaveStatusRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	status := leave.LeaveStatus(req.Status)
	if err := s.LeaveRepository.UpdateStatus(ctx, id, status); err != nil {
		return leave.LeaveResponse{}, err
	}

	rec.Status = status
	return toLeaveResponse(rec), nil
}

// GetLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeave(ctx context.Context, id string) (leave.LeaveResponse, error) {
	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return toLeaveResponse(rec), nil
}

// ListLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaves(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveResponse, int64, error) {
	recs, total, err := s.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]leave.LeaveResponse, 0, len(recs))
	for _, rec := range recs {
		responses = append(responses, toLeaveResponse(rec))
	}
	return responses, total, nil
}

func toLeaveResponse(rec leave.LeaveRequest) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		FromDate:   rec.FromDate.Format("2006-01-02"),
		ToDate:     rec.ToDate.Format("2006-01-02"),
		Days:       rec.Days(),
		Reason:     rec.Reason,
		Status:     string(rec.Status),
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  rec.UpdatedAt.Format(time.RFC3339),
	}
	if rec.EmployeeName != nil {
		resp.EmployeeName = *rec.EmployeeName
	}
	if rec.EmployeeCode != nil {
		resp.EmployeeCode = *rec.EmployeeCode
	}
	return resp
}
