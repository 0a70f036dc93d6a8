package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/humbingo/hrms-backend-go/internal/config"
	"github.com/humbingo/hrms-backend-go/internal/domain/department"
	"github.com/humbingo/hrms-backend-go/internal/domain/employee"
	"github.com/humbingo/hrms-backend-go/internal/pkg/email"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	emailService   email.EmailService
	app            config.AppConfig
}

func NewEmployeeService(
	repo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	emailService email.EmailService,
	app config.AppConfig,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: repo,
		departmentRepo:     departmentRepo,
		emailService:       emailService,
		app:                app,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Pre-check code and email; unique indexes backstop races
	existing, err := s.GetByCode(ctx, req.Code)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if existing != nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeTaken
	}

	existing, err = s.GetByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if existing != nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeEmailTaken
	}

	if req.DepartmentID != nil {
		dept, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if !dept.IsActive {
			return employee.EmployeeResponse{}, employee.ErrDepartmentNotActive
		}
	}

	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	basic, hra, allowance, err := parsePayComponents(req.BasicSalary, req.HRA, req.Allowance)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		Code:              req.Code,
		Name:              req.Name,
		Email:             req.Email,
		ContactNumber:     req.ContactNumber,
		DepartmentID:      req.DepartmentID,
		Designation:       req.Designation,
		JoinDate:          joinDate,
		IsActive:          true,
		BankName:          req.BankName,
		BankAccountNumber: req.BankAccountNumber,
		IFSCCode:          req.IFSCCode,
		BasicSalary:       basic,
		HRA:               hra,
		Allowance:         allowance,
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Welcome email is best-effort; registration does not roll back on
	// delivery failure
	if err := s.emailService.SendWelcome(created.Email, created.Name, created.Code, s.app.FrontendURL); err != nil {
		slog.Error("Failed to send welcome email", "employee_id", created.ID, "error", err)
	}

	return toEmployeeResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.ContactNumber != nil {
		emp.ContactNumber = req.ContactNumber
	}
	if req.DepartmentID != nil {
		dept, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if !dept.IsActive {
			return employee.EmployeeResponse{}, employee.ErrDepartmentNotActive
		}
		emp.DepartmentID = req.DepartmentID
		emp.DepartmentName = &dept.Name
	}
	if req.Designation != nil {
		emp.Designation = *req.Designation
	}
	if req.JoinDate != nil {
		joinDate, err := time.Parse("2006-01-02", *req.JoinDate)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.JoinDate = joinDate
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}
	if req.BankName != nil {
		emp.BankName = req.BankName
	}
	if req.BankAccountNumber != nil {
		emp.BankAccountNumber = req.BankAccountNumber
	}
	if req.IFSCCode != nil {
		emp.IFSCCode = req.IFSCCode
	}
	if req.BasicSalary != nil {
		basic, err := decimal.NewFromString(*req.BasicSalary)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("invalid basic_salary: %w", err)
		}
		emp.BasicSalary = basic
	}
	if req.HRA != nil {
		hra, err := decimal.NewFromString(*req.HRA)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("invalid hra: %w", err)
		}
		emp.HRA = hra
	}
	if req.Allowance != nil {
		allowance, err := decimal.NewFromString(*req.Allowance)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("invalid allowance: %w", err)
		}
		emp.Allowance = allowance
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

// DeactivateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, id string) error {
	return s.Deactivate(ctx, id)
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, int64, error) {
	emps, total, err := s.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		responses = append(responses, toEmployeeResponse(emp))
	}
	return responses, total, nil
}

func parsePayComponents(basicStr, hraStr, allowanceStr string) (basic, hra, allowance decimal.Decimal, err error) {
	basic, err = decimal.NewFromString(basicStr)
	if err != nil {
		return basic, hra, allowance, fmt.Errorf("invalid basic_salary: %w", err)
	}
	hra, err = decimal.NewFromString(hraStr)
	if err != nil {
		return basic, hra, allowance, fmt.Errorf("invalid hra: %w", err)
	}
	allowance, err = decimal.NewFromString(allowanceStr)
	if err != nil {
		return basic, hra, allowance, fmt.Errorf("invalid allowance: %w", err)
	}
	return basic, hra, allowance, nil
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	deptName := "N/A"
	if emp.DepartmentName != nil && *emp.DepartmentName != "" {
		deptName = *emp.DepartmentName
	}

	return employee.EmployeeResponse{
		ID:                emp.ID,
		Code:              emp.Code,
		Name:              emp.Name,
		Email:             emp.Email,
		ContactNumber:     emp.ContactNumber,
		DepartmentID:      emp.DepartmentID,
		DepartmentName:    deptName,
		Designation:       emp.Designation,
		JoinDate:          emp.JoinDate.Format("2006-01-02"),
		IsActive:          emp.IsActive,
		BankName:          emp.BankName,
		BankAccountNumber: emp.BankAccountNumber,
		IFSCCode:          emp.IFSCCode,
		BasicSalary:       emp.BasicSalary.StringFixed(2),
		HRA:               emp.HRA.StringFixed(2),
		Allowance:         emp.Allowance.StringFixed(2),
		CreatedAt:         emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         emp.UpdatedAt.Format(time.RFC3339),
	}
}
