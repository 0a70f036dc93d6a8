package salary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/humbingo/hrms-backend-go/internal/config"
	"github.com/humbingo/hrms-backend-go/internal/domain/attendance"
	"github.com/humbingo/hrms-backend-go/internal/domain/employee"
	"github.com/humbingo/hrms-backend-go/internal/domain/salary"
	"github.com/humbingo/hrms-backend-go/internal/pkg/email"
	"github.com/humbingo/hrms-backend-go/internal/pkg/storage"
	"github.com/humbingo/hrms-backend-go/internal/pkg/timeclock"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type SalaryServiceImpl struct {
	salary.SalaryRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	emailService   email.EmailService
	archive        storage.FileStorage
	rules          timeclock.Rules
	hr             config.HRConfig
}

func NewSalaryService(
	repo salary.SalaryRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	emailService email.EmailService,
	archive storage.FileStorage,
	hr config.HRConfig,
) salary.SalaryService {
	return &SalaryServiceImpl{
		SalaryRepository: repo,
		employeeRepo:     employeeRepo,
		attendanceRepo:   attendanceRepo,
		emailService:     emailService,
		archive:          archive,
		rules: timeclock.Rules{
			PresentHours: hr.PresentThresholdHours,
			HalfDayHours: hr.HalfDayThresholdHours,
		},
		hr: hr,
	}
}

// CreateSalary implements salary.SalaryService.
func (s *SalaryServiceImpl) CreateSalary(ctx context.Context, req salary.CreateSalaryRequest) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}

	// Fetch the employee and the month's attendance in parallel; the
	// aggregate is only needed when the request does not override counts.
	var (
		emp     employee.Employee
		records []attendance.Attendance
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		emp, err = s.employeeRepo.GetByID(gCtx, req.EmployeeID)
		return err
	})

	if req.PresentDays == nil || req.HalfDays == nil {
		g.Go(func() error {
			var err error
			records, err = s.attendanceRepo.ListByEmployeeMonth(gCtx, req.EmployeeID, req.Year, time.Month(req.Month))
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return salary.SalaryResponse{}, err
	}

	// Pre-check the period; the unique index backstops races
	existing, err := s.GetByEmployeeAndPeriod(ctx, req.EmployeeID, req.Year, req.Month)
	if err != nil {
		return salary.SalaryResponse{}, err
	}
	if existing != nil {
		return salary.SalaryResponse{}, salary.ErrDuplicatePeriod
	}

	presentDays, halfDays := 0, 0
	if req.PresentDays != nil && req.HalfDays != nil {
		presentDays = *req.PresentDays
		halfDays = *req.HalfDays
	} else {
		summary, err := s.rules.Aggregate(toTimeclockRecords(records), req.TotalWorkingDays)
		if err != nil {
			return salary.SalaryResponse{}, fmt.Errorf("failed to aggregate attendance: %w", err)
		}
		presentDays = summary.PresentDays
		halfDays = summary.HalfDays
		if req.PresentDays != nil {
			presentDays = *req.PresentDays
		}
		if req.HalfDays != nil {
			halfDays = *req.HalfDays
		}
	}

	deduction := decimal.Zero
	if req.Deduction != "" {
		deduction, err = decimal.NewFromString(req.Deduction)
		if err != nil {
			return salary.SalaryResponse{}, fmt.Errorf("invalid deduction amount: %w", err)
		}
	}

	pfPercentage, err := decimal.NewFromString(s.hr.DefaultPFPercentage)
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("invalid default PF percentage: %w", err)
	}
	if req.PFPercentage != nil {
		pfPercentage, err = decimal.NewFromString(*req.PFPercentage)
		if err != nil {
			return salary.SalaryResponse{}, fmt.Errorf("invalid PF percentage: %w", err)
		}
	}

	rec := salary.SalaryRecord{
		EmployeeID:       emp.ID,
		Year:             req.Year,
		Month:            req.Month,
		BasicSalary:      emp.BasicSalary,
		HRA:              emp.HRA,
		Allowance:        emp.Allowance,
		TotalWorkingDays: req.TotalWorkingDays,
		PresentDays:      presentDays,
		HalfDays:         halfDays,
		Deduction:        deduction,
		PFPercentage:     pfPercentage,
		PaymentStatus:    salary.PaymentStatusUnpaid,
	}
	Apply(&rec)

	created, err := s.SalaryRepository.Create(ctx, rec)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	created.EmployeeName = &emp.Name
	created.EmployeeCode = &emp.Code
	return toSalaryResponse(created), nil
}

// UpdateSalary implements salary.SalaryService.
func (s *SalaryServiceImpl) UpdateSalary(ctx context.Context, id string, req salary.UpdateSalaryRequest) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}

	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	if req.TotalWorkingDays != nil {
		rec.TotalWorkingDays = *req.TotalWorkingDays
	}
	if req.PresentDays != nil {
		rec.PresentDays = *req.PresentDays
	}
	if req.HalfDays != nil {
		rec.HalfDays = *req.HalfDays
	}
	if req.Deduction != nil {
		deduction, err := decimal.NewFromString(*req.Deduction)
		if err != nil {
			return salary.SalaryResponse{}, fmt.Errorf("invalid deduction amount: %w", err)
		}
		rec.Deduction = deduction
	}
	if req.PFPercentage != nil {
		pf, err := decimal.NewFromString(*req.PFPercentage)
		if err != nil {
			return salary.SalaryResponse{}, fmt.Errorf("invalid PF percentage: %w", err)
		}
		rec.PFPercentage = pf
	}

	// Derived amounts always follow the current inputs
	Apply(&rec)

	if err := s.SalaryRepository.Update(ctx, rec); err != nil {
		return salary.SalaryResponse{}, err
	}

	return toSalaryResponse(rec), nil
}

// UpdatePaymentStatus implements salary.SalaryService.
func (s *SalaryServiceImpl) UpdatePaymentStatus(ctx context.Context, id string, req salary.UpdatePaymentStatusRequest) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}

	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	status := salary.PaymentStatus(req.PaymentStatus)
	if err := s.SalaryRepository.UpdatePaymentStatus(ctx, id, status); err != nil {
		return salary.SalaryResponse{}, err
	}

	rec.PaymentStatus = status
	return toSalaryResponse(rec), nil
}

// GetSalary implements salary.SalaryService.
func (s *SalaryServiceImpl) GetSalary(ctx context.Context, id string) (salary.SalaryResponse, error) {
	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return salary.SalaryResponse{}, err
	}
	return toSalaryResponse(rec), nil
}

// ListSalaries implements salary.SalaryService.
func (s *SalaryServiceImpl) ListSalaries(ctx context.Context, filter salary.SalaryFilter) ([]salary.SalaryResponse, int64, error) {
	recs, total, err := s.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]salary.SalaryResponse, 0, len(recs))
	for _, rec := range recs {
		responses = append(responses, toSalaryResponse(rec))
	}
	return responses, total, nil
}

// GetSalarySlip implements salary.SalaryService.
func (s *SalaryServiceImpl) GetSalarySlip(ctx context.Context, id string) (salary.SalarySlipResponse, error) {
	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return salary.SalarySlipResponse{}, err
	}

	return salary.SalarySlipResponse{
		Salary:         toSalaryResponse(rec),
		Designation:    stringOr(rec.Designation, "N/A"),
		DepartmentName: stringOr(rec.DepartmentName, "N/A"),
		Text:           RenderSlipText(rec, s.hr.CurrencySymbol),
	}, nil
}

// SendSalarySlip implements salary.SalaryService.
func (s *SalaryServiceImpl) SendSalarySlip(ctx context.Context, id string) error {
	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if rec.EmployeeEmail == nil || *rec.EmployeeEmail == "" {
		return salary.ErrEmployeeHasNoEmail
	}

	// Archive the rendered slip; a failed write never blocks delivery
	if s.archive != nil {
		path := fmt.Sprintf("slips/%s/%04d-%02d.txt", stringOr(rec.EmployeeCode, rec.EmployeeID), rec.Year, rec.Month)
		if _, err := s.archive.Save(ctx, path, []byte(RenderSlipText(rec, s.hr.CurrencySymbol))); err != nil {
			slog.Warn("Failed to archive salary slip", "salary_id", rec.ID, "path", path, "error", err)
		}
	}

	symbol := s.hr.CurrencySymbol
	data := email.SalarySlipEmailData{
		EmployeeName:   stringOr(rec.EmployeeName, "N/A"),
		EmployeeCode:   stringOr(rec.EmployeeCode, "N/A"),
		Designation:    stringOr(rec.Designation, "N/A"),
		DepartmentName: stringOr(rec.DepartmentName, "N/A"),
		MonthName:      MonthName(rec.Month),
		Year:           rec.Year,
		BasicSalary:    FormatAmount(symbol, rec.BasicSalary),
		HRA:            FormatAmount(symbol, rec.HRA),
		Allowance:      FormatAmount(symbol, rec.Allowance),
		GrossSalary:    FormatAmount(symbol, rec.GrossSalary),
		PFAmount:       FormatAmount(symbol, rec.PFAmount),
		Deduction:      FormatAmount(symbol, rec.Deduction),
		TotalDeduction: FormatAmount(symbol, rec.PFAmount.Add(rec.Deduction)),
		NetSalary:      FormatAmount(symbol, rec.NetSalary),
		PresentDays:    rec.PresentDays,
		HalfDays:       rec.HalfDays,
		AbsentDays:     rec.AbsentDays,
		WorkingDays:    rec.TotalWorkingDays,
		PaymentStatus:  string(rec.PaymentStatus),
	}

	return s.emailService.SendSalarySlip(*rec.EmployeeEmail, data)
}

func toTimeclockRecords(records []attendance.Attendance) []timeclock.Record {
	out := make([]timeclock.Record, 0, len(records))
	for _, att := range records {
		out = append(out, timeclock.Record{
			CheckIn:    att.CheckIn,
			CheckOut:   att.CheckOut,
			TotalHours: att.TotalHours,
		})
	}
	return out
}

func toSalaryResponse(rec salary.SalaryRecord) salary.SalaryResponse {
	return salary.SalaryResponse{
		ID:               rec.ID,
		EmployeeID:       rec.EmployeeID,
		EmployeeName:     stringOr(rec.EmployeeName, ""),
		EmployeeCode:     stringOr(rec.EmployeeCode, ""),
		Year:             rec.Year,
		Month:            rec.Month,
		MonthName:        MonthName(rec.Month),
		BasicSalary:      rec.BasicSalary.StringFixed(2),
		HRA:              rec.HRA.StringFixed(2),
		Allowance:        rec.Allowance.StringFixed(2),
		TotalWorkingDays: rec.TotalWorkingDays,
		PresentDays:      rec.PresentDays,
		HalfDays:         rec.HalfDays,
		AbsentDays:       rec.AbsentDays,
		Deduction:        rec.Deduction.StringFixed(2),
		PFPercentage:     rec.PFPercentage.StringFixed(2),
		GrossSalary:      rec.GrossSalary.StringFixed(2),
		PFAmount:         rec.PFAmount.StringFixed(2),
		NetSalary:        rec.NetSalary.StringFixed(2),
		PaymentStatus:    string(rec.PaymentStatus),
		CreatedAt:        rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        rec.UpdatedAt.Format(time.RFC3339),
	}
}
