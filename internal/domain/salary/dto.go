package salary

import (
	"github.com/humbingo/hrms-backend-go/internal/pkg/validator"
)

type CreateSalaryRequest struct {
	EmployeeID       string  `json:"employee_id"`
	Year             int     `json:"year"`
	Month            int     `json:"month"`
	TotalWorkingDays int     `json:"total_working_days"`
	Deduction        string  `json:"deduction"`
	PFPercentage     *string `json:"pf_percentage,omitempty"`

	// When omitted, attendance counts are derived from the month's records.
	PresentDays *int `json:"present_days,omitempty"`
	HalfDays    *int `json:"half_days,omitempty"`
}

func (r *CreateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.TotalWorkingDays < 1 || r.TotalWorkingDays > 31 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_working_days",
			Message: "total_working_days must be between 1 and 31",
		})
	}

	if !validator.IsEmpty(r.Deduction) && !validator.IsValidAmount(r.Deduction) {
		errs = append(errs, validator.ValidationError{
			Field:   "deduction",
			Message: "deduction must be a non-negative amount with up to two decimal places",
		})
	}

	if r.PFPercentage != nil && !validator.IsValidAmount(*r.PFPercentage) {
		errs = append(errs, validator.ValidationError{
			Field:   "pf_percentage",
			Message: "pf_percentage must be a non-negative amount with up to two decimal places",
		})
	}

	if r.PresentDays != nil && *r.PresentDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "present_days",
			Message: "present_days must not be negative",
		})
	}

	if r.HalfDays != nil && *r.HalfDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "half_days",
			Message: "half_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateSalaryRequest struct {
	TotalWorkingDays *int    `json:"total_working_days,omitempty"`
	PresentDays      *int    `json:"present_days,omitempty"`
	HalfDays         *int    `json:"half_days,omitempty"`
	Deduction        *string `json:"deduction,omitempty"`
	PFPercentage     *string `json:"pf_percentage,omitempty"`
}

func (r *UpdateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.TotalWorkingDays != nil && (*r.TotalWorkingDays < 1 || *r.TotalWorkingDays > 31) {
		errs = append(errs, validator.ValidationError{
			Field:   "total_working_days",
			Message: "total_working_days must be between 1 and 31",
		})
	}

	if r.PresentDays != nil && *r.PresentDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "present_days",
			Message: "present_days must not be negative",
		})
	}

	if r.HalfDays != nil && *r.HalfDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "half_days",
			Message: "half_days must not be negative",
		})
	}

	if r.Deduction != nil && !validator.IsValidAmount(*r.Deduction) {
		errs = append(errs, validator.ValidationError{
			Field:   "deduction",
			Message: "deduction must be a non-negative amount with up to two decimal places",
		})
	}

	if r.PFPercentage != nil && !validator.IsValidAmount(*r.PFPercentage) {
		errs = append(errs, validator.ValidationError{
			Field:   "pf_percentage",
			Message: "pf_percentage must be a non-negative amount with up to two decimal places",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status"`
}

func (r *UpdatePaymentStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.PaymentStatus, []string{
		string(PaymentStatusUnpaid),
		string(PaymentStatusPaid),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "payment_status",
			Message: "payment_status must be unpaid or paid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SalaryResponse struct {
	ID               string `json:"id"`
	EmployeeID       string `json:"employee_id"`
	EmployeeName     string `json:"employee_name,omitempty"`
	EmployeeCode     string `json:"employee_code,omitempty"`
	Year             int    `json:"year"`
	Month            int    `json:"month"`
	MonthName        string `json:"month_name"`
	BasicSalary      string `json:"basic_salary"`
	HRA              string `json:"hra"`
	Allowance        string `json:"allowance"`
	TotalWorkingDays int    `json:"total_working_days"`
	PresentDays      int    `json:"present_days"`
	HalfDays         int    `json:"half_days"`
	AbsentDays       int    `json:"absent_days"`
	Deduction        string `json:"deduction"`
	PFPercentage     string `json:"pf_percentage"`
	GrossSalary      string `json:"gross_salary"`
	PFAmount         string `json:"pf_amount"`
	NetSalary        string `json:"net_salary"`
	PaymentStatus    string `json:"payment_status"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

// SalarySlipResponse is the printable slip for one record. Amount fields
// carry the currency symbol prefix; Text is the fixed plain-text layout.
type SalarySlipResponse struct {
	Salary         SalaryResponse `json:"salary"`
	Designation    string         `json:"designation"`
	DepartmentName string         `json:"department_name"`
	Text           string         `json:"text"`
}

type SalaryFilter struct {
	// Search & Filter
	EmployeeID    *string `json:"employee_id,omitempty"`
	Year          *int    `json:"year,omitempty"`
	Month         *int    `json:"month,omitempty"`
	PaymentStatus *string `json:"payment_status,omitempty"`

	// Pagination
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}
