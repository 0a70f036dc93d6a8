package employee

import (
	"github.com/humbingo/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Code              string  `json:"code"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	ContactNumber     *string `json:"contact_number,omitempty"`
	DepartmentID      *string `json:"department_id,omitempty"`
	Designation       string  `json:"designation"`
	JoinDate          string  `json:"join_date"`
	BankName          *string `json:"bank_name,omitempty"`
	BankAccountNumber *string `json:"bank_account_number,omitempty"`
	IFSCCode          *string `json:"ifsc_code,omitempty"`
	BasicSalary       string  `json:"basic_salary"`
	HRA               string  `json:"hra"`
	Allowance         string  `json:"allowance"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	} else if !validator.IsValidEmployeeCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be EMP followed by at least three digits",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.ContactNumber != nil && !validator.IsValidContactNumber(*r.ContactNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact_number",
			Message: "contact number must be a 10-digit mobile number",
		})
	}

	if r.DepartmentID != nil && !validator.IsValidUUID(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation is required",
		})
	}

	if validator.IsEmpty(r.JoinDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be in YYYY-MM-DD format",
		})
	}

	if r.IFSCCode != nil && !validator.IsValidIFSC(*r.IFSCCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "ifsc_code",
			Message: "invalid IFSC code format",
		})
	}

	for field, amount := range map[string]string{
		"basic_salary": r.BasicSalary,
		"hra":          r.HRA,
		"allowance":    r.Allowance,
	} {
		if validator.IsEmpty(amount) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " is required",
			})
		} else if !validator.IsValidAmount(amount) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a non-negative amount with up to two decimal places",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	Name              *string `json:"name,omitempty"`
	Email             *string `json:"email,omitempty"`
	ContactNumber     *string `json:"contact_number,omitempty"`
	DepartmentID      *string `json:"department_id,omitempty"`
	Designation       *string `json:"designation,omitempty"`
	JoinDate          *string `json:"join_date,omitempty"`
	IsActive          *bool   `json:"is_active,omitempty"`
	BankName          *string `json:"bank_name,omitempty"`
	BankAccountNumber *string `json:"bank_account_number,omitempty"`
	IFSCCode          *string `json:"ifsc_code,omitempty"`
	BasicSalary       *string `json:"basic_salary,omitempty"`
	HRA               *string `json:"hra,omitempty"`
	Allowance         *string `json:"allowance,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.ContactNumber != nil && !validator.IsValidContactNumber(*r.ContactNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact_number",
			Message: "contact number must be a 10-digit mobile number",
		})
	}

	if r.DepartmentID != nil && !validator.IsValidUUID(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a valid UUID",
		})
	}

	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "join_date",
				Message: "join_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.IFSCCode != nil && !validator.IsValidIFSC(*r.IFSCCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "ifsc_code",
			Message: "invalid IFSC code format",
		})
	}

	for field, amount := range map[string]*string{
		"basic_salary": r.BasicSalary,
		"hra":          r.HRA,
		"allowance":    r.Allowance,
	} {
		if amount != nil && !validator.IsValidAmount(*amount) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a non-negative amount with up to two decimal places",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID                string  `json:"id"`
	Code              string  `json:"code"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	ContactNumber     *string `json:"contact_number,omitempty"`
	DepartmentID      *string `json:"department_id,omitempty"`
	DepartmentName    string  `json:"department_name"`
	Designation       string  `json:"designation"`
	JoinDate          string  `json:"join_date"`
	IsActive          bool    `json:"is_active"`
	BankName          *string `json:"bank_name,omitempty"`
	BankAccountNumber *string `json:"bank_account_number,omitempty"`
	IFSCCode          *string `json:"ifsc_code,omitempty"`
	BasicSalary       string  `json:"basic_salary"`
	HRA               string  `json:"hra"`
	Allowance         string  `json:"allowance"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type EmployeeFilter struct {
	// Search & Filter
	Search       *string `json:"search,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`

	// Pagination
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}
