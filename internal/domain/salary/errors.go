package salary

import "errors"

// Salary domain errors
var (
	ErrSalaryNotFound      = errors.New("salary record not found")
	ErrDuplicatePeriod     = errors.New("a salary record already exists for this employee and period")
	ErrInvalidWorkingDays  = errors.New("total working days must be between 1 and 31")
	ErrInvalidPeriod       = errors.New("invalid salary period")
	ErrEmployeeHasNoEmail  = errors.New("employee has no email address on record")
	ErrInvalidPaymentState = errors.New("invalid payment status")
)
