package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus enum
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// SalaryRecord is one employee's pay for one (year, month) period. Pay
// components are snapshotted from the employee at creation time so later
// employee edits do not rewrite payroll history. At most one record exists
// per (employee, year, month).
type SalaryRecord struct {
	ID               string
	EmployeeID       string
	Year             int
	Month            int
	BasicSalary      decimal.Decimal
	HRA              decimal.Decimal
	Allowance        decimal.Decimal
	TotalWorkingDays int
	PresentDays      int
	HalfDays         int
	AbsentDays       int
	Deduction        decimal.Decimal
	PFPercentage     decimal.Decimal
	GrossSalary      decimal.Decimal
	PFAmount         decimal.Decimal
	NetSalary        decimal.Decimal
	PaymentStatus    PaymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO
	EmployeeName   *string
	EmployeeCode   *string
	Designation    *string
	DepartmentName *string
	EmployeeEmail  *string
}
