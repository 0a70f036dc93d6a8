package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                string
	Code              string
	Name              string
	Email             string
	ContactNumber     *string
	DepartmentID      *string
	Designation       string
	JoinDate          time.Time
	IsActive          bool
	BankName          *string
	BankAccountNumber *string
	IFSCCode          *string
	BasicSalary       decimal.Decimal
	HRA               decimal.Decimal
	Allowance         decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO
	DepartmentName *string
}
