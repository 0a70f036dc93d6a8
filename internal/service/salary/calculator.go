package salary

import (
	"github.com/humbingo/hrms-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.NewFromFloat(0.5)
)

// CalculationInput carries everything the payroll arithmetic needs.
// Amounts are full-precision decimals; rounding happens only at the
// currency boundary when results are rendered.
type CalculationInput struct {
	BasicSalary      decimal.Decimal
	HRA              decimal.Decimal
	Allowance        decimal.Decimal
	TotalWorkingDays int
	PresentDays      int
	HalfDays         int
	Deduction        decimal.Decimal
	PFPercentage     decimal.Decimal
}

// CalculationResult holds the derived pay amounts at full precision.
type CalculationResult struct {
	GrossSalary  decimal.Decimal
	PerDaySalary decimal.Decimal
	EarnedSalary decimal.Decimal
	PFAmount     decimal.Decimal
	NetSalary    decimal.Decimal
}

// Calculate derives gross, earned, PF and net pay from the inputs:
//
//	gross   = basic + HRA + allowance
//	per_day = gross / total_working_days
//	earned  = present * per_day + half * per_day * 0.5
//	pf      = basic * pf% / 100
//	net     = earned - deduction - pf
//
// TotalWorkingDays below 1 is clamped to 1 so the per-day division is
// always defined; values above 31 are clamped to the calendar maximum.
func Calculate(in CalculationInput) CalculationResult {
	workingDays := in.TotalWorkingDays
	if workingDays < 1 {
		workingDays = 1
	}
	if workingDays > 31 {
		workingDays = 31
	}

	gross := in.BasicSalary.Add(in.HRA).Add(in.Allowance)
	perDay := gross.Div(decimal.NewFromInt(int64(workingDays)))

	earned := perDay.Mul(decimal.NewFromInt(int64(in.PresentDays))).
		Add(perDay.Mul(decimal.NewFromInt(int64(in.HalfDays))).Mul(half))

	pfAmount := in.BasicSalary.Mul(in.PFPercentage).Div(hundred)
	net := earned.Sub(in.Deduction).Sub(pfAmount)

	return CalculationResult{
		GrossSalary:  gross,
		PerDaySalary: perDay,
		EarnedSalary: earned,
		PFAmount:     pfAmount,
		NetSalary:    net,
	}
}

// Apply recomputes the derived amounts on a salary record in place.
// Absent days are re-derived from the working day remainder.
func Apply(rec *salary.SalaryRecord) {
	result := Calculate(CalculationInput{
		BasicSalary:      rec.BasicSalary,
		HRA:              rec.HRA,
		Allowance:        rec.Allowance,
		TotalWorkingDays: rec.TotalWorkingDays,
		PresentDays:      rec.PresentDays,
		HalfDays:         rec.HalfDays,
		Deduction:        rec.Deduction,
		PFPercentage:     rec.PFPercentage,
	})

	rec.AbsentDays = rec.TotalWorkingDays - rec.PresentDays - rec.HalfDays
	rec.GrossSalary = result.GrossSalary
	rec.PFAmount = result.PFAmount
	rec.NetSalary = result.NetSalary
}
