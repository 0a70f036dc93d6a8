package salary

import (
	"testing"

	domain "github.com/humbingo/hrms-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCalculateWorkedExample(t *testing.T) {
	// basic=20000, HRA=8000, allowance=3000, 26 working days,
	// 24 present + 1 half, no deduction, 12% PF
	result := Calculate(CalculationInput{
		BasicSalary:      dec("20000"),
		HRA:              dec("8000"),
		Allowance:        dec("3000"),
		TotalWorkingDays: 26,
		PresentDays:      24,
		HalfDays:         1,
		Deduction:        decimal.Zero,
		PFPercentage:     dec("12"),
	})

	assert.Equal(t, "31000.00", result.GrossSalary.StringFixed(2))
	assert.Equal(t, "1192.31", result.PerDaySalary.StringFixed(2))
	assert.Equal(t, "2400.00", result.PFAmount.StringFixed(2))
	// earned = 31000 * 24.5 / 26 at full precision, rounded only here
	assert.Equal(t, "29211.54", result.EarnedSalary.StringFixed(2))
	assert.Equal(t, "26811.54", result.NetSalary.StringFixed(2))
}

func TestCalculateIsIdempotent(t *testing.T) {
	in := CalculationInput{
		BasicSalary:      dec("25000.50"),
		HRA:              dec("10000"),
		Allowance:        dec("1500.25"),
		TotalWorkingDays: 22,
		PresentDays:      20,
		HalfDays:         2,
		Deduction:        dec("750"),
		PFPercentage:     dec("12.00"),
	}

	first := Calculate(in)
	second := Calculate(in)

	assert.True(t, first.GrossSalary.Equal(second.GrossSalary))
	assert.True(t, first.EarnedSalary.Equal(second.EarnedSalary))
	assert.True(t, first.PFAmount.Equal(second.PFAmount))
	assert.True(t, first.NetSalary.Equal(second.NetSalary))
}

func TestCalculateClampsWorkingDays(t *testing.T) {
	in := CalculationInput{
		BasicSalary:      dec("26000"),
		HRA:              decimal.Zero,
		Allowance:        decimal.Zero,
		TotalWorkingDays: 0,
		PresentDays:      1,
		PFPercentage:     decimal.Zero,
	}

	// zero working days clamps to one rather than dividing by zero
	result := Calculate(in)
	assert.Equal(t, "26000.00", result.PerDaySalary.StringFixed(2))

	in.TotalWorkingDays = 40
	result = Calculate(in)
	// above the calendar maximum clamps to 31
	assert.Equal(t, dec("26000").Div(dec("31")).StringFixed(2), result.PerDaySalary.StringFixed(2))
}

func TestCalculateDeductionAndPF(t *testing.T) {
	result := Calculate(CalculationInput{
		BasicSalary:      dec("30000"),
		HRA:              dec("12000"),
		Allowance:        dec("3000"),
		TotalWorkingDays: 26,
		PresentDays:      26,
		HalfDays:         0,
		Deduction:        dec("1000"),
		PFPercentage:     dec("10"),
	})

	// full month: earned equals gross
	assert.Equal(t, "45000.00", result.EarnedSalary.StringFixed(2))
	assert.Equal(t, "3000.00", result.PFAmount.StringFixed(2))
	assert.Equal(t, "41000.00", result.NetSalary.StringFixed(2))
}

func TestCalculateNoAttendance(t *testing.T) {
	result := Calculate(CalculationInput{
		BasicSalary:      dec("20000"),
		HRA:              dec("8000"),
		Allowance:        dec("3000"),
		TotalWorkingDays: 26,
		PresentDays:      0,
		HalfDays:         0,
		Deduction:        decimal.Zero,
		PFPercentage:     dec("12"),
	})

	// nothing earned, PF still owed on basic
	assert.Equal(t, "0.00", result.EarnedSalary.StringFixed(2))
	assert.Equal(t, "-2400.00", result.NetSalary.StringFixed(2))
}

func TestApplyDerivesAbsentDays(t *testing.T) {
	rec := domain.SalaryRecord{
		BasicSalary:      dec("20000"),
		HRA:              dec("8000"),
		Allowance:        dec("3000"),
		TotalWorkingDays: 26,
		PresentDays:      24,
		HalfDays:         1,
		Deduction:        decimal.Zero,
		PFPercentage:     dec("12"),
	}

	Apply(&rec)

	assert.Equal(t, 1, rec.AbsentDays)
	assert.Equal(t, "31000.00", rec.GrossSalary.StringFixed(2))
	assert.Equal(t, "2400.00", rec.PFAmount.StringFixed(2))
	assert.Equal(t, "26811.54", rec.NetSalary.StringFixed(2))

	// more worked days than configured: the remainder goes negative
	rec.PresentDays = 28
	Apply(&rec)
	assert.Equal(t, -3, rec.AbsentDays)
}
