package salary

import (
	"strings"
	"testing"

	domain "github.com/humbingo/hrms-backend-go/internal/domain/salary"
	"github.com/stretchr/testify/assert"
)

func sampleRecord() domain.SalaryRecord {
	name := "Asha Verma"
	code := "EMP007"
	designation := "Software Engineer"
	dept := "Engineering"

	rec := domain.SalaryRecord{
		Year:             2025,
		Month:            6,
		BasicSalary:      dec("20000"),
		HRA:              dec("8000"),
		Allowance:        dec("3000"),
		TotalWorkingDays: 26,
		PresentDays:      24,
		HalfDays:         1,
		Deduction:        dec("500"),
		PFPercentage:     dec("12.00"),
		PaymentStatus:    domain.PaymentStatusUnpaid,
		EmployeeName:     &name,
		EmployeeCode:     &code,
		Designation:      &designation,
		DepartmentName:   &dept,
	}
	Apply(&rec)
	return rec
}

func TestRenderSlipText(t *testing.T) {
	rec := sampleRecord()
	text := RenderSlipText(rec, "₹")

	assert.Contains(t, text, "Salary Slip - June 2025")
	assert.Contains(t, text, "Asha Verma (EMP007)")
	assert.Contains(t, text, "Software Engineer")
	assert.Contains(t, text, "Engineering")
	assert.Contains(t, text, "EARNINGS")
	assert.Contains(t, text, "₹ 20000.00")
	assert.Contains(t, text, "₹ 31000.00")
	assert.Contains(t, text, "Provident Fund (12.00%)")
	assert.Contains(t, text, "₹ 2400.00")
	assert.Contains(t, text, "NET SALARY")
	assert.Contains(t, text, "computer generated salary slip")
}

func TestRenderSlipTextRoundTrip(t *testing.T) {
	// the slip shows exactly the net salary computed at creation time
	rec := sampleRecord()
	text := RenderSlipText(rec, "₹")
	assert.Contains(t, text, "₹ "+rec.NetSalary.StringFixed(2))
}

func TestRenderSlipTextMissingDepartment(t *testing.T) {
	rec := sampleRecord()
	rec.DepartmentName = nil
	text := RenderSlipText(rec, "₹")

	// dangling department references render as N/A
	assert.Contains(t, text, "N/A")
}

func TestRenderSlipTextLayoutStable(t *testing.T) {
	rec := sampleRecord()
	text := RenderSlipText(rec, "₹")

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	assert.Equal(t, strings.Repeat("=", 46), lines[0])

	// section order is fixed
	earnIdx := strings.Index(text, "EARNINGS")
	dedIdx := strings.Index(text, "DEDUCTIONS")
	attIdx := strings.Index(text, "ATTENDANCE")
	netIdx := strings.Index(text, "NET SALARY")
	assert.True(t, earnIdx < dedIdx && dedIdx < attIdx && attIdx < netIdx)
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "January", MonthName(1))
	assert.Equal(t, "December", MonthName(12))
	assert.Equal(t, "", MonthName(0))
	assert.Equal(t, "", MonthName(13))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "₹ 1234.50", FormatAmount("₹", dec("1234.5")))
	assert.Equal(t, "₹ 0.00", FormatAmount("₹", dec("0")))
}
