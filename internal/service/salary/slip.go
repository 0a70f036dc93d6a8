package salary

import (
	"fmt"
	"strings"
	"time"

	"github.com/humbingo/hrms-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
)

const slipWidth = 46

// FormatAmount renders a currency amount for display: symbol, space,
// two fixed decimal places.
func FormatAmount(symbol string, d decimal.Decimal) string {
	return symbol + " " + d.StringFixed(2)
}

// MonthName returns the English month name for a 1-12 month number.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}

func slipLine(label, value string) string {
	pad := slipWidth - len(label) - len(value)
	if pad < 1 {
		pad = 1
	}
	return label + strings.Repeat(" ", pad) + value + "\n"
}

func centered(s string) string {
	pad := (slipWidth - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s + "\n"
}

// RenderSlipText renders a salary record into the fixed printable layout.
// The field order and labels are part of the document contract; printed
// output is compared against archived slips.
func RenderSlipText(rec salary.SalaryRecord, currencySymbol string) string {
	name := stringOr(rec.EmployeeName, "N/A")
	code := stringOr(rec.EmployeeCode, "N/A")
	designation := stringOr(rec.Designation, "N/A")
	deptName := stringOr(rec.DepartmentName, "N/A")

	rule := strings.Repeat("=", slipWidth) + "\n"
	thinRule := strings.Repeat("-", slipWidth) + "\n"
	totalDeductions := rec.PFAmount.Add(rec.Deduction)

	var b strings.Builder
	b.WriteString(rule)
	b.WriteString(centered("HUMBINGO HR"))
	b.WriteString(centered(fmt.Sprintf("Salary Slip - %s %d", MonthName(rec.Month), rec.Year)))
	b.WriteString(rule)
	b.WriteString(slipLine("Employee", fmt.Sprintf("%s (%s)", name, code)))
	b.WriteString(slipLine("Designation", designation))
	b.WriteString(slipLine("Department", deptName))
	b.WriteString(thinRule)
	b.WriteString("EARNINGS\n")
	b.WriteString(slipLine("Basic Salary", FormatAmount(currencySymbol, rec.BasicSalary)))
	b.WriteString(slipLine("HRA", FormatAmount(currencySymbol, rec.HRA)))
	b.WriteString(slipLine("Allowance", FormatAmount(currencySymbol, rec.Allowance)))
	b.WriteString(slipLine("Gross Salary", FormatAmount(currencySymbol, rec.GrossSalary)))
	b.WriteString(thinRule)
	b.WriteString("DEDUCTIONS\n")
	b.WriteString(slipLine(
		fmt.Sprintf("Provident Fund (%s%%)", rec.PFPercentage.StringFixed(2)),
		FormatAmount(currencySymbol, rec.PFAmount),
	))
	b.WriteString(slipLine("Other Deduction", FormatAmount(currencySymbol, rec.Deduction)))
	b.WriteString(slipLine("Total Deductions", FormatAmount(currencySymbol, totalDeductions)))
	b.WriteString(thinRule)
	b.WriteString("ATTENDANCE\n")
	b.WriteString(slipLine("Working Days", fmt.Sprintf("%d", rec.TotalWorkingDays)))
	b.WriteString(slipLine("Present Days", fmt.Sprintf("%d", rec.PresentDays)))
	b.WriteString(slipLine("Half Days", fmt.Sprintf("%d", rec.HalfDays)))
	b.WriteString(slipLine("Absent Days", fmt.Sprintf("%d", rec.AbsentDays)))
	b.WriteString(thinRule)
	b.WriteString(slipLine("NET SALARY", FormatAmount(currencySymbol, rec.NetSalary)))
	b.WriteString(rule)
	b.WriteString(centered("This is a computer generated salary slip"))
	b.WriteString(centered("and does not require a signature."))
	b.WriteString(centered("For queries contact hr.humbingo@gmail.com"))

	return b.String()
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
