package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"john.doe@example.com",
		"hr.humbingo@gmail.com",
		"a+b@sub.domain.co",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@missinglocal.com",
		"missing@domain",
		"spaces in@email.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("550e8400-e29b-41d4-a716-446655440000"))
	assert.True(t, IsValidUUID("550E8400-E29B-41D4-A716-446655440000"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID("550e8400e29b41d4a716446655440000"))
	assert.False(t, IsValidUUID(""))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("12345"))
	assert.False(t, IsNumeric("12a45"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("12.45"))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-06-15")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, 15, date.Day())

	_, ok = IsValidDate("15-06-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)
}

func TestIsValidTimeOfDay(t *testing.T) {
	_, ok := IsValidTimeOfDay("09:00:00")
	assert.True(t, ok)

	_, ok = IsValidTimeOfDay("23:59:59")
	assert.True(t, ok)

	_, ok = IsValidTimeOfDay("24:00:00")
	assert.False(t, ok)

	_, ok = IsValidTimeOfDay("9am")
	assert.False(t, ok)
}

func TestIsValidContactNumber(t *testing.T) {
	assert.True(t, IsValidContactNumber("9876543210"))
	assert.True(t, IsValidContactNumber("+919876543210"))
	assert.True(t, IsValidContactNumber("91 98765 43210"))
	assert.False(t, IsValidContactNumber("12345"))
	assert.False(t, IsValidContactNumber("98765abc10"))
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("EMP001"))
	assert.True(t, IsValidEmployeeCode("EMP12345"))
	assert.False(t, IsValidEmployeeCode("emp001"))
	assert.False(t, IsValidEmployeeCode("EMP01"))
	assert.False(t, IsValidEmployeeCode("E001"))
}

func TestIsValidIFSC(t *testing.T) {
	assert.True(t, IsValidIFSC("HDFC0001234"))
	assert.True(t, IsValidIFSC("SBIN0X12345"))
	assert.False(t, IsValidIFSC("HDFC1001234"))
	assert.False(t, IsValidIFSC("hdfc0001234"))
	assert.False(t, IsValidIFSC("HDFC00012"))
}

func TestIsValidAmount(t *testing.T) {
	assert.True(t, IsValidAmount("25000"))
	assert.True(t, IsValidAmount("25000.50"))
	assert.True(t, IsValidAmount("0.5"))
	assert.False(t, IsValidAmount("25000.505"))
	assert.False(t, IsValidAmount("-100"))
	assert.False(t, IsValidAmount(""))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid email format"},
		{Field: "basic_salary", Message: "must be a positive amount"},
	}

	assert.Contains(t, errs.Error(), "email: invalid email format")
	assert.Contains(t, errs.Error(), "basic_salary: must be a positive amount")

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "invalid email format", m["email"])
}
