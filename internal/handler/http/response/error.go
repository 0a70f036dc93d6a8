package response

import (
	"errors"
	"net/http"

	"github.com/humbingo/hrms-backend-go/internal/domain/attendance"
	"github.com/humbingo/hrms-backend-go/internal/domain/auth"
	"github.com/humbingo/hrms-backend-go/internal/domain/department"
	"github.com/humbingo/hrms-backend-go/internal/domain/employee"
	"github.com/humbingo/hrms-backend-go/internal/domain/leave"
	"github.com/humbingo/hrms-backend-go/internal/domain/salary"
	"github.com/humbingo/hrms-backend-go/internal/domain/user"
	"github.com/humbingo/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing access token")
	case errors.Is(err, auth.ErrInvalidRefreshToken):
		Unauthorized(w, "Invalid or expired refresh token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, auth.ErrPasswordMismatch):
		BadRequest(w, "Current password is incorrect", nil)
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailTaken):
		Conflict(w, "A user with this email already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeTaken):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmployeeEmailTaken):
		Conflict(w, "Employee email already registered")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is deactivated")
	case errors.Is(err, employee.ErrDepartmentNotActive):
		BadRequest(w, "The referenced department is not active", nil)

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameTaken):
		Conflict(w, "A department with this name already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "Not checked in yet", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrDuplicateDate):
		Conflict(w, "An attendance record already exists for this date")
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this attendance record")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidStatus):
		BadRequest(w, "Invalid leave status", nil)
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "from_date must not be after to_date", nil)
	case errors.Is(err, leave.ErrUnauthorized), errors.Is(err, leave.ErrEmployeeMismatch):
		Forbidden(w, "Not allowed to access this leave request")

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, salary.ErrDuplicatePeriod):
		Conflict(w, "A salary record already exists for this period")
	case errors.Is(err, salary.ErrInvalidWorkingDays):
		BadRequest(w, "Total working days must be between 1 and 31", nil)
	case errors.Is(err, salary.ErrInvalidPeriod):
		BadRequest(w, "Invalid salary period", nil)
	case errors.Is(err, salary.ErrEmployeeHasNoEmail):
		BadRequest(w, "Employee has no email address on record", nil)
	case errors.Is(err, salary.ErrInvalidPaymentState):
		BadRequest(w, "Invalid payment status", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
