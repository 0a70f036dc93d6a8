package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveNotFound    = errors.New("leave request not found")
	ErrInvalidStatus    = errors.New("invalid leave status")
	ErrInvalidDateRange = errors.New("from_date must not be after to_date")
	ErrUnauthorized     = errors.New("unauthorized to access this leave request")
	ErrEmployeeMismatch = errors.New("leave request belongs to another employee")
)
