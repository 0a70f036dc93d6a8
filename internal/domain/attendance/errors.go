package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNotCheckedIn      = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrDuplicateDate      = errors.New("an attendance record already exists for this employee on this date")
	ErrUnauthorized       = errors.New("unauthorized to access this attendance record")
)
