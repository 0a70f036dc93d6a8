package user

import (
	"time"
)

// User is a portal login. Admins have no employee link; employees carry a
// reference to their employee record for self-service scoping.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	IsAdmin      bool
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
