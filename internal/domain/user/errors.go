package user

import "errors"

// User domain errors
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUserEmailTaken = errors.New("a user with this email already exists")
)
