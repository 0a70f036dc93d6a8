package department

import "errors"

// Department domain errors
var (
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrDepartmentNameTaken = errors.New("a department with this name already exists")
)
