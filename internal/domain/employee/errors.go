package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmployeeCodeTaken   = errors.New("an employee with this code already exists")
	ErrEmployeeEmailTaken  = errors.New("an employee with this email already exists")
	ErrEmployeeInactive    = errors.New("employee is deactivated")
	ErrDepartmentNotActive = errors.New("the referenced department is not active")
)
