package fixtures

import (
	"github.com/humbingo/hrms-backend-go/internal/domain/department"
)

// DefaultAdminEmail is the bootstrap admin login created by the seed
// command when no account exists yet.
const DefaultAdminEmail = "admin@humbingo.com"

// DefaultDepartments returns the departments seeded on a fresh install.
func DefaultDepartments() []department.Department {
	names := []string{
		"Engineering",
		"Human Resources",
		"Finance",
		"Sales",
		"Operations",
	}

	depts := make([]department.Department, 0, len(names))
	for _, name := range names {
		depts = append(depts, department.Department{
			Name:     name,
			IsActive: true,
		})
	}
	return depts
}
