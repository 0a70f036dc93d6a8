package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/humbingo/hrms-backend-go/internal/domain/employee"
	"github.com/humbingo/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.code, e.name, e.email, e.contact_number, e.department_id,
	e.designation, e.join_date, e.is_active,
	e.bank_name, e.bank_account_number, e.ifsc_code,
	e.basic_salary, e.hra, e.allowance,
	e.created_at, e.updated_at`

func scanEmployee(row pgx.Row, emp *employee.Employee, withDepartment bool) error {
	dest := []interface{}{
		&emp.ID, &emp.Code, &emp.Name, &emp.Email, &emp.ContactNumber, &emp.DepartmentID,
		&emp.Designation, &emp.JoinDate, &emp.IsActive,
		&emp.BankName, &emp.BankAccountNumber, &emp.IFSCCode,
		&emp.BasicSalary, &emp.HRA, &emp.Allowance,
		&emp.CreatedAt, &emp.UpdatedAt,
	}
	if withDepartment {
		dest = append(dest, &emp.DepartmentName)
	}
	return row.Scan(dest...)
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	emp.ID = uuid.NewString()

	query := `
		INSERT INTO employees (
			id, code, name, email, contact_number, department_id,
			designation, join_date, is_active,
			bank_name, bank_account_number, ifsc_code,
			basic_salary, hra, allowance
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID,
		emp.Code,
		emp.Name,
		emp.Email,
		emp.ContactNumber,
		emp.DepartmentID,
		emp.Designation,
		emp.JoinDate,
		emp.IsActive,
		emp.BankName,
		emp.BankAccountNumber,
		emp.IFSCCode,
		emp.BasicSalary,
		emp.HRA,
		emp.Allowance,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			if strings.Contains(err.Error(), "email") {
				return employee.Employee{}, employee.ErrEmployeeEmailTaken
			}
			return employee.Employee{}, employee.ErrEmployeeCodeTaken
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`
		SELECT %s, d.name AS department_name
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1
	`, employeeColumns)

	var emp employee.Employee
	err := scanEmployee(q.QueryRow(ctx, query, id), &emp, true)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// GetByCode implements employee.EmployeeRepository.
func (e *employeeRepository) GetByCode(ctx context.Context, code string) (*employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		WHERE e.code = $1
		LIMIT 1
	`, employeeColumns)

	var emp employee.Employee
	err := scanEmployee(q.QueryRow(ctx, query, code), &emp, false)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No existing employee found
		}
		return nil, fmt.Errorf("failed to get employee by code: %w", err)
	}

	return &emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (e *employeeRepository) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		WHERE LOWER(e.email) = LOWER($1)
		LIMIT 1
	`, employeeColumns)

	var emp employee.Employee
	err := scanEmployee(q.QueryRow(ctx, query, email), &emp, false)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return &emp, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $2, email = $3, contact_number = $4, department_id = $5,
			designation = $6, join_date = $7, is_active = $8,
			bank_name = $9, bank_account_number = $10, ifsc_code = $11,
			basic_salary = $12, hra = $13, allowance = $14,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID,
		emp.Name,
		emp.Email,
		emp.ContactNumber,
		emp.DepartmentID,
		emp.Designation,
		emp.JoinDate,
		emp.IsActive,
		emp.BankName,
		emp.BankAccountNumber,
		emp.IFSCCode,
		emp.BasicSalary,
		emp.HRA,
		emp.Allowance,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.ErrEmployeeEmailTaken
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Deactivate implements employee.EmployeeRepository.
func (e *employeeRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// ListActiveIDs implements employee.EmployeeRepository.
func (e *employeeRepository) ListActiveIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, `SELECT id FROM employees WHERE is_active = TRUE`)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (e.name ILIKE $%d OR e.code ILIKE $%d OR e.email ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	if filter.DepartmentID != nil && *filter.DepartmentID != "" {
		baseWhere += fmt.Sprintf(" AND e.department_id = $%d", argIdx)
		args = append(args, *filter.DepartmentID)
		argIdx++
	}

	if filter.IsActive != nil {
		baseWhere += fmt.Sprintf(" AND e.is_active = $%d", argIdx)
		args = append(args, *filter.IsActive)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM employees e WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	limit := filter.PerPage
	if limit == 0 {
		limit = 20
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s, d.name AS department_name
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE %s
		ORDER BY e.code ASC
		LIMIT $%d OFFSET $%d
	`, employeeColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var emps []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := scanEmployee(rows, &emp, true); err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		emps = append(emps, emp)
	}

	return emps, total, nil
}
