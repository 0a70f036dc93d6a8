package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/humbingo/hrms-backend-go/internal/domain/department"
	"github.com/humbingo/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepository{db: db}
}

// Create implements department.DepartmentRepository.
func (d *departmentRepository) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	q := GetQuerier(ctx, d.db)

	dept.ID = uuid.NewString()

	query := `
		INSERT INTO departments (id, name, is_active)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		dept.ID,
		dept.Name,
		dept.IsActive,
	).Scan(&dept.CreatedAt, &dept.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return department.Department{}, department.ErrDepartmentNameTaken
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return dept, nil
}

// GetByID implements department.DepartmentRepository.
func (d *departmentRepository) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM departments
		WHERE id = $1
	`

	var dept department.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&dept.ID, &dept.Name, &dept.IsActive, &dept.CreatedAt, &dept.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department by ID: %w", err)
	}

	return dept, nil
}

// GetByName implements department.DepartmentRepository.
func (d *departmentRepository) GetByName(ctx context.Context, name string) (*department.Department, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM departments
		WHERE LOWER(name) = LOWER($1)
		LIMIT 1
	`

	var dept department.Department
	err := q.QueryRow(ctx, query, name).Scan(
		&dept.ID, &dept.Name, &dept.IsActive, &dept.CreatedAt, &dept.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No existing department found
		}
		return nil, fmt.Errorf("failed to get department by name: %w", err)
	}

	return &dept, nil
}

// Update implements department.DepartmentRepository.
func (d *departmentRepository) Update(ctx context.Context, dept department.Department) error {
	q := GetQuerier(ctx, d.db)

	query := `
		UPDATE departments
		SET name = $2, is_active = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, dept.ID, dept.Name, dept.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return department.ErrDepartmentNameTaken
		}
		return fmt.Errorf("failed to update department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

// List implements department.DepartmentRepository.
func (d *departmentRepository) List(ctx context.Context, filter department.DepartmentFilter) ([]department.Department, int64, error) {
	q := GetQuerier(ctx, d.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND d.name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	if filter.IsActive != nil {
		baseWhere += fmt.Sprintf(" AND d.is_active = $%d", argIdx)
		args = append(args, *filter.IsActive)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM departments d WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count departments: %w", err)
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
		SELECT d.id, d.name, d.is_active, d.created_at, d.updated_at,
			   COUNT(e.id) AS employee_count
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id AND e.is_active = TRUE
		WHERE %s
		GROUP BY d.id
		ORDER BY d.name ASC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var depts []department.Department
	for rows.Next() {
		var dept department.Department
		if err := rows.Scan(
			&dept.ID, &dept.Name, &dept.IsActive, &dept.CreatedAt, &dept.UpdatedAt,
			&dept.EmployeeCount,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan department: %w", err)
		}
		depts = append(depts, dept)
	}

	return depts, total, nil
}
