package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/humbingo/hrms-backend-go/internal/domain/salary"
	"github.com/humbingo/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepository{db: db}
}

const salaryColumns = `
	s.id, s.employee_id, s.year, s.month,
	s.basic_salary, s.hra, s.allowance,
	s.total_working_days, s.present_days, s.half_days, s.absent_days,
	s.deduction, s.pf_percentage,
	s.gross_salary, s.pf_amount, s.net_salary,
	s.payment_status, s.created_at, s.updated_at`

func scanSalary(row pgx.Row, rec *salary.SalaryRecord, withEmployee bool) error {
	dest := []interface{}{
		&rec.ID, &rec.EmployeeID, &rec.Year, &rec.Month,
		&rec.BasicSalary, &rec.HRA, &rec.Allowance,
		&rec.TotalWorkingDays, &rec.PresentDays, &rec.HalfDays, &rec.AbsentDays,
		&rec.Deduction, &rec.PFPercentage,
		&rec.GrossSalary, &rec.PFAmount, &rec.NetSalary,
		&rec.PaymentStatus, &rec.CreatedAt, &rec.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest,
			&rec.EmployeeName, &rec.EmployeeCode, &rec.Designation,
			&rec.DepartmentName, &rec.EmployeeEmail,
		)
	}
	return row.Scan(dest...)
}

// Create implements salary.SalaryRepository.
func (s *salaryRepository) Create(ctx context.Context, rec salary.SalaryRecord) (salary.SalaryRecord, error) {
	q := GetQuerier(ctx, s.db)

	rec.ID = uuid.NewString()

	query := `
		INSERT INTO salary_records (
			id, employee_id, year, month,
			basic_salary, hra, allowance,
			total_working_days, present_days, half_days, absent_days,
			deduction, pf_percentage,
			gross_salary, pf_amount, net_salary,
			payment_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.EmployeeID,
		rec.Year,
		rec.Month,
		rec.BasicSalary,
		rec.HRA,
		rec.Allowance,
		rec.TotalWorkingDays,
		rec.PresentDays,
		rec.HalfDays,
		rec.AbsentDays,
		rec.Deduction,
		rec.PFPercentage,
		rec.GrossSalary,
		rec.PFAmount,
		rec.NetSalary,
		rec.PaymentStatus,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return salary.SalaryRecord{}, salary.ErrDuplicatePeriod
		}
		return salary.SalaryRecord{}, fmt.Errorf("failed to create salary record: %w", err)
	}

	return rec, nil
}

// GetByID implements salary.SalaryRepository.
func (s *salaryRepository) GetByID(ctx context.Context, id string) (salary.SalaryRecord, error) {
	q := GetQuerier(ctx, s.db)

	query := fmt.Sprintf(`
		SELECT %s,
			   e.name AS employee_name,
			   e.code AS employee_code,
			   e.designation,
			   d.name AS department_name,
			   e.email AS employee_email
		FROM salary_records s
		LEFT JOIN employees e ON e.id = s.employee_id
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE s.id = $1
	`, salaryColumns)

	var rec salary.SalaryRecord
	err := scanSalary(q.QueryRow(ctx, query, id), &rec, true)

	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.SalaryRecord{}, salary.ErrSalaryNotFound
		}
		return salary.SalaryRecord{}, fmt.Errorf("failed to get salary record by ID: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndPeriod implements salary.SalaryRepository.
func (s *salaryRepository) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, year, month int) (*salary.SalaryRecord, error) {
	q := GetQuerier(ctx, s.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM salary_records s
		WHERE s.employee_id = $1
		  AND s.year = $2
		  AND s.month = $3
		LIMIT 1
	`, salaryColumns)

	var rec salary.SalaryRecord
	err := scanSalary(q.QueryRow(ctx, query, employeeID, year, month), &rec, false)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No existing record for this period
		}
		return nil, fmt.Errorf("failed to get salary record by period: %w", err)
	}

	return &rec, nil
}

// Update implements salary.SalaryRepository.
func (s *salaryRepository) Update(ctx context.Context, rec salary.SalaryRecord) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE salary_records
		SET total_working_days = $2, present_days = $3, half_days = $4, absent_days = $5,
			deduction = $6, pf_percentage = $7,
			gross_salary = $8, pf_amount = $9, net_salary = $10,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rec.ID,
		rec.TotalWorkingDays,
		rec.PresentDays,
		rec.HalfDays,
		rec.AbsentDays,
		rec.Deduction,
		rec.PFPercentage,
		rec.GrossSalary,
		rec.PFAmount,
		rec.NetSalary,
	)
	if err != nil {
		return fmt.Errorf("failed to update salary record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrSalaryNotFound
	}

	return nil
}

// UpdatePaymentStatus implements salary.SalaryRepository.
func (s *salaryRepository) UpdatePaymentStatus(ctx context.Context, id string, status salary.PaymentStatus) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE salary_records
		SET payment_status = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrSalaryNotFound
	}

	return nil
}

// List implements salary.SalaryRepository.
func (s *salaryRepository) List(ctx context.Context, filter salary.SalaryFilter) ([]salary.SalaryRecord, int64, error) {
	q := GetQuerier(ctx, s.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND s.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Year != nil {
		baseWhere += fmt.Sprintf(" AND s.year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}

	if filter.Month != nil {
		baseWhere += fmt.Sprintf(" AND s.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}

	if filter.PaymentStatus != nil && *filter.PaymentStatus != "" {
		baseWhere += fmt.Sprintf(" AND s.payment_status = $%d", argIdx)
		args = append(args, *filter.PaymentStatus)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM salary_records s WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count salary records: %w", err)
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
		SELECT %s,
			   e.name AS employee_name,
			   e.code AS employee_code,
			   e.designation,
			   d.name AS department_name,
			   e.email AS employee_email
		FROM salary_records s
		LEFT JOIN employees e ON e.id = s.employee_id
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE %s
		ORDER BY s.year DESC, s.month DESC, e.code ASC
		LIMIT $%d OFFSET $%d
	`, salaryColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	var recs []salary.SalaryRecord
	for rows.Next() {
		var rec salary.SalaryRecord
		if err := scanSalary(rows, &rec, true); err != nil {
			return nil, 0, fmt.Errorf("failed to scan salary record: %w", err)
		}
		recs = append(recs, rec)
	}

	return recs, total, nil
}
