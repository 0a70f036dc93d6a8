package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/humbingo/hrms-backend-go/internal/domain/leave"
	"github.com/humbingo/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

// Create implements leave.LeaveRepository.
func (l *leaveRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	req.ID = uuid.NewString()

	query := `
		INSERT INTO leave_requests (
			id, employee_id, from_date, to_date, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		req.FromDate,
		req.ToDate,
		req.Reason,
		req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRepository.
func (l *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT l.id, l.employee_id, l.from_date, l.to_date, l.reason, l.status,
			   l.created_at, l.updated_at,
			   e.name AS employee_name,
			   e.code AS employee_code
		FROM leave_requests l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.FromDate, &req.ToDate, &req.Reason, &req.Status,
		&req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName, &req.EmployeeCode,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return req, nil
}

// UpdateStatus implements leave.LeaveRepository.
func (l *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update leave status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

// List implements leave.LeaveRepository.
func (l *leaveRepository) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, l.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND l.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND l.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.DateFrom != nil && *filter.DateFrom != "" {
		baseWhere += fmt.Sprintf(" AND l.to_date >= $%d", argIdx)
		args = append(args, *filter.DateFrom)
		argIdx++
	}

	if filter.DateTo != nil && *filter.DateTo != "" {
		baseWhere += fmt.Sprintf(" AND l.from_date <= $%d", argIdx)
		args = append(args, *filter.DateTo)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM leave_requests l WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
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
		SELECT l.id, l.employee_id, l.from_date, l.to_date, l.reason, l.status,
			   l.created_at, l.updated_at,
			   e.name AS employee_name,
			   e.code AS employee_code
		FROM leave_requests l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE %s
		ORDER BY l.created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var reqs []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.FromDate, &req.ToDate, &req.Reason, &req.Status,
			&req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName, &req.EmployeeCode,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		reqs = append(reqs, req)
	}

	return reqs, total, nil
}
