package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/humbingo/hrms-backend-go/internal/domain/dashboard"
	"github.com/humbingo/hrms-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// GetStats implements dashboard.DashboardRepository.
func (d *dashboardRepository) GetStats(ctx context.Context, today time.Time) (dashboard.Stats, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM employees),
			(SELECT COUNT(*) FROM employees WHERE is_active = TRUE),
			(SELECT COUNT(*) FROM departments WHERE is_active = TRUE),
			(SELECT COUNT(*) FROM leave_requests WHERE status = 'Pending'),
			(SELECT COUNT(*) FROM attendances WHERE date = $1 AND check_in IS NOT NULL),
			(SELECT COUNT(*) FROM attendances WHERE date = $1 AND check_out IS NOT NULL),
			(SELECT COUNT(*) FROM salary_records WHERE payment_status = 'unpaid')
	`

	var stats dashboard.Stats
	err := q.QueryRow(ctx, query, today).Scan(
		&stats.TotalEmployees,
		&stats.ActiveEmployees,
		&stats.TotalDepartments,
		&stats.PendingLeaves,
		&stats.CheckedInToday,
		&stats.CheckedOutToday,
		&stats.UnpaidSalarySlips,
	)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	return stats, nil
}
