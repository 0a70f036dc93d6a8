package dashboard

import (
	"context"
	"time"

	"github.com/humbingo/hrms-backend-go/internal/domain/dashboard"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
	}
}

// GetStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.Stats, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return s.DashboardRepository.GetStats(ctx, today)
}
