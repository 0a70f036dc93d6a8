package dashboard

import (
	"context"
	"time"
)

// DashboardRepository aggregates counts across the HR tables for the
// admin console landing page.
type DashboardRepository interface {
	GetStats(ctx context.Context, today time.Time) (Stats, error)
}
