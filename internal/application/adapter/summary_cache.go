package adapter

import (
	"context"
	"time"

	"github.com/ledgerline/backend/internal/domain/entity"
)

// SummaryCache caches the dashboard summary between refreshes so a burst of
// UI loads does not fan out to the payments API every time. A cache miss is
// reported as (nil, nil).
type SummaryCache interface {
	Get(ctx context.Context, userID string) (*entity.DashboardSummary, error)
	Set(ctx context.Context, userID string, summary *entity.DashboardSummary, ttl time.Duration) error
}
