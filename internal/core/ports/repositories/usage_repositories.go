package repositories

import (
	"context"
	"time"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
)

// UsageRepository persists AI usage records for quota accounting.
type UsageRepository interface {
	// SaveUsage records one billed AI call and bumps the owning account's
	// cumulative counter in the same transaction.
	SaveUsage(ctx context.Context, record domain.UsageRecord) error

	// MonthlyTokens sums the account's usage on or after monthStart.
	MonthlyTokens(ctx context.Context, accountID int64, monthStart time.Time) (int64, error)
}
