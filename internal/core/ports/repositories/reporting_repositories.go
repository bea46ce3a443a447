package repositories

import (
	"context"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
)

// ReportingRepository serves operator-facing aggregates across all accounts.
type ReportingRepository interface {
	GetAdminStatistics(ctx context.Context) (domain.AdminStatistics, error)
}
