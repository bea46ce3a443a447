package repositories

import (
	"context"
	"time"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
)

// LedgerRepository persists immutable income/expense entries.
type LedgerRepository interface {
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error

	FindEntries(ctx context.Context, accountID int64, filter domain.LedgerFilter) ([]domain.LedgerEntry, error)

	// GetStatistics aggregates the account's ledger over [from, to]:
	// income and expense totals, derived balance, and the expense
	// breakdown grouped by category in descending total order.
	GetStatistics(ctx context.Context, accountID int64, from, to time.Time) (domain.Statistics, error)
}
