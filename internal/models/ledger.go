package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry mirrors the ledger_entries table.
type LedgerEntry struct {
	ID          string          `db:"id"`
	AccountID   int64           `db:"account_id"`
	Direction   string          `db:"direction"`
	Amount      decimal.Decimal `db:"amount"`
	Category    string          `db:"category"`
	Description *string         `db:"description"`
	OccurredOn  time.Time       `db:"occurred_on"`
	CreatedAt   time.Time       `db:"created_at"`
}
