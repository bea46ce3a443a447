package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal mirrors the goals table.
type Goal struct {
	ID            string          `db:"id"`
	AccountID     int64           `db:"account_id"`
	Title         string          `db:"title"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	Deadline      *time.Time      `db:"deadline"`
	Status        string          `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}
