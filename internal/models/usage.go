package models

import "time"

// UsageRecord mirrors the usage_records table.
type UsageRecord struct {
	ID        string    `db:"id"`
	AccountID int64     `db:"account_id"`
	Provider  string    `db:"provider"`
	Tokens    int64     `db:"tokens"`
	UsedOn    time.Time `db:"used_on"`
	CreatedAt time.Time `db:"created_at"`
}
