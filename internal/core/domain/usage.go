package domain

import "time"

// UsageRecord is one billed AI call, measured in abstract token cost units.
// Records are aggregated per calendar month for quota checks.
type UsageRecord struct {
	ID        string    `json:"id"`
	AccountID int64     `json:"accountID"`
	Provider  string    `json:"provider"`
	Tokens    int64     `json:"tokens"`
	UsedOn    time.Time `json:"usedOn"`
	CreatedAt time.Time `json:"createdAt"`
}
