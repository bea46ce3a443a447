package domain

import "time"

// Tier is a named subscription level granting a fixed feature set and usage quota.
type Tier string

const (
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

// DisplayName returns the user-facing label for a tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierStandard:
		return "💙 Standart"
	case TierPremium:
		return "💎 Premium"
	default:
		return string(t)
	}
}

// Account is the root aggregate: a chat user known to the assistant.
// The ID is assigned by the chat transport and never changes.
type Account struct {
	ID                   int64     `json:"id"`
	Username             string    `json:"username,omitempty"`
	FirstName            string    `json:"firstName,omitempty"`
	Tier                 Tier      `json:"tier"`
	TokensUsed           int64     `json:"tokensUsed"`
	Currency             string    `json:"currency"`
	Theme                string    `json:"theme"`
	Phone                string    `json:"phone,omitempty"`
	Email                string    `json:"email,omitempty"`
	NotificationsEnabled bool      `json:"notificationsEnabled"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}
