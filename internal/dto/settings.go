package dto

import "github.com/finflowhq/finflow_bot/internal/core/domain"

// SettingsRequest edits account preferences. Nil fields are left unchanged.
type SettingsRequest struct {
	Currency             *string `json:"currency,omitempty"`
	Theme                *string `json:"theme,omitempty"`
	Phone                *string `json:"phone,omitempty"`
	Email                *string `json:"email,omitempty"`
	NotificationsEnabled *bool   `json:"notificationsEnabled,omitempty"`
}

// ToDomain maps the request onto a domain update.
func (r SettingsRequest) ToDomain() domain.SettingsUpdate {
	return domain.SettingsUpdate{
		Currency:             r.Currency,
		Theme:                r.Theme,
		Phone:                r.Phone,
		Email:                r.Email,
		NotificationsEnabled: r.NotificationsEnabled,
	}
}

// SubscriptionResponse is the entitlement snapshot plus its chat rendering.
type SubscriptionResponse struct {
	domain.SubscriptionInfo
	StatusText string `json:"statusText"`
}

// TierUpdateRequest assigns a tier to an account (admin only).
type TierUpdateRequest struct {
	Tier domain.Tier `json:"tier" binding:"required,oneof=standard premium"`
}
