package domain

// SupportedCurrencies are the display currencies a user may choose from.
var SupportedCurrencies = []string{"UZS", "USD", "RUB"}

// SupportedThemes are the display themes a user may choose from.
var SupportedThemes = []string{"light", "dark", "auto"}

// SettingsUpdate carries preference edits. Nil fields are left unchanged.
type SettingsUpdate struct {
	Currency             *string
	Theme                *string
	Phone                *string
	Email                *string
	NotificationsEnabled *bool
}

// IsEmpty reports whether the update changes nothing.
func (u SettingsUpdate) IsEmpty() bool {
	return u.Currency == nil && u.Theme == nil && u.Phone == nil &&
		u.Email == nil && u.NotificationsEnabled == nil
}
