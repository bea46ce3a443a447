package models

import "time"

// Account mirrors the accounts table.
type Account struct {
	ID                   int64      `db:"id"`
	Username             *string    `db:"username"`
	FirstName            *string    `db:"first_name"`
	Tier                 string     `db:"tier"`
	TokensUsed           int64      `db:"tokens_used"`
	Currency             string     `db:"currency"`
	Theme                string     `db:"theme"`
	Phone                *string    `db:"phone"`
	Email                *string    `db:"email"`
	NotificationsEnabled bool       `db:"notifications_enabled"`
	CreatedAt            time.Time  `db:"created_at"`
	UpdatedAt            time.Time  `db:"updated_at"`
}
