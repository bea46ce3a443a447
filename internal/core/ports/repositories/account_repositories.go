package repositories

import (
	"context"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
)

// AccountRepository persists accounts keyed by their chat transport id.
type AccountRepository interface {
	// EnsureAccount inserts the account if it does not exist yet and is a
	// no-op otherwise. Called on every first-seen interaction.
	EnsureAccount(ctx context.Context, account domain.Account) error

	// FindAccountByID returns apperrors.ErrNotFound when no row exists.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	UpdateSettings(ctx context.Context, accountID int64, update domain.SettingsUpdate) error
	UpdateTier(ctx context.Context, accountID int64, tier domain.Tier) error

	FindAccounts(ctx context.Context, limit int) ([]domain.Account, error)
}
