package services

import (
	"context"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
	"github.com/finflowhq/finflow_bot/internal/dto"
)

// AccountSvc manages accounts and their preferences.
type AccountSvc interface {
	// EnsureAccount registers the account on first contact; repeat calls
	// are no-ops.
	EnsureAccount(ctx context.Context, accountID int64, username, firstName string) error

	GetAccount(ctx context.Context, accountID int64) (*domain.Account, error)

	// UpdateSettings validates and applies preference edits.
	UpdateSettings(ctx context.Context, accountID int64, req dto.SettingsRequest) error

	// SetTier assigns a subscription tier (admin operation).
	SetTier(ctx context.Context, accountID int64, tier domain.Tier) error

	ListAccounts(ctx context.Context, limit int) ([]domain.Account, error)
}
