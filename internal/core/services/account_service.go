package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/finflowhq/finflow_bot/internal/apperrors"
	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portsrepo "github.com/finflowhq/finflow_bot/internal/core/ports/repositories"
	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/finflowhq/finflow_bot/internal/dto"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvc {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvc = (*accountService)(nil)

func (s *accountService) EnsureAccount(ctx context.Context, accountID int64, username, firstName string) error {
	now := time.Now().UTC()
	account := domain.Account{
		ID:                   accountID,
		Username:             username,
		FirstName:            firstName,
		Tier:                 domain.TierStandard,
		Currency:             "UZS",
		Theme:                "auto",
		NotificationsEnabled: true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.accountRepo.EnsureAccount(ctx, account); err != nil {
		return fmt.Errorf("failed to ensure account: %w", err)
	}
	return nil
}

func (s *accountService) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) UpdateSettings(ctx context.Context, accountID int64, req dto.SettingsRequest) error {
	update := req.ToDomain()
	if update.IsEmpty() {
		return fmt.Errorf("%w: no settings provided", apperrors.ErrValidation)
	}
	if update.Currency != nil && !slices.Contains(domain.SupportedCurrencies, *update.Currency) {
		return fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, *update.Currency)
	}
	if update.Theme != nil && !slices.Contains(domain.SupportedThemes, *update.Theme) {
		return fmt.Errorf("%w: unsupported theme %q", apperrors.ErrValidation, *update.Theme)
	}
	return s.accountRepo.UpdateSettings(ctx, accountID, update)
}

func (s *accountService) SetTier(ctx context.Context, accountID int64, tier domain.Tier) error {
	if tier != domain.TierStandard && tier != domain.TierPremium {
		return fmt.Errorf("%w: unknown tier %q", apperrors.ErrValidation, tier)
	}
	if err := s.accountRepo.UpdateTier(ctx, accountID, tier); err != nil {
		return err
	}
	s.LogInfo(ctx, "Tier updated", "account_id", accountID, "tier", string(tier))
	return nil
}

func (s *accountService) ListAccounts(ctx context.Context, limit int) ([]domain.Account, error) {
	return s.accountRepo.FindAccounts(ctx, limit)
}
