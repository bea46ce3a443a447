package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/finflowhq/finflow_bot/internal/apperrors"
	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portsrepo "github.com/finflowhq/finflow_bot/internal/core/ports/repositories"
	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/finflowhq/finflow_bot/internal/platform/config"
)

// quotaUnlimited is the limit reported while quota enforcement is switched
// off globally.
const quotaUnlimited = math.MaxInt64

type accessPolicyService struct {
	BaseService
	enableLimits bool
	tierLimits   map[domain.Tier]int64
	adminIDs     map[int64]bool
	features     map[domain.Tier]domain.FeatureSet
	accountRepo  portsrepo.AccountRepository
	usageRepo    portsrepo.UsageRepository
}

func NewAccessPolicyService(cfg *config.Config, accountRepo portsrepo.AccountRepository, usageRepo portsrepo.UsageRepository) portssvc.AccessPolicySvc {
	return &accessPolicyService{
		enableLimits: cfg.EnableLimits,
		tierLimits:   cfg.TierLimits,
		adminIDs:     cfg.AdminAccountIDs,
		features:     cfg.Features,
		accountRepo:  accountRepo,
		usageRepo:    usageRepo,
	}
}

var _ portssvc.AccessPolicySvc = (*accessPolicyService)(nil)

func (s *accessPolicyService) IsAdmin(accountID int64) bool {
	return s.adminIDs[accountID]
}

func (s *accessPolicyService) ResolveTier(ctx context.Context, accountID int64) domain.Tier {
	if s.IsAdmin(accountID) {
		return domain.TierPremium
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Tier lookup failed, defaulting to standard", "account_id", accountID)
		}
		return domain.TierStandard
	}
	if account.Tier != domain.TierStandard && account.Tier != domain.TierPremium {
		return domain.TierStandard
	}
	return account.Tier
}

func (s *accessPolicyService) HasFeature(ctx context.Context, accountID int64, feature string) bool {
	tier := s.ResolveTier(ctx, accountID)
	return s.features[tier][feature]
}

// CheckQuota reads the account's calendar-month usage against its tier
// limit. Enforcement off and storage failures both read as allowed: a broken
// quota path must never lock users out of the assistant.
func (s *accessPolicyService) CheckQuota(ctx context.Context, accountID int64) (bool, int64, int64) {
	if !s.enableLimits {
		return true, 0, quotaUnlimited
	}

	tier := s.ResolveTier(ctx, accountID)
	limit := s.tierLimits[tier]

	used, err := s.usageRepo.MonthlyTokens(ctx, accountID, monthStart(time.Now().UTC()))
	if err != nil {
		s.LogError(ctx, err, "Quota lookup failed, allowing request", "account_id", accountID)
		return true, 0, limit
	}
	return used < limit, used, limit
}

func (s *accessPolicyService) SubscriptionInfo(ctx context.Context, accountID int64) domain.SubscriptionInfo {
	tier := s.ResolveTier(ctx, accountID)
	limit := s.tierLimits[tier]

	used, err := s.usageRepo.MonthlyTokens(ctx, accountID, monthStart(time.Now().UTC()))
	if err != nil {
		s.LogError(ctx, err, "Usage lookup failed, reporting zero", "account_id", accountID)
		used = 0
	}

	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}

	return domain.SubscriptionInfo{
		Tier:            tier,
		TierName:        tier.DisplayName(),
		IsAdmin:         s.IsAdmin(accountID),
		TokensUsed:      used,
		TokensLimit:     limit,
		TokensRemaining: remaining,
		Features:        s.features[tier],
	}
}

func monthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}
