package services_test

import (
	"context"
	"math"
	"testing"

	"github.com/finflowhq/finflow_bot/internal/apperrors"
	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/finflowhq/finflow_bot/internal/core/services"
	"github.com/finflowhq/finflow_bot/internal/platform/config"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	adminID    = int64(111)
	standardID = int64(222)
	premiumID  = int64(333)
)

type AccessPolicyServiceTestSuite struct {
	suite.Suite
	mockAccounts *MockAccountRepository
	mockUsage    *MockUsageRepository
	cfg          *config.Config
}

func (suite *AccessPolicyServiceTestSuite) SetupTest() {
	suite.mockAccounts = new(MockAccountRepository)
	suite.mockUsage = new(MockUsageRepository)
	suite.cfg = &config.Config{
		EnableLimits: true,
		TierLimits: map[domain.Tier]int64{
			domain.TierStandard: 1890000,
			domain.TierPremium:  2400000,
		},
		AdminAccountIDs: map[int64]bool{adminID: true},
		Features: map[domain.Tier]domain.FeatureSet{
			domain.TierStandard: {
				domain.FeatureStatistics: true,
				domain.FeatureGoals:      true,
			},
			domain.TierPremium: {
				domain.FeatureStatistics:      true,
				domain.FeatureGoals:           true,
				domain.FeatureDiaryAIAnalysis: true,
				domain.FeatureMonthlyReport:   true,
			},
		},
	}
}

func (suite *AccessPolicyServiceTestSuite) newService() portssvc.AccessPolicySvc {
	return services.NewAccessPolicyService(suite.cfg, suite.mockAccounts, suite.mockUsage)
}

func (suite *AccessPolicyServiceTestSuite) TestResolveTier_AdminAlwaysPremium() {
	svc := suite.newService()

	// No account lookup should be needed for allow-listed ids.
	tier := svc.ResolveTier(context.Background(), adminID)

	suite.Equal(domain.TierPremium, tier)
	suite.mockAccounts.AssertNotCalled(suite.T(), "FindAccountByID")
}

func (suite *AccessPolicyServiceTestSuite) TestResolveTier_StoredTier() {
	suite.mockAccounts.On("FindAccountByID", mock.Anything, premiumID).
		Return(&domain.Account{ID: premiumID, Tier: domain.TierPremium}, nil).Once()
	svc := suite.newService()

	suite.Equal(domain.TierPremium, svc.ResolveTier(context.Background(), premiumID))
	suite.mockAccounts.AssertExpectations(suite.T())
}

func (suite *AccessPolicyServiceTestSuite) TestResolveTier_UnknownAccountDefaultsStandard() {
	suite.mockAccounts.On("FindAccountByID", mock.Anything, standardID).
		Return(nil, apperrors.ErrNotFound).Once()
	svc := suite.newService()

	suite.Equal(domain.TierStandard, svc.ResolveTier(context.Background(), standardID))
}

func (suite *AccessPolicyServiceTestSuite) TestResolveTier_GarbageTierDefaultsStandard() {
	suite.mockAccounts.On("FindAccountByID", mock.Anything, standardID).
		Return(&domain.Account{ID: standardID, Tier: domain.Tier("gold")}, nil).Once()
	svc := suite.newService()

	suite.Equal(domain.TierStandard, svc.ResolveTier(context.Background(), standardID))
}

func (suite *AccessPolicyServiceTestSuite) TestHasFeature_TierGrants() {
	suite.mockAccounts.On("FindAccountByID", mock.Anything, standardID).
		Return(&domain.Account{ID: standardID, Tier: domain.TierStandard}, nil)
	svc := suite.newService()
	ctx := context.Background()

	suite.True(svc.HasFeature(ctx, standardID, domain.FeatureGoals))
	suite.False(svc.HasFeature(ctx, standardID, domain.FeatureDiaryAIAnalysis))
	suite.True(svc.HasFeature(ctx, adminID, domain.FeatureMonthlyReport))
}

func (suite *AccessPolicyServiceTestSuite) TestHasFeature_UnknownFeatureDenied() {
	svc := suite.newService()

	suite.False(svc.HasFeature(context.Background(), adminID, "time_travel"))
}

func (suite *AccessPolicyServiceTestSuite) TestCheckQuota_EnforcementOffAlwaysAllows() {
	// With the global switch off the limit reads as unbounded, not as the
	// tier's configured ceiling, and no usage lookup happens.
	suite.cfg.EnableLimits = false
	svc := suite.newService()

	allowed, used, limit := svc.CheckQuota(context.Background(), standardID)

	suite.True(allowed)
	suite.Equal(int64(0), used)
	suite.Equal(int64(math.MaxInt64), limit)
	suite.mockUsage.AssertNotCalled(suite.T(), "MonthlyTokens")
	suite.mockAccounts.AssertNotCalled(suite.T(), "FindAccountByID")
}

func (suite *AccessPolicyServiceTestSuite) TestCheckQuota_UnderLimit() {
	suite.mockAccounts.On("FindAccountByID", mock.Anything, standardID).
		Return(&domain.Account{ID: standardID, Tier: domain.TierStandard}, nil)
	suite.mockUsage.On("MonthlyTokens", mock.Anything, standardID, mock.Anything).
		Return(int64(500000), nil).Once()
	svc := suite.newService()

	allowed, used, limit := svc.CheckQuota(context.Background(), standardID)

	suite.True(allowed)
	suite.Equal(int64(500000), used)
	suite.Equal(int64(1890000), limit)
}

func (suite *AccessPolicyServiceTestSuite) TestCheckQuota_AtLimitDenied() {
	suite.mockAccounts.On("FindAccountByID", mock.Anything, standardID).
		Return(&domain.Account{ID: standardID, Tier: domain.TierStandard}, nil)
	suite.mockUsage.On("MonthlyTokens", mock.Anything, standardID, mock.Anything).
		Return(int64(1890000), nil).Once()
	svc := suite.newService()

	allowed, _, _ := svc.CheckQuota(context.Background(), standardID)

	suite.False(allowed)
}

func (suite *AccessPolicyServiceTestSuite) TestCheckQuota_StorageFailureFailsOpen() {
	suite.mockAccounts.On("FindAccountByID", mock.Anything, standardID).
		Return(&domain.Account{ID: standardID, Tier: domain.TierStandard}, nil)
	suite.mockUsage.On("MonthlyTokens", mock.Anything, standardID, mock.Anything).
		Return(int64(0), context.DeadlineExceeded).Once()
	svc := suite.newService()

	allowed, _, _ := svc.CheckQuota(context.Background(), standardID)

	suite.True(allowed)
}

func (suite *AccessPolicyServiceTestSuite) TestSubscriptionInfo() {
	suite.mockAccounts.On("FindAccountByID", mock.Anything, premiumID).
		Return(&domain.Account{ID: premiumID, Tier: domain.TierPremium}, nil)
	suite.mockUsage.On("MonthlyTokens", mock.Anything, premiumID, mock.Anything).
		Return(int64(400000), nil).Once()
	svc := suite.newService()

	info := svc.SubscriptionInfo(context.Background(), premiumID)

	suite.Equal(domain.TierPremium, info.Tier)
	suite.Equal("💎 Premium", info.TierName)
	suite.False(info.IsAdmin)
	suite.Equal(int64(400000), info.TokensUsed)
	suite.Equal(int64(2400000), info.TokensLimit)
	suite.Equal(int64(2000000), info.TokensRemaining)
	suite.True(info.Features[domain.FeatureDiaryAIAnalysis])
}

func TestAccessPolicyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccessPolicyServiceTestSuite))
}
