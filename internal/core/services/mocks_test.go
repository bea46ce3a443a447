package services_test

import (
	"context"
	"time"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/finflowhq/finflow_bot/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) EnsureAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateSettings(ctx context.Context, accountID int64, update domain.SettingsUpdate) error {
	args := m.Called(ctx, accountID, update)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateTier(ctx context.Context, accountID int64, tier domain.Tier) error {
	args := m.Called(ctx, accountID, tier)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccounts(ctx context.Context, limit int) ([]domain.Account, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock UsageRepository ---
type MockUsageRepository struct {
	mock.Mock
}

func (m *MockUsageRepository) SaveUsage(ctx context.Context, record domain.UsageRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockUsageRepository) MonthlyTokens(ctx context.Context, accountID int64, monthStart time.Time) (int64, error) {
	args := m.Called(ctx, accountID, monthStart)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) FindEntries(ctx context.Context, accountID int64, filter domain.LedgerFilter) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, accountID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) GetStatistics(ctx context.Context, accountID int64, from, to time.Time) (domain.Statistics, error) {
	args := m.Called(ctx, accountID, from, to)
	return args.Get(0).(domain.Statistics), args.Error(1)
}

// --- Mock GoalRepository ---
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	args := m.Called(ctx, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) FindGoals(ctx context.Context, accountID int64, status domain.GoalStatus) ([]domain.Goal, error) {
	args := m.Called(ctx, accountID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) AddContribution(ctx context.Context, goalID string, amount decimal.Decimal) error {
	args := m.Called(ctx, goalID, amount)
	return args.Error(0)
}

func (m *MockGoalRepository) UpdateGoal(ctx context.Context, goalID string, update domain.GoalUpdate) error {
	args := m.Called(ctx, goalID, update)
	return args.Error(0)
}

func (m *MockGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	args := m.Called(ctx, goalID)
	return args.Error(0)
}

// --- Mock DiaryRepository ---
type MockDiaryRepository struct {
	mock.Mock
}

func (m *MockDiaryRepository) SaveEntry(ctx context.Context, entry domain.DiaryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockDiaryRepository) FindEntries(ctx context.Context, accountID int64, limit int) ([]domain.DiaryEntry, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DiaryEntry), args.Error(1)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetAdminStatistics(ctx context.Context) (domain.AdminStatistics, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.AdminStatistics), args.Error(1)
}

// --- Mock AccessPolicySvc ---
type MockAccessPolicy struct {
	mock.Mock
}

func (m *MockAccessPolicy) IsAdmin(accountID int64) bool {
	args := m.Called(accountID)
	return args.Bool(0)
}

func (m *MockAccessPolicy) ResolveTier(ctx context.Context, accountID int64) domain.Tier {
	args := m.Called(ctx, accountID)
	return args.Get(0).(domain.Tier)
}

func (m *MockAccessPolicy) HasFeature(ctx context.Context, accountID int64, feature string) bool {
	args := m.Called(ctx, accountID, feature)
	return args.Bool(0)
}

func (m *MockAccessPolicy) CheckQuota(ctx context.Context, accountID int64) (bool, int64, int64) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Get(1).(int64), args.Get(2).(int64)
}

func (m *MockAccessPolicy) SubscriptionInfo(ctx context.Context, accountID int64) domain.SubscriptionInfo {
	args := m.Called(ctx, accountID)
	return args.Get(0).(domain.SubscriptionInfo)
}

// --- Mock AIOrchestratorSvc ---
type MockOrchestrator struct {
	mock.Mock
}

func (m *MockOrchestrator) Invoke(ctx context.Context, capability domain.Capability, payload portssvc.Payload) (portssvc.Result, bool) {
	args := m.Called(ctx, capability, payload)
	return args.Get(0).(portssvc.Result), args.Bool(1)
}

func (m *MockOrchestrator) Transcribe(ctx context.Context, filename string, audio []byte) (portssvc.Result, bool) {
	args := m.Called(ctx, filename, audio)
	return args.Get(0).(portssvc.Result), args.Bool(1)
}

func (m *MockOrchestrator) AnalyzeTransaction(ctx context.Context, text string) ([]domain.ExtractedTransaction, portssvc.Result, bool) {
	args := m.Called(ctx, text)
	var entries []domain.ExtractedTransaction
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.ExtractedTransaction)
	}
	return entries, args.Get(1).(portssvc.Result), args.Bool(2)
}

func (m *MockOrchestrator) AnalyzeDiary(ctx context.Context, text string) (portssvc.Result, bool) {
	args := m.Called(ctx, text)
	return args.Get(0).(portssvc.Result), args.Bool(1)
}

func (m *MockOrchestrator) GenerateReport(ctx context.Context, kind dto.ReportKind, data portssvc.ReportData) (portssvc.Result, bool) {
	args := m.Called(ctx, kind, data)
	return args.Get(0).(portssvc.Result), args.Bool(1)
}

// --- Mock AI Backend ---
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockBackend) Supports(capability domain.Capability) bool {
	args := m.Called(capability)
	return args.Bool(0)
}

func (m *MockBackend) Complete(ctx context.Context, prompt string) (string, int64, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockBackend) Transcribe(ctx context.Context, filename string, audio []byte) (string, int64, error) {
	args := m.Called(ctx, filename, audio)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}
