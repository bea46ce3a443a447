package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finflowhq/finflow_bot/internal/apperrors"
	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/finflowhq/finflow_bot/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FinanceServiceTestSuite struct {
	suite.Suite
	mockLedger   *MockLedgerRepository
	mockUsage    *MockUsageRepository
	mockAccounts *MockAccountRepository
	mockAccess   *MockAccessPolicy
	mockAI       *MockOrchestrator
	service      portssvc.FinanceSvc
}

func (suite *FinanceServiceTestSuite) SetupTest() {
	suite.mockLedger = new(MockLedgerRepository)
	suite.mockUsage = new(MockUsageRepository)
	suite.mockAccounts = new(MockAccountRepository)
	suite.mockAccess = new(MockAccessPolicy)
	suite.mockAI = new(MockOrchestrator)
	suite.service = services.NewFinanceService(suite.mockLedger, suite.mockUsage, suite.mockAccounts, suite.mockAccess, suite.mockAI)

	suite.mockAccounts.On("FindAccountByID", mock.Anything, standardID).
		Return(&domain.Account{ID: standardID, Currency: "UZS"}, nil).Maybe()
}

func (suite *FinanceServiceTestSuite) TestIngestText_QuotaExceeded() {
	suite.mockAccess.On("CheckQuota", mock.Anything, standardID).
		Return(false, int64(1890000), int64(1890000)).Once()

	_, err := suite.service.IngestText(context.Background(), standardID, "50 ming tushlik")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrQuotaExceeded)
	suite.mockAI.AssertNotCalled(suite.T(), "AnalyzeTransaction")
}

func (suite *FinanceServiceTestSuite) TestIngestText_BackendsExhausted() {
	suite.mockAccess.On("CheckQuota", mock.Anything, standardID).
		Return(true, int64(0), int64(1890000)).Once()
	suite.mockAI.On("AnalyzeTransaction", mock.Anything, "nimadir").
		Return(nil, portssvc.Result{}, false).Once()

	result, err := suite.service.IngestText(context.Background(), standardID, "nimadir")

	suite.Require().NoError(err)
	suite.False(result.Analyzed)
	suite.Empty(result.Entries)
	suite.NotEmpty(result.Reply)
	suite.mockLedger.AssertNotCalled(suite.T(), "SaveEntry")
	suite.mockUsage.AssertNotCalled(suite.T(), "SaveUsage")
}

func (suite *FinanceServiceTestSuite) TestIngestText_PersistsEveryEntryAndTracksUsage() {
	ctx := context.Background()
	extracted := []domain.ExtractedTransaction{
		{Direction: domain.DirectionExpense, Amount: decimal.NewFromInt(50000), Category: "Oziq-ovqat", Description: "tushlik"},
		{Direction: domain.DirectionExpense, Amount: decimal.NewFromInt(30000), Category: "Transport"},
	}

	suite.mockAccess.On("CheckQuota", mock.Anything, standardID).
		Return(true, int64(0), int64(1890000)).Once()
	suite.mockAI.On("AnalyzeTransaction", mock.Anything, "50 ming tushlik, 30 ming taksi").
		Return(extracted, portssvc.Result{Cost: 150, Backend: "groq-1"}, true).Once()
	suite.mockLedger.On("SaveEntry", mock.Anything, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.AccountID == standardID && e.ID != "" && e.Direction == domain.DirectionExpense
	})).Return(nil).Twice()
	suite.mockUsage.On("SaveUsage", mock.Anything, mock.MatchedBy(func(r domain.UsageRecord) bool {
		return r.AccountID == standardID && r.Provider == "groq-1" && r.Tokens == 150
	})).Return(nil).Once()

	result, err := suite.service.IngestText(ctx, standardID, "50 ming tushlik, 30 ming taksi")

	suite.Require().NoError(err)
	suite.True(result.Analyzed)
	suite.Len(result.Entries, 2)
	suite.Equal(int64(150), result.TokensUsed)
	suite.Contains(result.Reply, "50,000 so'm")
	suite.Contains(result.Reply, "Oziq-ovqat")
	suite.mockLedger.AssertExpectations(suite.T())
	suite.mockUsage.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestIngestVoice_CombinesTranscriptionAndExtractionCosts() {
	ctx := context.Background()
	audio := []byte{1, 2, 3}

	suite.mockAccess.On("CheckQuota", mock.Anything, standardID).
		Return(true, int64(0), int64(1890000)).Once()
	suite.mockAI.On("Transcribe", mock.Anything, "note.ogg", audio).
		Return(portssvc.Result{Text: "besh ming so'm taksi", Cost: 1000, Backend: "groq-1"}, true).Once()
	suite.mockAI.On("AnalyzeTransaction", mock.Anything, "besh ming so'm taksi").
		Return([]domain.ExtractedTransaction{
			{Direction: domain.DirectionExpense, Amount: decimal.NewFromInt(5000), Category: "Transport"},
		}, portssvc.Result{Cost: 90, Backend: "groq-1"}, true).Once()
	suite.mockLedger.On("SaveEntry", mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockUsage.On("SaveUsage", mock.Anything, mock.Anything).Return(nil).Twice()

	result, err := suite.service.IngestVoice(ctx, standardID, "note.ogg", audio)

	suite.Require().NoError(err)
	suite.True(result.Analyzed)
	suite.Equal("besh ming so'm taksi", result.Transcript)
	suite.Equal(int64(1090), result.TokensUsed)
}

func (suite *FinanceServiceTestSuite) TestIngestVoice_TranscriptionExhausted() {
	suite.mockAccess.On("CheckQuota", mock.Anything, standardID).
		Return(true, int64(0), int64(1890000)).Once()
	suite.mockAI.On("Transcribe", mock.Anything, "note.ogg", mock.Anything).
		Return(portssvc.Result{}, false).Once()

	result, err := suite.service.IngestVoice(context.Background(), standardID, "note.ogg", []byte{9})

	suite.Require().NoError(err)
	suite.False(result.Analyzed)
	suite.NotEmpty(result.Reply)
	suite.mockAI.AssertNotCalled(suite.T(), "AnalyzeTransaction")
}

func (suite *FinanceServiceTestSuite) TestStatistics_BalanceAndBreakdown() {
	ctx := context.Background()
	stats := domain.Statistics{
		TotalIncome:  decimal.NewFromInt(1000000),
		TotalExpense: decimal.NewFromInt(80000),
		Balance:      decimal.NewFromInt(920000),
		ExpensesByCategory: []domain.CategoryTotal{
			{Category: "Oziq-ovqat", Total: decimal.NewFromInt(50000)},
			{Category: "Transport", Total: decimal.NewFromInt(30000)},
		},
	}

	suite.mockLedger.On("GetStatistics", mock.Anything, standardID, mock.Anything, mock.Anything).
		Return(stats, nil).Once()
	suite.mockLedger.On("FindEntries", mock.Anything, standardID, domain.LedgerFilter{Limit: 5}).
		Return([]domain.LedgerEntry{}, nil).Once()

	resp, err := suite.service.Statistics(ctx, standardID, time.Time{}, time.Time{})

	suite.Require().NoError(err)
	// Balance is income minus expense, breakdown ordered by total descending.
	suite.True(resp.Statistics.Balance.Equal(resp.Statistics.TotalIncome.Sub(resp.Statistics.TotalExpense)))
	breakdownSum := decimal.Zero
	for _, ct := range resp.Statistics.ExpensesByCategory {
		breakdownSum = breakdownSum.Add(ct.Total)
	}
	suite.True(breakdownSum.Equal(resp.Statistics.TotalExpense))
	suite.Equal("Oziq-ovqat", resp.Statistics.ExpensesByCategory[0].Category)
	suite.Contains(resp.Reply, "920,000 so'm")
}

func TestFinanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FinanceServiceTestSuite))
}
