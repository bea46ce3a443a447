package services_test

import (
	"context"
	"testing"

	"github.com/finflowhq/finflow_bot/internal/apperrors"
	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/finflowhq/finflow_bot/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DiaryServiceTestSuite struct {
	suite.Suite
	mockDiary  *MockDiaryRepository
	mockUsage  *MockUsageRepository
	mockAccess *MockAccessPolicy
	mockAI     *MockOrchestrator
	service    portssvc.DiarySvc
}

func (suite *DiaryServiceTestSuite) SetupTest() {
	suite.mockDiary = new(MockDiaryRepository)
	suite.mockUsage = new(MockUsageRepository)
	suite.mockAccess = new(MockAccessPolicy)
	suite.mockAI = new(MockOrchestrator)
	suite.service = services.NewDiaryService(suite.mockDiary, suite.mockUsage, suite.mockAccess, suite.mockAI)
}

func (suite *DiaryServiceTestSuite) TestAddEntry_RejectsEmptyContent() {
	_, err := suite.service.AddEntry(context.Background(), standardID, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DiaryServiceTestSuite) TestAddEntry_NoReflectionWithoutFeature() {
	suite.mockAccess.On("HasFeature", mock.Anything, standardID, domain.FeatureDiaryAIAnalysis).
		Return(false).Once()
	suite.mockDiary.On("SaveEntry", mock.Anything, mock.MatchedBy(func(e domain.DiaryEntry) bool {
		return e.Content == "bugun yaxshi kun bo'ldi" && e.AIReflection == ""
	})).Return(nil).Once()

	entry, err := suite.service.AddEntry(context.Background(), standardID, "bugun yaxshi kun bo'ldi")

	suite.Require().NoError(err)
	suite.Empty(entry.AIReflection)
	suite.mockAI.AssertNotCalled(suite.T(), "AnalyzeDiary")
}

func (suite *DiaryServiceTestSuite) TestAddEntry_PremiumGetsReflection() {
	suite.mockAccess.On("HasFeature", mock.Anything, premiumID, domain.FeatureDiaryAIAnalysis).
		Return(true).Once()
	suite.mockAccess.On("CheckQuota", mock.Anything, premiumID).
		Return(true, int64(0), int64(2400000)).Once()
	suite.mockAI.On("AnalyzeDiary", mock.Anything, "qiyin kun").
		Return(portssvc.Result{Text: "Kayfiyat past, dam oling.", Cost: 120, Backend: "groq-1"}, true).Once()
	suite.mockUsage.On("SaveUsage", mock.Anything, mock.MatchedBy(func(r domain.UsageRecord) bool {
		return r.AccountID == premiumID && r.Tokens == 120
	})).Return(nil).Once()
	suite.mockDiary.On("SaveEntry", mock.Anything, mock.MatchedBy(func(e domain.DiaryEntry) bool {
		return e.AIReflection == "Kayfiyat past, dam oling."
	})).Return(nil).Once()

	entry, err := suite.service.AddEntry(context.Background(), premiumID, "qiyin kun")

	suite.Require().NoError(err)
	suite.Equal("Kayfiyat past, dam oling.", entry.AIReflection)
	suite.mockDiary.AssertExpectations(suite.T())
}

func (suite *DiaryServiceTestSuite) TestAddEntry_SavedEvenWhenReflectionFails() {
	suite.mockAccess.On("HasFeature", mock.Anything, premiumID, domain.FeatureDiaryAIAnalysis).
		Return(true).Once()
	suite.mockAccess.On("CheckQuota", mock.Anything, premiumID).
		Return(true, int64(0), int64(2400000)).Once()
	suite.mockAI.On("AnalyzeDiary", mock.Anything, "yozuv").
		Return(portssvc.Result{}, false).Once()
	suite.mockDiary.On("SaveEntry", mock.Anything, mock.MatchedBy(func(e domain.DiaryEntry) bool {
		return e.Content == "yozuv" && e.AIReflection == ""
	})).Return(nil).Once()

	entry, err := suite.service.AddEntry(context.Background(), premiumID, "yozuv")

	suite.Require().NoError(err)
	suite.Empty(entry.AIReflection)
	suite.mockUsage.AssertNotCalled(suite.T(), "SaveUsage")
}

func (suite *DiaryServiceTestSuite) TestAddEntry_QuotaBlocksReflectionNotEntry() {
	suite.mockAccess.On("HasFeature", mock.Anything, premiumID, domain.FeatureDiaryAIAnalysis).
		Return(true).Once()
	suite.mockAccess.On("CheckQuota", mock.Anything, premiumID).
		Return(false, int64(2400000), int64(2400000)).Once()
	suite.mockDiary.On("SaveEntry", mock.Anything, mock.Anything).Return(nil).Once()

	entry, err := suite.service.AddEntry(context.Background(), premiumID, "yozuv")

	suite.Require().NoError(err)
	suite.Empty(entry.AIReflection)
	suite.mockAI.AssertNotCalled(suite.T(), "AnalyzeDiary")
}

func TestDiaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DiaryServiceTestSuite))
}
