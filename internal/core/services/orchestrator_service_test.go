package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/finflowhq/finflow_bot/internal/ai"
	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/finflowhq/finflow_bot/internal/core/services"
	"github.com/finflowhq/finflow_bot/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OrchestratorServiceTestSuite struct {
	suite.Suite
	primary   *MockBackend
	secondary *MockBackend
	fallback  *MockBackend
	service   portssvc.AIOrchestratorSvc
}

func (suite *OrchestratorServiceTestSuite) SetupTest() {
	suite.primary = new(MockBackend)
	suite.secondary = new(MockBackend)
	suite.fallback = new(MockBackend)

	suite.primary.On("Name").Return("groq-1").Maybe()
	suite.secondary.On("Name").Return("groq-2").Maybe()
	suite.fallback.On("Name").Return("gemini").Maybe()

	suite.service = services.NewAIOrchestratorService([]ai.Backend{suite.primary, suite.secondary, suite.fallback})
}

func (suite *OrchestratorServiceTestSuite) supportAll() {
	for _, b := range []*MockBackend{suite.primary, suite.secondary, suite.fallback} {
		b.On("Supports", mock.Anything).Return(true).Maybe()
	}
}

func (suite *OrchestratorServiceTestSuite) TestInvoke_FirstBackendWins() {
	suite.supportAll()
	suite.primary.On("Complete", mock.Anything, "prompt").Return("answer", int64(120), nil).Once()

	res, ok := suite.service.Invoke(context.Background(), domain.CapabilityAnalysis, portssvc.Payload{Prompt: "prompt"})

	suite.True(ok)
	suite.Equal("answer", res.Text)
	suite.Equal(int64(120), res.Cost)
	suite.Equal("groq-1", res.Backend)
	suite.secondary.AssertNotCalled(suite.T(), "Complete", mock.Anything, mock.Anything)
}

func (suite *OrchestratorServiceTestSuite) TestInvoke_FallsThroughInOrder() {
	suite.supportAll()
	providerErr := errors.New("rate limited")
	suite.primary.On("Complete", mock.Anything, "prompt").Return("", int64(0), providerErr).Once()
	suite.secondary.On("Complete", mock.Anything, "prompt").Return("", int64(0), providerErr).Once()
	suite.fallback.On("Complete", mock.Anything, "prompt").Return("rescued", int64(500), nil).Once()

	res, ok := suite.service.Invoke(context.Background(), domain.CapabilityAnalysis, portssvc.Payload{Prompt: "prompt"})

	suite.True(ok)
	suite.Equal("gemini", res.Backend)
	suite.Equal("rescued", res.Text)
}

func (suite *OrchestratorServiceTestSuite) TestInvoke_EmptyResponseFallsThrough() {
	// A provider answering with an empty body has failed just like a
	// transport error; the next backend gets the call.
	suite.supportAll()
	suite.primary.On("Complete", mock.Anything, "prompt").Return("", int64(80), nil).Once()
	suite.secondary.On("Complete", mock.Anything, "prompt").Return("real analysis", int64(200), nil).Once()

	res, ok := suite.service.Invoke(context.Background(), domain.CapabilityAnalysis, portssvc.Payload{Prompt: "prompt"})

	suite.True(ok)
	suite.Equal("groq-2", res.Backend)
	suite.Equal("real analysis", res.Text)
	suite.secondary.AssertCalled(suite.T(), "Complete", mock.Anything, "prompt")
}

func (suite *OrchestratorServiceTestSuite) TestInvoke_AllEmptyResponsesReportsNotOK() {
	suite.supportAll()
	for _, b := range []*MockBackend{suite.primary, suite.secondary, suite.fallback} {
		b.On("Complete", mock.Anything, "prompt").Return("", int64(0), nil).Once()
	}

	_, ok := suite.service.Invoke(context.Background(), domain.CapabilityAnalysis, portssvc.Payload{Prompt: "prompt"})

	suite.False(ok)
}

func (suite *OrchestratorServiceTestSuite) TestInvoke_ExhaustionReportsNotOK() {
	suite.supportAll()
	providerErr := errors.New("boom")
	suite.primary.On("Complete", mock.Anything, mock.Anything).Return("", int64(0), providerErr).Once()
	suite.secondary.On("Complete", mock.Anything, mock.Anything).Return("", int64(0), providerErr).Once()
	suite.fallback.On("Complete", mock.Anything, mock.Anything).Return("", int64(0), providerErr).Once()

	_, ok := suite.service.Invoke(context.Background(), domain.CapabilityAnalysis, portssvc.Payload{Prompt: "x"})

	suite.False(ok)
}

func (suite *OrchestratorServiceTestSuite) TestInvoke_SkipsUnsupportingBackends() {
	// Only the first two speak transcription; the text-only fallback must
	// never be asked for audio.
	suite.primary.On("Supports", domain.CapabilityTranscription).Return(true)
	suite.secondary.On("Supports", domain.CapabilityTranscription).Return(true)
	suite.fallback.On("Supports", domain.CapabilityTranscription).Return(false)

	suite.primary.On("Transcribe", mock.Anything, "note.ogg", mock.Anything).Return("", int64(0), errors.New("down")).Once()
	suite.secondary.On("Transcribe", mock.Anything, "note.ogg", mock.Anything).Return("besh ming so'm tushlik", int64(1000), nil).Once()

	res, ok := suite.service.Transcribe(context.Background(), "note.ogg", []byte{1, 2, 3})

	suite.True(ok)
	suite.Equal("groq-2", res.Backend)
	suite.Equal("besh ming so'm tushlik", res.Text)
	suite.fallback.AssertNotCalled(suite.T(), "Transcribe", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrchestratorServiceTestSuite) TestAnalyzeTransaction_ParseFailureTriesNextBackend() {
	suite.supportAll()
	suite.primary.On("Complete", mock.Anything, mock.Anything).Return("sorry, I can't do JSON today", int64(80), nil).Once()
	suite.secondary.On("Complete", mock.Anything, mock.Anything).
		Return(`{"type": "expense", "amount": 50000, "category": "Oziq-ovqat", "description": "tushlik"}`, int64(90), nil).Once()

	entries, res, ok := suite.service.AnalyzeTransaction(context.Background(), "50 ming tushlikka ketdi")

	suite.True(ok)
	suite.Equal("groq-2", res.Backend)
	suite.Require().Len(entries, 1)
	suite.Equal(domain.DirectionExpense, entries[0].Direction)
	suite.Equal("Oziq-ovqat", entries[0].Category)
}

func (suite *OrchestratorServiceTestSuite) TestGenerateReport_PicksMonthlyPrompt() {
	suite.supportAll()
	suite.primary.On("Complete", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return len(prompt) > 0
	})).Return("tahlil", int64(200), nil).Once()

	res, ok := suite.service.GenerateReport(context.Background(), dto.ReportMonthly, portssvc.ReportData{
		TotalIncome:   "1,000,000 so'm",
		TotalExpense:  "80,000 so'm",
		Balance:       "920,000 so'm",
		GoalsProgress: "Mashina: 40%",
	})

	suite.True(ok)
	suite.Equal("tahlil", res.Text)
}

func TestOrchestratorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorServiceTestSuite))
}
