package services

import (
	"context"

	"github.com/finflowhq/finflow_bot/internal/ai"
	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/finflowhq/finflow_bot/internal/dto"
)

type orchestratorService struct {
	BaseService
	// backends in priority order; the first healthy one that supports the
	// requested capability wins.
	backends []ai.Backend
}

func NewAIOrchestratorService(backends []ai.Backend) portssvc.AIOrchestratorSvc {
	return &orchestratorService{backends: backends}
}

var _ portssvc.AIOrchestratorSvc = (*orchestratorService)(nil)

func (s *orchestratorService) backendsFor(capability domain.Capability) []ai.Backend {
	var out []ai.Backend
	for _, b := range s.backends {
		if b.Supports(capability) {
			out = append(out, b)
		}
	}
	return out
}

func (s *orchestratorService) Invoke(ctx context.Context, capability domain.Capability, payload portssvc.Payload) (portssvc.Result, bool) {
	for _, backend := range s.backendsFor(capability) {
		var (
			text string
			cost int64
			err  error
		)
		if capability == domain.CapabilityTranscription {
			text, cost, err = backend.Transcribe(ctx, payload.Filename, payload.Audio)
		} else {
			text, cost, err = backend.Complete(ctx, payload.Prompt)
		}
		if err != nil {
			s.LogWarn(ctx, "AI backend failed, trying next",
				"backend", backend.Name(),
				"capability", string(capability),
				"error", err.Error(),
			)
			continue
		}
		if text == "" {
			s.LogWarn(ctx, "AI backend returned empty response, trying next",
				"backend", backend.Name(),
				"capability", string(capability),
			)
			continue
		}
		return portssvc.Result{Text: text, Cost: cost, Backend: backend.Name()}, true
	}
	s.LogWarn(ctx, "All AI backends exhausted", "capability", string(capability))
	return portssvc.Result{}, false
}

func (s *orchestratorService) Transcribe(ctx context.Context, filename string, audio []byte) (portssvc.Result, bool) {
	return s.Invoke(ctx, domain.CapabilityTranscription, portssvc.Payload{Filename: filename, Audio: audio})
}

// AnalyzeTransaction runs its own backend loop rather than delegating to
// Invoke: a backend that answers with unparseable text has failed the
// extraction contract and the next backend deserves a try.
func (s *orchestratorService) AnalyzeTransaction(ctx context.Context, text string) ([]domain.ExtractedTransaction, portssvc.Result, bool) {
	prompt := ai.TransactionPrompt(text)
	for _, backend := range s.backendsFor(domain.CapabilityExtraction) {
		answer, cost, err := backend.Complete(ctx, prompt)
		if err != nil {
			s.LogWarn(ctx, "AI backend failed, trying next",
				"backend", backend.Name(),
				"capability", string(domain.CapabilityExtraction),
				"error", err.Error(),
			)
			continue
		}

		if answer == "" {
			s.LogWarn(ctx, "AI backend returned empty response, trying next", "backend", backend.Name())
			continue
		}

		entries, ok := ai.ParseTransactions(answer)
		if !ok {
			s.LogWarn(ctx, "Extraction response unparseable, trying next backend", "backend", backend.Name())
			continue
		}
		return entries, portssvc.Result{Text: answer, Cost: cost, Backend: backend.Name()}, true
	}
	s.LogWarn(ctx, "All AI backends exhausted", "capability", string(domain.CapabilityExtraction))
	return nil, portssvc.Result{}, false
}

func (s *orchestratorService) AnalyzeDiary(ctx context.Context, text string) (portssvc.Result, bool) {
	return s.Invoke(ctx, domain.CapabilityAnalysis, portssvc.Payload{Prompt: ai.DiaryPrompt(text)})
}

func (s *orchestratorService) GenerateReport(ctx context.Context, kind dto.ReportKind, data portssvc.ReportData) (portssvc.Result, bool) {
	var prompt string
	if kind == dto.ReportMonthly {
		prompt = ai.MonthlyReportPrompt(data.TotalIncome, data.TotalExpense, data.Balance, data.GoalsProgress)
	} else {
		prompt = ai.WeeklyReportPrompt(data.TotalIncome, data.TotalExpense, data.Balance, data.TopCategory)
	}
	return s.Invoke(ctx, domain.CapabilityAnalysis, portssvc.Payload{Prompt: prompt})
}
