package services

import (
	"context"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
	"github.com/finflowhq/finflow_bot/internal/dto"
)

// Payload is the input to one orchestrated AI call. Prompt is used by the
// extraction and analysis capabilities, Audio/Filename by transcription.
type Payload struct {
	Prompt   string
	Audio    []byte
	Filename string
}

// Result is a successful orchestration outcome: the produced text, its cost
// in token units, and which backend served it.
type Result struct {
	Text    string
	Cost    int64
	Backend string
}

// ReportData feeds the report narrative prompts.
type ReportData struct {
	TotalIncome   string
	TotalExpense  string
	Balance       string
	TopCategory   string
	GoalsProgress string
}

// AIOrchestratorSvc tries configured backends in fixed priority order and
// never lets a provider error escape: exhaustion is reported as ok=false.
type AIOrchestratorSvc interface {
	// Invoke attempts the capability's backends in order and returns the
	// first success. ok is false when every configured backend failed or
	// none are configured for the capability.
	Invoke(ctx context.Context, capability domain.Capability, payload Payload) (result Result, ok bool)

	// Transcribe converts voice audio to text.
	Transcribe(ctx context.Context, filename string, audio []byte) (Result, bool)

	// AnalyzeTransaction extracts structured transactions from free text.
	// A single-object provider response is normalised to a one-element
	// slice; a backend whose response cannot be parsed counts as failed
	// and the next one is tried.
	AnalyzeTransaction(ctx context.Context, text string) ([]domain.ExtractedTransaction, Result, bool)

	// AnalyzeDiary produces a short reflection on a journal entry.
	AnalyzeDiary(ctx context.Context, text string) (Result, bool)

	// GenerateReport produces a weekly or monthly narrative.
	GenerateReport(ctx context.Context, kind dto.ReportKind, data ReportData) (Result, bool)
}
