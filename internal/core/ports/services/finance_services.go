package services

import (
	"context"
	"time"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
	"github.com/finflowhq/finflow_bot/internal/dto"
)

// FinanceSvc ingests transaction reports and serves ledger reads.
type FinanceSvc interface {
	// IngestText runs the quota gate, extracts transactions from the text
	// via the orchestrator, persists each one and records usage. When the
	// orchestrator is exhausted the result carries Analyzed=false and a
	// "could not analyze" reply; no error is returned for that case.
	IngestText(ctx context.Context, accountID int64, text string) (dto.IngestResult, error)

	// IngestVoice transcribes the audio first, then proceeds as IngestText.
	// Transcription and extraction costs are tracked together.
	IngestVoice(ctx context.Context, accountID int64, filename string, audio []byte) (dto.IngestResult, error)

	RecentEntries(ctx context.Context, accountID int64, filter domain.LedgerFilter) ([]domain.LedgerEntry, error)

	// Statistics aggregates the period, defaulting to the current calendar
	// month when from/to are zero.
	Statistics(ctx context.Context, accountID int64, from, to time.Time) (dto.StatisticsResponse, error)
}
