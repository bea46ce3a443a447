package services

import (
	"context"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
	"github.com/finflowhq/finflow_bot/internal/dto"
)

// ReportSvc produces periodic summaries. The AI narrative is best-effort:
// provider exhaustion or missing quota leaves the report without one.
type ReportSvc interface {
	// Generate builds the weekly (last 7 days) or monthly (current
	// calendar month) report for the account.
	Generate(ctx context.Context, accountID int64, kind dto.ReportKind) (dto.Report, error)

	AdminStatistics(ctx context.Context) (domain.AdminStatistics, error)
}
