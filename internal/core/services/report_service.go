package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/finflowhq/finflow_bot/internal/apperrors"
	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portsrepo "github.com/finflowhq/finflow_bot/internal/core/ports/repositories"
	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/finflowhq/finflow_bot/internal/dto"
	"github.com/finflowhq/finflow_bot/internal/utils"
	"github.com/google/uuid"
)

type reportService struct {
	BaseService
	ledgerRepo    portsrepo.LedgerRepository
	goalRepo      portsrepo.GoalRepository
	reportingRepo portsrepo.ReportingRepository
	usageRepo     portsrepo.UsageRepository
	accountRepo   portsrepo.AccountRepository
	access        portssvc.AccessPolicySvc
	ai            portssvc.AIOrchestratorSvc
}

func NewReportService(
	ledgerRepo portsrepo.LedgerRepository,
	goalRepo portsrepo.GoalRepository,
	reportingRepo portsrepo.ReportingRepository,
	usageRepo portsrepo.UsageRepository,
	accountRepo portsrepo.AccountRepository,
	access portssvc.AccessPolicySvc,
	aiSvc portssvc.AIOrchestratorSvc,
) portssvc.ReportSvc {
	return &reportService{
		ledgerRepo:    ledgerRepo,
		goalRepo:      goalRepo,
		reportingRepo: reportingRepo,
		usageRepo:     usageRepo,
		accountRepo:   accountRepo,
		access:        access,
		ai:            aiSvc,
	}
}

var _ portssvc.ReportSvc = (*reportService)(nil)

func (s *reportService) Generate(ctx context.Context, accountID int64, kind dto.ReportKind) (dto.Report, error) {
	now := time.Now().UTC()
	var from time.Time
	if kind == dto.ReportMonthly {
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	} else {
		from = now.AddDate(0, 0, -7)
	}

	stats, err := s.ledgerRepo.GetStatistics(ctx, accountID, from, now)
	if err != nil {
		return dto.Report{}, err
	}

	report := dto.Report{Kind: kind, Statistics: stats}

	// Narrative is best-effort: missing quota or exhausted providers leave
	// the report without one.
	if allowed, _, _ := s.access.CheckQuota(ctx, accountID); allowed {
		data := s.reportData(ctx, accountID, kind, stats)
		if res, ok := s.ai.GenerateReport(ctx, kind, data); ok {
			report.Narrative = res.Text
			report.TokensUsed = res.Cost
			s.trackUsage(ctx, accountID, res)
		}
	}

	report.Reply = s.reportReply(ctx, accountID, report)
	return report, nil
}

func (s *reportService) reportData(ctx context.Context, accountID int64, kind dto.ReportKind, stats domain.Statistics) portssvc.ReportData {
	currency := s.accountCurrency(ctx, accountID)
	data := portssvc.ReportData{
		TotalIncome:  utils.FormatCurrency(stats.TotalIncome, currency),
		TotalExpense: utils.FormatCurrency(stats.TotalExpense, currency),
		Balance:      utils.FormatCurrency(stats.Balance, currency),
		TopCategory:  "—",
	}
	if len(stats.ExpensesByCategory) > 0 {
		data.TopCategory = stats.ExpensesByCategory[0].Category
	}

	if kind == dto.ReportMonthly {
		goals, err := s.goalRepo.FindGoals(ctx, accountID, "")
		if err != nil {
			s.LogError(ctx, err, "Goal lookup for report failed", "account_id", accountID)
		}
		lines := make([]string, 0, len(goals))
		for _, g := range goals {
			lines = append(lines, fmt.Sprintf("%s: %.0f%%", g.Title, g.ProgressPercent()))
		}
		data.GoalsProgress = strings.Join(lines, ", ")
		if data.GoalsProgress == "" {
			data.GoalsProgress = "Maqsadlar yo'q"
		}
	}
	return data
}

func (s *reportService) reportReply(ctx context.Context, accountID int64, report dto.Report) string {
	currency := s.accountCurrency(ctx, accountID)

	var b strings.Builder
	if report.Kind == dto.ReportMonthly {
		b.WriteString("📆 Oylik hisobot\n")
	} else {
		b.WriteString("📅 Haftalik hisobot\n")
	}
	b.WriteString(fmt.Sprintf("%s — %s\n", utils.FormatDate(report.Statistics.PeriodStart), utils.FormatDate(report.Statistics.PeriodEnd)))
	b.WriteString(fmt.Sprintf("\n💰 Kirim: %s", utils.FormatCurrency(report.Statistics.TotalIncome, currency)))
	b.WriteString(fmt.Sprintf("\n💸 Chiqim: %s", utils.FormatCurrency(report.Statistics.TotalExpense, currency)))
	b.WriteString(fmt.Sprintf("\n💵 Balans: %s", utils.FormatCurrency(report.Statistics.Balance, currency)))

	if len(report.Statistics.ExpensesByCategory) > 0 {
		b.WriteString("\n\n📂 Xarajatlar:")
		for _, ct := range report.Statistics.ExpensesByCategory {
			b.WriteString(fmt.Sprintf("\n• %s: %s", ct.Category, utils.FormatCurrency(ct.Total, currency)))
		}
	}
	if report.Narrative != "" {
		b.WriteString("\n\n🤖 Tahlil:\n")
		b.WriteString(report.Narrative)
	}
	return b.String()
}

func (s *reportService) accountCurrency(ctx context.Context, accountID int64) string {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Currency lookup failed", "account_id", accountID)
		}
		return "UZS"
	}
	return account.Currency
}

func (s *reportService) trackUsage(ctx context.Context, accountID int64, res portssvc.Result) {
	now := time.Now().UTC()
	record := domain.UsageRecord{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Provider:  res.Backend,
		Tokens:    res.Cost,
		UsedOn:    now,
		CreatedAt: now,
	}
	if err := s.usageRepo.SaveUsage(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to record AI usage", "account_id", accountID, "provider", res.Backend)
	}
}

func (s *reportService) AdminStatistics(ctx context.Context) (domain.AdminStatistics, error) {
	return s.reportingRepo.GetAdminStatistics(ctx)
}
