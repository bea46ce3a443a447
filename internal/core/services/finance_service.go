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

const (
	replyAnalyzeFailed    = "❌ Tahlil qilib bo'lmadi. Qaytadan urinib ko'ring."
	replyTranscribeFailed = "❌ Ovozli xabarni tushunib bo'lmadi. Qaytadan urinib ko'ring."
)

type financeService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepository
	usageRepo   portsrepo.UsageRepository
	accountRepo portsrepo.AccountRepository
	access      portssvc.AccessPolicySvc
	ai          portssvc.AIOrchestratorSvc
}

func NewFinanceService(
	ledgerRepo portsrepo.LedgerRepository,
	usageRepo portsrepo.UsageRepository,
	accountRepo portsrepo.AccountRepository,
	access portssvc.AccessPolicySvc,
	aiSvc portssvc.AIOrchestratorSvc,
) portssvc.FinanceSvc {
	return &financeService{
		ledgerRepo:  ledgerRepo,
		usageRepo:   usageRepo,
		accountRepo: accountRepo,
		access:      access,
		ai:          aiSvc,
	}
}

var _ portssvc.FinanceSvc = (*financeService)(nil)

func (s *financeService) IngestText(ctx context.Context, accountID int64, text string) (dto.IngestResult, error) {
	if allowed, used, limit := s.access.CheckQuota(ctx, accountID); !allowed {
		s.LogWarn(ctx, "Quota exceeded", "account_id", accountID, "used", used, "limit", limit)
		return dto.IngestResult{}, apperrors.ErrQuotaExceeded
	}

	extracted, res, ok := s.ai.AnalyzeTransaction(ctx, text)
	if !ok {
		return dto.IngestResult{Reply: replyAnalyzeFailed}, nil
	}

	entries, err := s.persistEntries(ctx, accountID, extracted)
	if err != nil {
		return dto.IngestResult{}, err
	}
	s.trackUsage(ctx, accountID, res)

	return dto.IngestResult{
		Entries:    entries,
		TokensUsed: res.Cost,
		Reply:      s.entriesReply(ctx, accountID, entries),
		Analyzed:   true,
	}, nil
}

func (s *financeService) IngestVoice(ctx context.Context, accountID int64, filename string, audio []byte) (dto.IngestResult, error) {
	if allowed, used, limit := s.access.CheckQuota(ctx, accountID); !allowed {
		s.LogWarn(ctx, "Quota exceeded", "account_id", accountID, "used", used, "limit", limit)
		return dto.IngestResult{}, apperrors.ErrQuotaExceeded
	}

	transcript, ok := s.ai.Transcribe(ctx, filename, audio)
	if !ok {
		return dto.IngestResult{Reply: replyTranscribeFailed}, nil
	}
	s.trackUsage(ctx, accountID, transcript)

	extracted, res, ok := s.ai.AnalyzeTransaction(ctx, transcript.Text)
	if !ok {
		return dto.IngestResult{
			Transcript: transcript.Text,
			TokensUsed: transcript.Cost,
			Reply:      replyAnalyzeFailed,
		}, nil
	}

	entries, err := s.persistEntries(ctx, accountID, extracted)
	if err != nil {
		return dto.IngestResult{}, err
	}
	s.trackUsage(ctx, accountID, res)

	return dto.IngestResult{
		Entries:    entries,
		Transcript: transcript.Text,
		TokensUsed: transcript.Cost + res.Cost,
		Reply:      s.entriesReply(ctx, accountID, entries),
		Analyzed:   true,
	}, nil
}

func (s *financeService) persistEntries(ctx context.Context, accountID int64, extracted []domain.ExtractedTransaction) ([]domain.LedgerEntry, error) {
	now := time.Now().UTC()
	entries := make([]domain.LedgerEntry, 0, len(extracted))
	for _, tx := range extracted {
		entry := domain.LedgerEntry{
			ID:          uuid.NewString(),
			AccountID:   accountID,
			Direction:   tx.Direction,
			Amount:      tx.Amount,
			Category:    tx.Category,
			Description: tx.Description,
			OccurredOn:  now,
			CreatedAt:   now,
		}
		if err := s.ledgerRepo.SaveEntry(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to persist ledger entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// trackUsage records one billed AI call. Usage accounting is best-effort and
// never fails the ingestion that produced it.
func (s *financeService) trackUsage(ctx context.Context, accountID int64, res portssvc.Result) {
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

func (s *financeService) accountCurrency(ctx context.Context, accountID int64) string {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Currency lookup failed", "account_id", accountID)
		}
		return "UZS"
	}
	return account.Currency
}

func (s *financeService) entriesReply(ctx context.Context, accountID int64, entries []domain.LedgerEntry) string {
	currency := s.accountCurrency(ctx, accountID)

	var b strings.Builder
	b.WriteString("✅ Qayd etildi:\n")
	for _, entry := range entries {
		emoji := "💸"
		if entry.Direction == domain.DirectionIncome {
			emoji = "💰"
		}
		b.WriteString(fmt.Sprintf("\n%s %s — %s", emoji, utils.FormatCurrency(entry.Amount, currency), entry.Category))
		if entry.Description != "" {
			b.WriteString(fmt.Sprintf(" (%s)", entry.Description))
		}
	}
	return b.String()
}

func (s *financeService) RecentEntries(ctx context.Context, accountID int64, filter domain.LedgerFilter) ([]domain.LedgerEntry, error) {
	return s.ledgerRepo.FindEntries(ctx, accountID, filter)
}

func (s *financeService) Statistics(ctx context.Context, accountID int64, from, to time.Time) (dto.StatisticsResponse, error) {
	if from.IsZero() || to.IsZero() {
		now := time.Now().UTC()
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		to = now
	}

	stats, err := s.ledgerRepo.GetStatistics(ctx, accountID, from, to)
	if err != nil {
		return dto.StatisticsResponse{}, err
	}

	recent, err := s.ledgerRepo.FindEntries(ctx, accountID, domain.LedgerFilter{Limit: 5})
	if err != nil {
		return dto.StatisticsResponse{}, err
	}

	return dto.StatisticsResponse{
		Statistics: stats,
		Recent:     recent,
		Reply:      s.statisticsReply(ctx, accountID, stats),
	}, nil
}

func (s *financeService) statisticsReply(ctx context.Context, accountID int64, stats domain.Statistics) string {
	currency := s.accountCurrency(ctx, accountID)

	var b strings.Builder
	b.WriteString("📊 Statistika\n")
	b.WriteString(fmt.Sprintf("\n💰 Kirim: %s", utils.FormatCurrency(stats.TotalIncome, currency)))
	b.WriteString(fmt.Sprintf("\n💸 Chiqim: %s", utils.FormatCurrency(stats.TotalExpense, currency)))
	b.WriteString(fmt.Sprintf("\n💵 Balans: %s", utils.FormatCurrency(stats.Balance, currency)))

	if len(stats.ExpensesByCategory) > 0 {
		b.WriteString("\n\n📂 Xarajatlar:")
		for _, ct := range stats.ExpensesByCategory {
			b.WriteString(fmt.Sprintf("\n• %s: %s", ct.Category, utils.FormatCurrency(ct.Total, currency)))
		}
	}
	return b.String()
}
