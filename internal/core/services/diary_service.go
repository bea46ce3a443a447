package services

import (
	"context"
	"fmt"
	"time"

	"github.com/finflowhq/finflow_bot/internal/apperrors"
	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portsrepo "github.com/finflowhq/finflow_bot/internal/core/ports/repositories"
	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/google/uuid"
)

type diaryService struct {
	BaseService
	diaryRepo portsrepo.DiaryRepository
	usageRepo portsrepo.UsageRepository
	access    portssvc.AccessPolicySvc
	ai        portssvc.AIOrchestratorSvc
}

func NewDiaryService(
	diaryRepo portsrepo.DiaryRepository,
	usageRepo portsrepo.UsageRepository,
	access portssvc.AccessPolicySvc,
	aiSvc portssvc.AIOrchestratorSvc,
) portssvc.DiarySvc {
	return &diaryService{
		diaryRepo: diaryRepo,
		usageRepo: usageRepo,
		access:    access,
		ai:        aiSvc,
	}
}

var _ portssvc.DiarySvc = (*diaryService)(nil)

// AddEntry always persists the entry; the AI reflection is attached only
// when the tier grants it and quota headroom remains, and a failed
// reflection never fails the save.
func (s *diaryService) AddEntry(ctx context.Context, accountID int64, content string) (*domain.DiaryEntry, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: diary content cannot be empty", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	entry := domain.DiaryEntry{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Content:   content,
		EntryDate: now,
		CreatedAt: now,
	}

	if s.access.HasFeature(ctx, accountID, domain.FeatureDiaryAIAnalysis) {
		if allowed, _, _ := s.access.CheckQuota(ctx, accountID); allowed {
			if res, ok := s.ai.AnalyzeDiary(ctx, content); ok {
				entry.AIReflection = res.Text
				s.trackUsage(ctx, accountID, res)
			}
		}
	}

	if err := s.diaryRepo.SaveEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save diary entry: %w", err)
	}
	return &entry, nil
}

func (s *diaryService) RecentEntries(ctx context.Context, accountID int64, limit int) ([]domain.DiaryEntry, error) {
	return s.diaryRepo.FindEntries(ctx, accountID, limit)
}

func (s *diaryService) trackUsage(ctx context.Context, accountID int64, res portssvc.Result) {
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
