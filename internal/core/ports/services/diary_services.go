package services

import (
	"context"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
)

// DiarySvc records journal entries. The AI reflection is attached only when
// the account's tier grants it and quota headroom remains; the entry itself
// is always saved.
type DiarySvc interface {
	AddEntry(ctx context.Context, accountID int64, content string) (*domain.DiaryEntry, error)
	RecentEntries(ctx context.Context, accountID int64, limit int) ([]domain.DiaryEntry, error)
}
