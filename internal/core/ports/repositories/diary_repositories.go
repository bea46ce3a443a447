package repositories

import (
	"context"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
)

// DiaryRepository persists immutable journal entries.
type DiaryRepository interface {
	SaveEntry(ctx context.Context, entry domain.DiaryEntry) error
	FindEntries(ctx context.Context, accountID int64, limit int) ([]domain.DiaryEntry, error)
}
