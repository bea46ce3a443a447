package pgsql

import (
	"context"
	"fmt"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portsrepo "github.com/finflowhq/finflow_bot/internal/core/ports/repositories"
	"github.com/finflowhq/finflow_bot/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDiaryRepository struct {
	BaseRepository
}

func newPgxDiaryRepository(db *pgxpool.Pool) portsrepo.DiaryRepository {
	return &PgxDiaryRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.DiaryRepository = (*PgxDiaryRepository)(nil)

func toDomainDiaryEntry(m models.DiaryEntry) domain.DiaryEntry {
	return domain.DiaryEntry{
		ID:           m.ID,
		AccountID:    m.AccountID,
		Content:      m.Content,
		AIReflection: ptrToStr(m.AIReflection),
		EntryDate:    m.EntryDate,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *PgxDiaryRepository) SaveEntry(ctx context.Context, entry domain.DiaryEntry) error {
	query := `
		INSERT INTO diary_entries (id, account_id, content, ai_reflection, entry_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.ID,
		entry.AccountID,
		entry.Content,
		strToPtr(entry.AIReflection),
		entry.EntryDate,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save diary entry: %w", err)
	}
	return nil
}

func (r *PgxDiaryRepository) FindEntries(ctx context.Context, accountID int64, limit int) ([]domain.DiaryEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `
		SELECT id, account_id, content, ai_reflection, entry_date, created_at
		FROM diary_entries
		WHERE account_id = $1
		ORDER BY entry_date DESC, created_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list diary entries for account %d: %w", accountID, err)
	}
	defer rows.Close()

	entries := make([]domain.DiaryEntry, 0, limit)
	for rows.Next() {
		var m models.DiaryEntry
		if err := rows.Scan(
			&m.ID,
			&m.AccountID,
			&m.Content,
			&m.AIReflection,
			&m.EntryDate,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan diary entry row: %w", err)
		}
		entries = append(entries, toDomainDiaryEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate diary entry rows: %w", err)
	}
	return entries, nil
}
