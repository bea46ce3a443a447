package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portsrepo "github.com/finflowhq/finflow_bot/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUsageRepository struct {
	BaseRepository
}

func newPgxUsageRepository(db *pgxpool.Pool) portsrepo.UsageRepository {
	return &PgxUsageRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.UsageRepository = (*PgxUsageRepository)(nil)

func (r *PgxUsageRepository) SaveUsage(ctx context.Context, record domain.UsageRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	insertQuery := `
		INSERT INTO usage_records (id, account_id, provider, tokens, used_on, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, insertQuery,
		record.ID,
		record.AccountID,
		record.Provider,
		record.Tokens,
		record.UsedOn,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save usage record: %w", err)
	}

	bumpQuery := `
		UPDATE accounts
		SET tokens_used = tokens_used + $1, updated_at = $2
		WHERE id = $3;
	`
	_, err = tx.Exec(ctx, bumpQuery, record.Tokens, time.Now().UTC(), record.AccountID)
	if err != nil {
		return fmt.Errorf("failed to bump account usage counter: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxUsageRepository) MonthlyTokens(ctx context.Context, accountID int64, monthStart time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(tokens), 0)
		FROM usage_records
		WHERE account_id = $1 AND used_on >= $2;
	`
	var total int64
	err := r.Pool.QueryRow(ctx, query, accountID, monthStart).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum monthly tokens for account %d: %w", accountID, err)
	}
	return total, nil
}
