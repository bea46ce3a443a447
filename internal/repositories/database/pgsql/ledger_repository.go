package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portsrepo "github.com/finflowhq/finflow_bot/internal/core/ports/repositories"
	"github.com/finflowhq/finflow_bot/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(db *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

func toModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		ID:          d.ID,
		AccountID:   d.AccountID,
		Direction:   string(d.Direction),
		Amount:      d.Amount,
		Category:    d.Category,
		Description: strToPtr(d.Description),
		OccurredOn:  d.OccurredOn,
		CreatedAt:   d.CreatedAt,
	}
}

func toDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:          m.ID,
		AccountID:   m.AccountID,
		Direction:   domain.EntryDirection(m.Direction),
		Amount:      m.Amount,
		Category:    m.Category,
		Description: ptrToStr(m.Description),
		OccurredOn:  m.OccurredOn,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *PgxLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := toModelLedgerEntry(entry)
	query := `
		INSERT INTO ledger_entries (id, account_id, direction, amount, category, description, occurred_on, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID,
		m.AccountID,
		m.Direction,
		m.Amount,
		m.Category,
		m.Description,
		m.OccurredOn,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save ledger entry: %w", err)
	}
	return nil
}

func (r *PgxLedgerRepository) FindEntries(ctx context.Context, accountID int64, filter domain.LedgerFilter) ([]domain.LedgerEntry, error) {
	conditions := []string{"account_id = $1"}
	args := []any{accountID}
	argIdx := 2

	if filter.Direction != nil {
		conditions = append(conditions, fmt.Sprintf("direction = $%d", argIdx))
		args = append(args, string(*filter.Direction))
		argIdx++
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("occurred_on >= $%d", argIdx))
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("occurred_on <= $%d", argIdx))
		args = append(args, *filter.To)
		argIdx++
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT id, account_id, direction, amount, category, description, occurred_on, created_at
		FROM ledger_entries
		WHERE %s
		ORDER BY occurred_on DESC, created_at DESC
		LIMIT $%d;
	`, strings.Join(conditions, " AND "), argIdx)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries for account %d: %w", accountID, err)
	}
	defer rows.Close()

	entries := make([]domain.LedgerEntry, 0, limit)
	for rows.Next() {
		var m models.LedgerEntry
		if err := rows.Scan(
			&m.ID,
			&m.AccountID,
			&m.Direction,
			&m.Amount,
			&m.Category,
			&m.Description,
			&m.OccurredOn,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, toDomainLedgerEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger entry rows: %w", err)
	}
	return entries, nil
}

func (r *PgxLedgerRepository) GetStatistics(ctx context.Context, accountID int64, from, to time.Time) (domain.Statistics, error) {
	stats := domain.Statistics{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Balance:      decimal.Zero,
		PeriodStart:  from,
		PeriodEnd:    to,
	}

	totalsQuery := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE direction = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE direction = 'expense'), 0)
		FROM ledger_entries
		WHERE account_id = $1 AND occurred_on >= $2 AND occurred_on <= $3;
	`
	err := r.Pool.QueryRow(ctx, totalsQuery, accountID, from, to).Scan(&stats.TotalIncome, &stats.TotalExpense)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("failed to aggregate ledger totals for account %d: %w", accountID, err)
	}
	stats.Balance = stats.TotalIncome.Sub(stats.TotalExpense)

	breakdownQuery := `
		SELECT category, SUM(amount) AS total
		FROM ledger_entries
		WHERE account_id = $1 AND direction = 'expense' AND occurred_on >= $2 AND occurred_on <= $3
		GROUP BY category
		ORDER BY total DESC;
	`
	rows, err := r.Pool.Query(ctx, breakdownQuery, accountID, from, to)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("failed to aggregate expense breakdown for account %d: %w", accountID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var ct domain.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return domain.Statistics{}, fmt.Errorf("failed to scan category total row: %w", err)
		}
		stats.ExpensesByCategory = append(stats.ExpensesByCategory, ct)
	}
	if err := rows.Err(); err != nil {
		return domain.Statistics{}, fmt.Errorf("failed to iterate category total rows: %w", err)
	}
	return stats, nil
}
