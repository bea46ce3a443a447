package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portsrepo "github.com/finflowhq/finflow_bot/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) GetAdminStatistics(ctx context.Context) (domain.AdminStatistics, error) {
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekStart := dayStart.AddDate(0, 0, -7)

	stats := domain.AdminStatistics{
		UsageByProvider: make(map[string]int64),
	}

	accountsQuery := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE created_at >= $1),
			COUNT(*) FILTER (WHERE updated_at >= $2)
		FROM accounts;
	`
	err := r.Pool.QueryRow(ctx, accountsQuery, dayStart, weekStart).Scan(
		&stats.TotalAccounts,
		&stats.NewAccountsToday,
		&stats.ActiveAccountsWk,
	)
	if err != nil {
		return domain.AdminStatistics{}, fmt.Errorf("failed to aggregate account counts: %w", err)
	}

	entriesQuery := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE created_at >= $1),
			COUNT(*) FILTER (WHERE created_at >= $2),
			COALESCE(SUM(amount) FILTER (WHERE direction = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE direction = 'expense'), 0)
		FROM ledger_entries;
	`
	err = r.Pool.QueryRow(ctx, entriesQuery, dayStart, weekStart).Scan(
		&stats.TotalEntries,
		&stats.EntriesToday,
		&stats.EntriesWeek,
		&stats.TotalIncome,
		&stats.TotalExpense,
	)
	if err != nil {
		return domain.AdminStatistics{}, fmt.Errorf("failed to aggregate ledger counts: %w", err)
	}

	goalsQuery := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'completed')
		FROM goals;
	`
	err = r.Pool.QueryRow(ctx, goalsQuery).Scan(&stats.TotalGoals, &stats.CompletedGoals)
	if err != nil {
		return domain.AdminStatistics{}, fmt.Errorf("failed to aggregate goal counts: %w", err)
	}

	usageQuery := `
		SELECT provider, COALESCE(SUM(tokens), 0)
		FROM usage_records
		GROUP BY provider;
	`
	rows, err := r.Pool.Query(ctx, usageQuery)
	if err != nil {
		return domain.AdminStatistics{}, fmt.Errorf("failed to aggregate provider usage: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var provider string
		var tokens int64
		if err := rows.Scan(&provider, &tokens); err != nil {
			return domain.AdminStatistics{}, fmt.Errorf("failed to scan provider usage row: %w", err)
		}
		stats.UsageByProvider[provider] = tokens
	}
	if err := rows.Err(); err != nil {
		return domain.AdminStatistics{}, fmt.Errorf("failed to iterate provider usage rows: %w", err)
	}
	return stats, nil
}
