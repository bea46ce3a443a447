package pgsql

import (
	portsrepo "github.com/finflowhq/finflow_bot/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(dbPool),
		LedgerRepo:    newPgxLedgerRepository(dbPool),
		GoalRepo:      newPgxGoalRepository(dbPool),
		DiaryRepo:     newPgxDiaryRepository(dbPool),
		UsageRepo:     newPgxUsageRepository(dbPool),
		ReportingRepo: newPgxReportingRepository(dbPool),
	}
}
