package services

import (
	"github.com/finflowhq/finflow_bot/internal/ai"
	portsrepo "github.com/finflowhq/finflow_bot/internal/core/ports/repositories"
	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/finflowhq/finflow_bot/internal/platform/config"
)

// NewServiceContainer wires every service with its dependencies. Backends
// arrive in priority order and feed the orchestrator unchanged.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, backends []ai.Backend) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Access = NewAccessPolicyService(cfg, repos.AccountRepo, repos.UsageRepo)
	container.AI = NewAIOrchestratorService(backends)

	container.Account = NewAccountService(repos.AccountRepo)
	container.Finance = NewFinanceService(repos.LedgerRepo, repos.UsageRepo, repos.AccountRepo, container.Access, container.AI)
	container.Goal = NewGoalService(repos.GoalRepo)
	container.Diary = NewDiaryService(repos.DiaryRepo, repos.UsageRepo, container.Access, container.AI)
	container.Report = NewReportService(repos.LedgerRepo, repos.GoalRepo, repos.ReportingRepo, repos.UsageRepo, repos.AccountRepo, container.Access, container.AI)
	container.Export = NewExportService(repos.LedgerRepo, repos.AccountRepo)

	return container
}
