package repositories

// RepositoryProvider bundles every repository implementation so service
// construction takes a single dependency.
type RepositoryProvider struct {
	AccountRepo   AccountRepository
	LedgerRepo    LedgerRepository
	GoalRepo      GoalRepository
	DiaryRepo     DiaryRepository
	UsageRepo     UsageRepository
	ReportingRepo ReportingRepository
}
