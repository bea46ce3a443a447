package services

// ServiceContainer holds instances of all the application services. It is
// the main entry point for accessing service functionality and is used
// throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Account AccountSvc
	Access  AccessPolicySvc
	AI      AIOrchestratorSvc
	Finance FinanceSvc
	Goal    GoalSvc
	Diary   DiarySvc
	Report  ReportSvc
	Export  ExportSvc
}
