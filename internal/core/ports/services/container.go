package services

// ServiceContainer bundles the service facades for injection into the HTTP
// layer.
type ServiceContainer struct {
	Auth        AuthSvcFacade
	Ledger      LedgerSvcFacade
	Event       EventSvcFacade
	Fundraising FundraisingSvcFacade
	Reporting   ReportingSvcFacade
}
