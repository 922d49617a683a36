package services

import (
	"context"

	"github.com/aymanouf/committee-finance/internal/core/domain"
)

// ReportingSvcFacade derives read-only summaries from ledger and event state.
// All methods are pure with respect to application state.
type ReportingSvcFacade interface {
	MonthlyReport(ctx context.Context, month int, year int) (*domain.MonthlyReport, error)
	EventReport(ctx context.Context, eventID string) (*domain.EventReport, error)
	AllEventsReport(ctx context.Context) (*domain.AllEventsReport, error)
}
