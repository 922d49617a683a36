package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aymanouf/committee-finance/internal/apperrors"
	"github.com/aymanouf/committee-finance/internal/core/domain"
	portsrepo "github.com/aymanouf/committee-finance/internal/core/ports/repositories"
	portssvc "github.com/aymanouf/committee-finance/internal/core/ports/services"
)

// reportingService derives read-only summaries from ledger and event state.
// It never mutates anything; calling the same report twice with no intervening
// writes returns identical output.
type reportingService struct {
	BaseService
	txnRepo   portsrepo.TransactionRepository
	eventRepo portsrepo.EventRepository
	ledgerSvc portssvc.LedgerSvcFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(txnRepo portsrepo.TransactionRepository, eventRepo portsrepo.EventRepository, ledgerSvc portssvc.LedgerSvcFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		txnRepo:   txnRepo,
		eventRepo: eventRepo,
		ledgerSvc: ledgerSvc,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// MonthlyReport summarizes the transactions whose creation time falls in the
// given calendar month and year. This is month/year equality, not a rolling
// 30-day window.
func (s *reportingService) MonthlyReport(ctx context.Context, month int, year int) (*domain.MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}

	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	matched := make([]domain.Transaction, 0)
	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	for _, txn := range txns {
		if int(txn.CreatedAt.Month()) != month || txn.CreatedAt.Year() != year {
			continue
		}
		matched = append(matched, txn)
		totalIncome = totalIncome.Add(txn.Income)
		totalExpenses = totalExpenses.Add(txn.Expense)
	}

	balance, err := s.ledgerSvc.CurrentBalance(ctx)
	if err != nil {
		return nil, err
	}
	reserve, err := s.ledgerSvc.EmergencyReserve(ctx)
	if err != nil {
		return nil, err
	}
	available, err := s.ledgerSvc.AvailableFunds(ctx)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Monthly report generated",
		slog.Int("month", month), slog.Int("year", year), slog.Int("transaction_count", len(matched)))
	return &domain.MonthlyReport{
		Month:            month,
		Year:             year,
		TotalIncome:      totalIncome,
		TotalExpenses:    totalExpenses,
		Net:              totalIncome.Sub(totalExpenses),
		Transactions:     matched,
		CurrentBalance:   balance,
		EmergencyReserve: reserve,
		AvailableFunds:   available,
	}, nil
}

// EventReport builds the full financial picture of one event, including the
// per-category expense breakdown.
func (s *reportingService) EventReport(ctx context.Context, eventID string) (*domain.EventReport, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	payments, err := s.eventRepo.ListPaymentsByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.eventRepo.ListExpensesByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	totalPayments := decimal.Zero
	for _, p := range payments {
		totalPayments = totalPayments.Add(p.Amount)
	}

	totalExpenses := decimal.Zero
	breakdown := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Amount)
		breakdown[e.Category] = breakdown[e.Category].Add(e.Amount)
	}

	return &domain.EventReport{
		Event:            *event,
		Participants:     payments,
		Expenses:         expenses,
		TotalPayments:    totalPayments,
		TotalExpenses:    totalExpenses,
		Profit:           totalPayments.Sub(totalExpenses),
		ExpenseBreakdown: breakdown,
		ParticipantCount: len(payments),
	}, nil
}

// AllEventsReport aggregates every event, newest event date first. With no
// events it returns ErrNotFound rather than an empty report. Per-event income
// and expenses are recomputed from the payment and expense records instead of
// trusting the events' running totals; the dual-posting invariant keeps the
// two in agreement.
func (s *reportingService) AllEventsReport(ctx context.Context) (*domain.AllEventsReport, error) {
	events, err := s.eventRepo.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("%w: no events recorded", apperrors.ErrNotFound)
	}

	payments, err := s.eventRepo.ListPayments(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.eventRepo.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}

	incomeByEvent := make(map[string]decimal.Decimal)
	for _, p := range payments {
		incomeByEvent[p.EventID] = incomeByEvent[p.EventID].Add(p.Amount)
	}
	expensesByEvent := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		expensesByEvent[e.EventID] = expensesByEvent[e.EventID].Add(e.Amount)
	}

	summaries := make([]domain.EventSummary, len(events))
	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	for i, ev := range events {
		income := incomeByEvent[ev.EventID]
		spent := expensesByEvent[ev.EventID]
		summaries[i] = domain.EventSummary{
			Event:    ev,
			Income:   income,
			Expenses: spent,
			Profit:   income.Sub(spent),
		}
		totalIncome = totalIncome.Add(income)
		totalExpenses = totalExpenses.Add(spent)
	}

	// Calendar-aware ordering: parse the event dates rather than comparing
	// them as strings, so ordering survives year boundaries and sloppy input.
	// Unparseable dates sort last.
	sort.SliceStable(summaries, func(i, j int) bool {
		di, okI := parseEventDate(summaries[i].Event.Date)
		dj, okJ := parseEventDate(summaries[j].Event.Date)
		if okI != okJ {
			return okI
		}
		return di.After(dj)
	})

	return &domain.AllEventsReport{
		Events:        summaries,
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		TotalProfit:   totalIncome.Sub(totalExpenses),
		EventCount:    len(events),
	}, nil
}

func parseEventDate(date string) (time.Time, bool) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
