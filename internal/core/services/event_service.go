package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aymanouf/committee-finance/internal/apperrors"
	"github.com/aymanouf/committee-finance/internal/core/domain"
	portsrepo "github.com/aymanouf/committee-finance/internal/core/ports/repositories"
	portssvc "github.com/aymanouf/committee-finance/internal/core/ports/services"
	"github.com/aymanouf/committee-finance/internal/dto"
)

// eventService owns events and their sub-ledgers. Every payment or expense it
// records is dual-posted: validated against the ledger's approval rules first,
// then written together with its ledger transaction in one atomic repository
// step, so event totals can never drift from the ledger.
type eventService struct {
	BaseService
	eventRepo portsrepo.EventRepository
	ledgerSvc portssvc.LedgerSvcFacade
}

// NewEventService creates a new EventService.
func NewEventService(eventRepo portsrepo.EventRepository, ledgerSvc portssvc.LedgerSvcFacade) portssvc.EventSvcFacade {
	return &eventService{
		eventRepo: eventRepo,
		ledgerSvc: ledgerSvc,
	}
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

// CreateEvent registers a new event in Planning status with zero actuals.
// Projected figures are stored as given, not recomputed.
func (s *eventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*domain.Event, error) {
	event := domain.Event{
		EventID:            uuid.NewString(),
		Name:               req.Name,
		Date:               req.Date,
		Location:           req.Location,
		Coordinator:        req.Coordinator,
		EventType:          req.EventType,
		PricePerPerson:     req.PricePerPerson,
		TargetParticipants: req.TargetParticipants,
		Description:        req.Description,
		ProjectedIncome:    req.ProjectedIncome,
		ProjectedExpenses:  req.ProjectedExpenses,
		ActualIncome:       decimal.Zero,
		ActualExpenses:     decimal.Zero,
		Status:             domain.EventPlanning,
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to save event", slog.String("event_name", req.Name))
		return nil, fmt.Errorf("failed to save event: %w", err)
	}
	s.LogInfo(ctx, "Event created", slog.String("event_id", event.EventID), slog.String("event_name", event.Name))
	return &event, nil
}

// GetEventByID returns the event, or ErrNotFound.
func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	return s.eventRepo.FindEventByID(ctx, eventID)
}

// ListEvents returns all events.
func (s *eventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return s.eventRepo.ListEvents(ctx)
}

// UpdateStatus sets the event's status; there are no transition restrictions.
func (s *eventService) UpdateStatus(ctx context.Context, eventID string, status domain.EventStatus) (*domain.Event, error) {
	if err := s.eventRepo.UpdateEventStatus(ctx, eventID, status); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Event status updated", slog.String("event_id", eventID), slog.String("status", string(status)))
	return s.eventRepo.FindEventByID(ctx, eventID)
}

// AddParticipantPayment records a participant paying towards an event and
// dual-posts the amount into the ledger under "Trip Payments", authorized by
// the event coordinator. Ledger validation runs before anything mutates; a
// rejected posting leaves both the event and the ledger untouched.
func (s *eventService) AddParticipantPayment(ctx context.Context, eventID string, req dto.CreateParticipantPaymentRequest) (*domain.ParticipantPayment, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: payment amount must not be negative", apperrors.ErrValidation)
	}

	payment := domain.ParticipantPayment{
		PaymentID:       uuid.NewString(),
		EventID:         eventID,
		ParticipantName: req.ParticipantName,
		Amount:          req.Amount,
		PaymentDate:     req.PaymentDate,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
		CreatedAt:       time.Now().UTC(),
	}

	txn, err := s.ledgerSvc.PrepareTransaction(ctx, dto.CreateTransactionRequest{
		Date:         req.PaymentDate,
		Description:  fmt.Sprintf("Trip payment - %s (%s)", req.ParticipantName, event.Name),
		Category:     domain.CategoryTripPayments,
		Income:       req.Amount,
		AuthorizedBy: event.Coordinator,
		Notes:        req.Notes,
		EventID:      &eventID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.eventRepo.SavePaymentWithTransaction(ctx, payment, *txn); err != nil {
		s.LogError(ctx, err, "Failed to dual-post participant payment", slog.String("event_id", eventID))
		return nil, err
	}
	s.LogInfo(ctx, "Participant payment recorded",
		slog.String("event_id", eventID),
		slog.String("payment_id", payment.PaymentID),
		slog.String("amount", req.Amount.String()))
	return &payment, nil
}

// AddExpense records a detailed expense against an event and dual-posts it
// into the ledger under the caller-supplied expense category, authorized by
// the event coordinator.
func (s *eventService) AddExpense(ctx context.Context, eventID string, req dto.CreateEventExpenseRequest) (*domain.EventExpenseRecord, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: expense amount must not be negative", apperrors.ErrValidation)
	}

	expense := domain.EventExpenseRecord{
		ExpenseID:   uuid.NewString(),
		EventID:     eventID,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		Category:    req.Category,
		PaidTo:      req.PaidTo,
		ReceiptNum:  req.ReceiptNum,
		Notes:       req.Notes,
		CreatedAt:   time.Now().UTC(),
	}

	txn, err := s.ledgerSvc.PrepareTransaction(ctx, dto.CreateTransactionRequest{
		Date:         req.Date,
		Description:  fmt.Sprintf("%s (%s)", req.Description, event.Name),
		Category:     req.Category,
		Expense:      req.Amount,
		AuthorizedBy: event.Coordinator,
		ReceiptNum:   req.ReceiptNum,
		Notes:        req.Notes,
		EventID:      &eventID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.eventRepo.SaveExpenseWithTransaction(ctx, expense, *txn); err != nil {
		s.LogError(ctx, err, "Failed to dual-post event expense", slog.String("event_id", eventID))
		return nil, err
	}
	s.LogInfo(ctx, "Event expense recorded",
		slog.String("event_id", eventID),
		slog.String("expense_id", expense.ExpenseID),
		slog.String("amount", req.Amount.String()))
	return &expense, nil
}

// PaymentsFor returns the event's participant payments.
func (s *eventService) PaymentsFor(ctx context.Context, eventID string) ([]domain.ParticipantPayment, error) {
	return s.eventRepo.ListPaymentsByEventID(ctx, eventID)
}

// ExpensesFor returns the event's expense records.
func (s *eventService) ExpensesFor(ctx context.Context, eventID string) ([]domain.EventExpenseRecord, error) {
	return s.eventRepo.ListExpensesByEventID(ctx, eventID)
}
