package services

import (
	"context"

	"github.com/aymanouf/committee-finance/internal/core/domain"
	"github.com/aymanouf/committee-finance/internal/dto"
)

// EventSvcFacade owns events, participant payments and event expenses, and
// keeps their totals in lock-step with the ledger via dual posting.
type EventSvcFacade interface {
	CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*domain.Event, error)
	GetEventByID(ctx context.Context, eventID string) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	UpdateStatus(ctx context.Context, eventID string, status domain.EventStatus) (*domain.Event, error)

	AddParticipantPayment(ctx context.Context, eventID string, req dto.CreateParticipantPaymentRequest) (*domain.ParticipantPayment, error)
	AddExpense(ctx context.Context, eventID string, req dto.CreateEventExpenseRequest) (*domain.EventExpenseRecord, error)

	PaymentsFor(ctx context.Context, eventID string) ([]domain.ParticipantPayment, error)
	ExpensesFor(ctx context.Context, eventID string) ([]domain.EventExpenseRecord, error)
}
