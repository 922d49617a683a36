package repositories

import (
	"context"

	"github.com/aymanouf/committee-finance/internal/core/domain"
)

// EventRepository persists events and their sub-ledgers. The two
// SaveXxxWithTransaction methods are the dual-posting boundary: they append
// the payment/expense record, move the owning event's actual totals, and post
// the ledger transaction as one atomic write, so a failure partway never
// leaves event totals out of sync with the ledger.
type EventRepository interface {
	SaveEvent(ctx context.Context, event domain.Event) error
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	UpdateEventStatus(ctx context.Context, eventID string, status domain.EventStatus) error

	SavePaymentWithTransaction(ctx context.Context, payment domain.ParticipantPayment, txn domain.Transaction) error
	SaveExpenseWithTransaction(ctx context.Context, expense domain.EventExpenseRecord, txn domain.Transaction) error

	ListPaymentsByEventID(ctx context.Context, eventID string) ([]domain.ParticipantPayment, error)
	ListExpensesByEventID(ctx context.Context, eventID string) ([]domain.EventExpenseRecord, error)
	ListPayments(ctx context.Context) ([]domain.ParticipantPayment, error)
	ListExpenses(ctx context.Context) ([]domain.EventExpenseRecord, error)
}
