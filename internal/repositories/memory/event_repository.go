package memory

import (
	"context"
	"fmt"

	"github.com/aymanouf/committee-finance/internal/apperrors"
	"github.com/aymanouf/committee-finance/internal/core/domain"
	portsrepo "github.com/aymanouf/committee-finance/internal/core/ports/repositories"
)

// EventRepository stores events and their sub-ledgers on the shared Store.
type EventRepository struct {
	store *Store
}

// NewEventRepository creates an EventRepository over the given store.
func NewEventRepository(store *Store) *EventRepository {
	return &EventRepository{store: store}
}

var _ portsrepo.EventRepository = (*EventRepository)(nil)

// SaveEvent appends a new event.
func (r *EventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events = append(r.store.events, event)
	return nil
}

// FindEventByID returns a copy of the event, or ErrNotFound.
func (r *EventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	ev := r.store.findEventLocked(eventID)
	if ev == nil {
		return nil, fmt.Errorf("%w: event %s", apperrors.ErrNotFound, eventID)
	}
	copied := *ev
	return &copied, nil
}

// ListEvents returns all events in creation order.
func (r *EventRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]domain.Event(nil), r.store.events...), nil
}

// UpdateEventStatus sets the event's status. Any status is reachable from any
// other.
func (r *EventRepository) UpdateEventStatus(ctx context.Context, eventID string, status domain.EventStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ev := r.store.findEventLocked(eventID)
	if ev == nil {
		return fmt.Errorf("%w: event %s", apperrors.ErrNotFound, eventID)
	}
	ev.Status = status
	return nil
}

// SavePaymentWithTransaction dual-posts a participant payment: the payment
// record, the event's actual income and the ledger entry move together under
// one lock, so either all three are observable or none is.
func (r *EventRepository) SavePaymentWithTransaction(ctx context.Context, payment domain.ParticipantPayment, txn domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ev := r.store.findEventLocked(payment.EventID)
	if ev == nil {
		return fmt.Errorf("%w: event %s", apperrors.ErrNotFound, payment.EventID)
	}
	r.store.payments = append(r.store.payments, payment)
	ev.ActualIncome = ev.ActualIncome.Add(payment.Amount)
	r.store.applyTransactionLocked(txn)
	return nil
}

// SaveExpenseWithTransaction dual-posts an event expense, mirroring
// SavePaymentWithTransaction on the expense side.
func (r *EventRepository) SaveExpenseWithTransaction(ctx context.Context, expense domain.EventExpenseRecord, txn domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ev := r.store.findEventLocked(expense.EventID)
	if ev == nil {
		return fmt.Errorf("%w: event %s", apperrors.ErrNotFound, expense.EventID)
	}
	r.store.eventCosts = append(r.store.eventCosts, expense)
	ev.ActualExpenses = ev.ActualExpenses.Add(expense.Amount)
	r.store.applyTransactionLocked(txn)
	return nil
}

// ListPaymentsByEventID returns the event's payments in creation order.
func (r *EventRepository) ListPaymentsByEventID(ctx context.Context, eventID string) ([]domain.ParticipantPayment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []domain.ParticipantPayment
	for _, p := range r.store.payments {
		if p.EventID == eventID {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListExpensesByEventID returns the event's expenses in creation order.
func (r *EventRepository) ListExpensesByEventID(ctx context.Context, eventID string) ([]domain.EventExpenseRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []domain.EventExpenseRecord
	for _, e := range r.store.eventCosts {
		if e.EventID == eventID {
			out = append(out, e)
		}
	}
	return out, nil
}

// ListPayments returns every participant payment.
func (r *EventRepository) ListPayments(ctx context.Context) ([]domain.ParticipantPayment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]domain.ParticipantPayment(nil), r.store.payments...), nil
}

// ListExpenses returns every event expense record.
func (r *EventRepository) ListExpenses(ctx context.Context) ([]domain.EventExpenseRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]domain.EventExpenseRecord(nil), r.store.eventCosts...), nil
}
