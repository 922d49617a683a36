package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventStatus indicates the lifecycle state of an event. Any status is
// reachable from any other; there are no transition restrictions.
type EventStatus string

const (
	EventPlanning  EventStatus = "Planning"
	EventActive    EventStatus = "Active"
	EventCompleted EventStatus = "Completed"
)

// Event is a committee activity (trip, sale, ...) with its own sub-ledger of
// participant payments and expenses. ActualIncome and ActualExpenses are
// derived totals maintained in lock-step with ledger postings: at all times
// ActualIncome equals the sum of this event's payment amounts and
// ActualExpenses the sum of its expense amounts.
type Event struct {
	EventID            string          `json:"id"` // Primary Key (UUID)
	Name               string          `json:"name"`
	Date               string          `json:"date"` // YYYY-MM-DD
	Location           string          `json:"location"`
	Coordinator        string          `json:"coordinator"`
	EventType          string          `json:"event_type"`
	PricePerPerson     decimal.Decimal `json:"price_per_person"`
	TargetParticipants int             `json:"target_participants"`
	Description        string          `json:"description"`
	ProjectedIncome    decimal.Decimal `json:"projected_income"`
	ProjectedExpenses  decimal.Decimal `json:"projected_expenses"`
	ActualIncome       decimal.Decimal `json:"actual_income"`
	ActualExpenses     decimal.Decimal `json:"actual_expenses"`
	Status             EventStatus     `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
}

// ParticipantPayment records one participant paying towards an event. Each
// payment is dual-posted: it also creates a "Trip Payments" income transaction
// in the ledger.
type ParticipantPayment struct {
	PaymentID       string          `json:"id"`       // Primary Key (UUID)
	EventID         string          `json:"event_id"` // FK -> Event.EventID
	ParticipantName string          `json:"participant_name"`
	Amount          decimal.Decimal `json:"payment_amount"` // >= 0
	PaymentDate     string          `json:"payment_date"`   // YYYY-MM-DD
	PaymentMethod   string          `json:"payment_method"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
}

// EventExpenseRecord is a detailed expense booked against an event. It is
// dual-posted into the ledger under the caller-supplied expense category.
type EventExpenseRecord struct {
	ExpenseID   string          `json:"id"`       // Primary Key (UUID)
	EventID     string          `json:"event_id"` // FK -> Event.EventID
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // >= 0
	Date        string          `json:"date"`   // YYYY-MM-DD
	Category    string          `json:"category"`
	PaidTo      string          `json:"paid_to"`
	ReceiptNum  string          `json:"receipt_number"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
}
