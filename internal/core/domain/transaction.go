package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single ledger entry. Exactly one of Income/Expense is
// expected to be nonzero. Transactions are append-only: there is no edit or
// delete once posted.
type Transaction struct {
	TransactionID string          `json:"id"`                 // Primary Key (UUID)
	Date          string          `json:"date"`               // YYYY-MM-DD
	Description   string          `json:"description"`        // Not empty
	Category      string          `json:"category"`           // Budget category name, not empty
	Income        decimal.Decimal `json:"income"`             // >= 0
	Expense       decimal.Decimal `json:"expense"`            // >= 0
	AuthorizedBy  string          `json:"authorized_by"`      // Approver role or person
	ReceiptNum    string          `json:"receipt_number"`     // Nullable
	Notes         string          `json:"notes"`              // Nullable
	EventID       *string         `json:"event_id,omitempty"` // Optional FK -> Event.EventID
	CreatedAt     time.Time       `json:"created_at"`
}

// Amount returns the economic value of the transaction, whichever side it
// was posted on.
func (t Transaction) Amount() decimal.Decimal {
	if t.Income.GreaterThan(t.Expense) {
		return t.Income
	}
	return t.Expense
}
