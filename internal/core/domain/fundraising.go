package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundraisingInitiative is a standalone fundraising effort tracked against a
// goal. It is not linked to the ledger.
type FundraisingInitiative struct {
	InitiativeID string          `json:"id"` // Primary Key (UUID)
	Name         string          `json:"name"`
	StartDate    string          `json:"start_date"` // YYYY-MM-DD
	EndDate      string          `json:"end_date"`   // YYYY-MM-DD
	Coordinator  string          `json:"coordinator"`
	GoalAmount   decimal.Decimal `json:"goal_amount"`
	ActualRaised decimal.Decimal `json:"actual_raised"`
	Expenses     decimal.Decimal `json:"expenses"`
	NetProceeds  decimal.Decimal `json:"net_proceeds"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}
