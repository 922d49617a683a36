package domain

import "github.com/shopspring/decimal"

// MonthlyReport summarizes ledger activity for one calendar month (matched on
// transaction creation time, not a rolling window), plus the running fund
// position at the time the report is built.
type MonthlyReport struct {
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	Net              decimal.Decimal `json:"net"`
	Transactions     []Transaction   `json:"transactions"`
	CurrentBalance   decimal.Decimal `json:"currentBalance"`
	EmergencyReserve decimal.Decimal `json:"emergencyReserve"`
	AvailableFunds   decimal.Decimal `json:"availableFunds"`
}

// EventReport is the full financial picture of a single event.
type EventReport struct {
	Event            Event                      `json:"event"`
	Participants     []ParticipantPayment       `json:"participants"`
	Expenses         []EventExpenseRecord       `json:"expenses"`
	TotalPayments    decimal.Decimal            `json:"totalPayments"`
	TotalExpenses    decimal.Decimal            `json:"totalExpenses"`
	Profit           decimal.Decimal            `json:"profit"`
	ExpenseBreakdown map[string]decimal.Decimal `json:"expenseBreakdown"`
	ParticipantCount int                        `json:"participantCount"`
}

// EventSummary is one row of the all-events report. Income and Expenses are
// recomputed from the payment and expense records rather than read off the
// event's own running totals; the two must always agree.
type EventSummary struct {
	Event    Event           `json:"event"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// AllEventsReport aggregates every event, sorted by event date descending.
type AllEventsReport struct {
	Events        []EventSummary  `json:"events"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	TotalProfit   decimal.Decimal `json:"totalProfit"`
	EventCount    int             `json:"eventCount"`
}
