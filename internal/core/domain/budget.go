package domain

import "github.com/shopspring/decimal"

// Section identifies which side of the budget a category belongs to.
type Section string

const (
	SectionIncome  Section = "income"
	SectionExpense Section = "expense"
)

// Catch-all and fixed category names. Posted amounts whose category does not
// match any known category in the relevant section roll up into the catch-alls.
const (
	CategoryOtherIncome   = "Other Income"
	CategoryOtherExpenses = "Other Expenses"
	CategoryTripPayments  = "Trip Payments"
)

// BudgetCategory tracks a planned figure against realized actuals for one
// category name within a section. Actual is only ever moved by ledger posting,
// never set directly.
type BudgetCategory struct {
	Section  Section         `json:"section"`
	Name     string          `json:"name"`
	Budgeted decimal.Decimal `json:"budget"`
	Actual   decimal.Decimal `json:"actual"`
}

// DefaultIncomeCategories returns the income categories seeded at startup.
func DefaultIncomeCategories() []string {
	return []string{
		"Fundraising Events",
		"Merchandise Sales",
		"Sponsorships",
		CategoryTripPayments,
		CategoryOtherIncome,
	}
}

// DefaultExpenseCategories returns the expense categories seeded at startup.
func DefaultExpenseCategories() []string {
	return []string{
		"Event Expenses",
		"Merchandise Production",
		"Marketing/Promotion",
		"Yearbook",
		"Graduation",
		"School Trips",
		"Transportation",
		"Tickets & Admissions",
		"Emergency Reserve",
		CategoryOtherExpenses,
	}
}
