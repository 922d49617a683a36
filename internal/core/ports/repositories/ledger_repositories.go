package repositories

import (
	"context"

	"github.com/aymanouf/committee-finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionRepository persists ledger transactions. Saving a transaction
// also applies its amount to the matching budget category actuals (with
// catch-all rollup), atomically with the append.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// CategoryRepository is the registry of budget categories, two namespaces
// (income and expense) with uniqueness per section.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.BudgetCategory) error
	UpdateCategoryBudget(ctx context.Context, section domain.Section, name string, budget decimal.Decimal) error
	FindCategory(ctx context.Context, section domain.Section, name string) (*domain.BudgetCategory, error)
	ListCategories(ctx context.Context, section domain.Section) ([]domain.BudgetCategory, error)
	// HasCategory reports whether the name exists in either section. Used by
	// the approval policy to detect the new-category case.
	HasCategory(ctx context.Context, name string) (bool, error)
}
