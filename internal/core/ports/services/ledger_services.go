package services

import (
	"context"

	"github.com/aymanouf/committee-finance/internal/core/domain"
	"github.com/aymanouf/committee-finance/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade owns ledger transactions and budget categories.
type LedgerSvcFacade interface {
	// PostTransaction validates, authorizes and persists a ledger entry,
	// updating the matching category actuals.
	PostTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	// PrepareTransaction runs the same validation and authorization as
	// PostTransaction and returns the constructed transaction without
	// persisting it. The event sub-ledger uses this to dual-post atomically.
	PrepareTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	CurrentBalance(ctx context.Context) (decimal.Decimal, error)
	EmergencyReserve(ctx context.Context) (decimal.Decimal, error)
	AvailableFunds(ctx context.Context) (decimal.Decimal, error)

	AddCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.BudgetCategory, error)
	SetCategoryBudget(ctx context.Context, section domain.Section, name string, budget decimal.Decimal) (*domain.BudgetCategory, error)
	ListCategories(ctx context.Context, section domain.Section) ([]domain.BudgetCategory, error)
}
