package memory

import (
	"context"
	"fmt"

	"github.com/aymanouf/committee-finance/internal/apperrors"
	"github.com/aymanouf/committee-finance/internal/core/domain"
	portsrepo "github.com/aymanouf/committee-finance/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// LedgerRepository stores transactions and budget categories on the shared Store.
type LedgerRepository struct {
	store *Store
}

// NewLedgerRepository creates a LedgerRepository over the given store.
func NewLedgerRepository(store *Store) *LedgerRepository {
	return &LedgerRepository{store: store}
}

var (
	_ portsrepo.TransactionRepository = (*LedgerRepository)(nil)
	_ portsrepo.CategoryRepository    = (*LedgerRepository)(nil)
)

// SaveTransaction appends the transaction and updates category actuals in one
// locked step.
func (r *LedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.applyTransactionLocked(txn)
	return nil
}

// ListTransactions returns all transactions in posting order.
func (r *LedgerRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]domain.Transaction(nil), r.store.transactions...), nil
}

// SaveCategory inserts a category, failing with ErrDuplicate when the name is
// already taken within the section.
func (r *LedgerRepository) SaveCategory(ctx context.Context, category domain.BudgetCategory) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	reg := r.store.registryFor(category.Section)
	if !reg.add(category) {
		return fmt.Errorf("%w: category %q in section %s", apperrors.ErrDuplicate, category.Name, category.Section)
	}
	return nil
}

// UpdateCategoryBudget overwrites the budgeted figure only; actuals are moved
// exclusively by ledger posting.
func (r *LedgerRepository) UpdateCategoryBudget(ctx context.Context, section domain.Section, name string, budget decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cat, ok := r.store.registryFor(section).byName[name]
	if !ok {
		return fmt.Errorf("%w: category %q in section %s", apperrors.ErrNotFound, name, section)
	}
	cat.Budgeted = budget
	return nil
}

// FindCategory returns a copy of the named category.
func (r *LedgerRepository) FindCategory(ctx context.Context, section domain.Section, name string) (*domain.BudgetCategory, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	cat, ok := r.store.registryFor(section).byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: category %q in section %s", apperrors.ErrNotFound, name, section)
	}
	c := *cat
	return &c, nil
}

// ListCategories returns the section's categories in insertion order.
func (r *LedgerRepository) ListCategories(ctx context.Context, section domain.Section) ([]domain.BudgetCategory, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.registryFor(section).list(), nil
}

// HasCategory reports whether the name is known in either section.
func (r *LedgerRepository) HasCategory(ctx context.Context, name string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if _, ok := r.store.income.byName[name]; ok {
		return true, nil
	}
	_, ok := r.store.expense.byName[name]
	return ok, nil
}
