// Package memory holds the application's single in-memory aggregate: the
// ledger, the event sub-ledgers, fundraising initiatives and users, guarded by
// one lock. Repositories in this package are thin views over the shared Store,
// the way SQL repositories share a connection pool. The backing "database" is
// the flat JSON snapshot document in snapshot.go.
package memory

import (
	"sync"

	"github.com/aymanouf/committee-finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// sectionRegistry is the set of known categories for one budget section,
// keeping insertion order for listing.
type sectionRegistry struct {
	order  []string
	byName map[string]*domain.BudgetCategory
}

func newSectionRegistry() *sectionRegistry {
	return &sectionRegistry{byName: make(map[string]*domain.BudgetCategory)}
}

func (r *sectionRegistry) add(cat domain.BudgetCategory) bool {
	if _, exists := r.byName[cat.Name]; exists {
		return false
	}
	c := cat
	r.byName[c.Name] = &c
	r.order = append(r.order, c.Name)
	return true
}

func (r *sectionRegistry) list() []domain.BudgetCategory {
	out := make([]domain.BudgetCategory, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, *r.byName[name])
	}
	return out
}

// Store is the session aggregate. All mutation goes through its lock; the
// dual-posting writes in event_repository.go rely on that lock to make the
// event-total move and the ledger append one atomic step.
type Store struct {
	mu sync.RWMutex

	income  *sectionRegistry
	expense *sectionRegistry

	transactions []domain.Transaction
	events       []domain.Event
	payments     []domain.ParticipantPayment
	eventCosts   []domain.EventExpenseRecord
	fundraising  []domain.FundraisingInitiative
	users        map[string]domain.User
}

// NewStore builds a Store seeded with the committee's default budget categories.
func NewStore() *Store {
	s := &Store{
		income:  newSectionRegistry(),
		expense: newSectionRegistry(),
		users:   make(map[string]domain.User),
	}
	for _, name := range domain.DefaultIncomeCategories() {
		s.income.add(domain.BudgetCategory{Section: domain.SectionIncome, Name: name, Budgeted: decimal.Zero, Actual: decimal.Zero})
	}
	for _, name := range domain.DefaultExpenseCategories() {
		s.expense.add(domain.BudgetCategory{Section: domain.SectionExpense, Name: name, Budgeted: decimal.Zero, Actual: decimal.Zero})
	}
	return s
}

func (s *Store) registryFor(section domain.Section) *sectionRegistry {
	if section == domain.SectionIncome {
		return s.income
	}
	return s.expense
}

// applyTransactionLocked appends the transaction and folds its amount into the
// matching category actuals, rolling unknown categories into the catch-alls.
// Callers must hold the write lock.
func (s *Store) applyTransactionLocked(txn domain.Transaction) {
	s.transactions = append(s.transactions, txn)
	if txn.Income.IsPositive() {
		s.bumpActualLocked(s.income, txn.Category, domain.CategoryOtherIncome, txn.Income)
	}
	if txn.Expense.IsPositive() {
		s.bumpActualLocked(s.expense, txn.Category, domain.CategoryOtherExpenses, txn.Expense)
	}
}

func (s *Store) bumpActualLocked(reg *sectionRegistry, category, catchAll string, amount decimal.Decimal) {
	cat, ok := reg.byName[category]
	if !ok {
		cat, ok = reg.byName[catchAll]
		if !ok {
			// Snapshot imports may drop the catch-all; recreate it.
			section := domain.SectionIncome
			if reg == s.expense {
				section = domain.SectionExpense
			}
			reg.add(domain.BudgetCategory{Section: section, Name: catchAll, Budgeted: decimal.Zero, Actual: decimal.Zero})
			cat = reg.byName[catchAll]
		}
	}
	cat.Actual = cat.Actual.Add(amount)
}

// findEventLocked returns a pointer into the events slice, or nil.
func (s *Store) findEventLocked(eventID string) *domain.Event {
	for i := range s.events {
		if s.events[i].EventID == eventID {
			return &s.events[i]
		}
	}
	return nil
}
