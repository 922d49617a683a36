package memory

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/aymanouf/committee-finance/internal/apperrors"
	"github.com/aymanouf/committee-finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// snapshotCategory is the per-category entry of the snapshot's budget maps.
type snapshotCategory struct {
	Budget decimal.Decimal `json:"budget"`
	Actual decimal.Decimal `json:"actual"`
}

// snapshotBudget nests the two category namespaces.
type snapshotBudget struct {
	Income   map[string]snapshotCategory `json:"income"`
	Expenses map[string]snapshotCategory `json:"expenses"`
}

// Snapshot is the flat document the whole application state serializes to.
// Pointer fields distinguish an absent top-level key (collection untouched on
// import) from a present-but-empty one (collection replaced with nothing).
type Snapshot struct {
	Budget            *snapshotBudget                 `json:"budget,omitempty"`
	Transactions      *[]domain.Transaction           `json:"transactions,omitempty"`
	Events            *[]domain.Event                 `json:"events,omitempty"`
	EventParticipants *[]domain.ParticipantPayment    `json:"event_participants,omitempty"`
	EventExpenses     *[]domain.EventExpenseRecord    `json:"event_expenses,omitempty"`
	Fundraising       *[]domain.FundraisingInitiative `json:"fundraising,omitempty"`
}

// ExportSnapshot serializes the full state into the snapshot document.
func (s *Store) ExportSnapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	budget := snapshotBudget{
		Income:   make(map[string]snapshotCategory, len(s.income.order)),
		Expenses: make(map[string]snapshotCategory, len(s.expense.order)),
	}
	for _, name := range s.income.order {
		cat := s.income.byName[name]
		budget.Income[name] = snapshotCategory{Budget: cat.Budgeted, Actual: cat.Actual}
	}
	for _, name := range s.expense.order {
		cat := s.expense.byName[name]
		budget.Expenses[name] = snapshotCategory{Budget: cat.Budgeted, Actual: cat.Actual}
	}

	transactions := append([]domain.Transaction{}, s.transactions...)
	events := append([]domain.Event{}, s.events...)
	payments := append([]domain.ParticipantPayment{}, s.payments...)
	expenses := append([]domain.EventExpenseRecord{}, s.eventCosts...)
	fundraising := append([]domain.FundraisingInitiative{}, s.fundraising...)

	snap := Snapshot{
		Budget:            &budget,
		Transactions:      &transactions,
		Events:            &events,
		EventParticipants: &payments,
		EventExpenses:     &expenses,
		Fundraising:       &fundraising,
	}
	return json.MarshalIndent(snap, "", "  ")
}

// ImportSnapshot merges a snapshot document into the store. Top-level keys
// absent from the document leave the corresponding collection unchanged, so
// partial restores work. A malformed document errors out before anything is
// touched.
func (s *Store) ImportSnapshot(data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("%w: malformed snapshot document: %v", apperrors.ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.Budget != nil {
		s.income = registryFromSnapshot(domain.SectionIncome, snap.Budget.Income)
		s.expense = registryFromSnapshot(domain.SectionExpense, snap.Budget.Expenses)
	}
	if snap.Transactions != nil {
		s.transactions = append([]domain.Transaction(nil), *snap.Transactions...)
	}
	if snap.Events != nil {
		s.events = append([]domain.Event(nil), *snap.Events...)
	}
	if snap.EventParticipants != nil {
		s.payments = append([]domain.ParticipantPayment(nil), *snap.EventParticipants...)
	}
	if snap.EventExpenses != nil {
		s.eventCosts = append([]domain.EventExpenseRecord(nil), *snap.EventExpenses...)
	}
	if snap.Fundraising != nil {
		s.fundraising = append([]domain.FundraisingInitiative(nil), *snap.Fundraising...)
	}
	return nil
}

// registryFromSnapshot rebuilds a section registry from the snapshot's
// category map, sorted by name for a stable listing order.
func registryFromSnapshot(section domain.Section, cats map[string]snapshotCategory) *sectionRegistry {
	reg := newSectionRegistry()
	names := make([]string, 0, len(cats))
	for name := range cats {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		entry := cats[name]
		reg.add(domain.BudgetCategory{
			Section:  section,
			Name:     name,
			Budgeted: entry.Budget,
			Actual:   entry.Actual,
		})
	}
	return reg
}
