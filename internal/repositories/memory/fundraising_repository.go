package memory

import (
	"context"

	"github.com/aymanouf/committee-finance/internal/core/domain"
	portsrepo "github.com/aymanouf/committee-finance/internal/core/ports/repositories"
)

// FundraisingRepository stores fundraising initiatives on the shared Store.
type FundraisingRepository struct {
	store *Store
}

// NewFundraisingRepository creates a FundraisingRepository over the given store.
func NewFundraisingRepository(store *Store) *FundraisingRepository {
	return &FundraisingRepository{store: store}
}

var _ portsrepo.FundraisingRepository = (*FundraisingRepository)(nil)

// SaveInitiative appends a new fundraising initiative.
func (r *FundraisingRepository) SaveInitiative(ctx context.Context, initiative domain.FundraisingInitiative) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.fundraising = append(r.store.fundraising, initiative)
	return nil
}

// ListInitiatives returns all initiatives in creation order.
func (r *FundraisingRepository) ListInitiatives(ctx context.Context) ([]domain.FundraisingInitiative, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]domain.FundraisingInitiative(nil), r.store.fundraising...), nil
}
