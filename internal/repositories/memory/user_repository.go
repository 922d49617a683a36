package memory

import (
	"context"
	"fmt"

	"github.com/aymanouf/committee-finance/internal/apperrors"
	"github.com/aymanouf/committee-finance/internal/core/domain"
	portsrepo "github.com/aymanouf/committee-finance/internal/core/ports/repositories"
)

// UserRepository stores committee member logins on the shared Store.
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a UserRepository over the given store.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

var _ portsrepo.UserRepository = (*UserRepository)(nil)

// SaveUser inserts or replaces a user by username.
func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users[user.Username] = user
	return nil
}

// FindUserByUsername returns the user, or ErrNotFound.
func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	user, ok := r.store.users[username]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, username)
	}
	return &user, nil
}
