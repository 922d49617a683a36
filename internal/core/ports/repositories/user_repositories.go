package repositories

import (
	"context"

	"github.com/aymanouf/committee-finance/internal/core/domain"
)

// UserRepository persists committee member logins.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
