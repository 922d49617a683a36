package services

import (
	"context"
	"time"

	"github.com/aymanouf/committee-finance/internal/core/domain"
)

// AuthSvcFacade verifies committee member credentials and issues access tokens.
type AuthSvcFacade interface {
	// Login checks the username/password pair and returns the user together
	// with a signed JWT and its expiry. Returns apperrors.ErrUnauthorized on
	// bad credentials.
	Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error)
}
