package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aymanouf/committee-finance/internal/apperrors"
	"github.com/aymanouf/committee-finance/internal/core/domain"
	portsrepo "github.com/aymanouf/committee-finance/internal/core/ports/repositories"
	portssvc "github.com/aymanouf/committee-finance/internal/core/ports/services"
	"github.com/aymanouf/committee-finance/internal/platform/config"
	"github.com/aymanouf/committee-finance/internal/utils"
)

// authService verifies committee member credentials and issues JWTs.
type authService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepository) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, userRepo: userRepo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login checks the credentials against the stored bcrypt hash and returns the
// user with a signed access token. Unknown users and wrong passwords both map
// to ErrUnauthorized so the response does not leak which usernames exist.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", time.Time{}, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, "", time.Time{}, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogWarn(ctx, "Failed login attempt", slog.String("username", username))
		return nil, "", time.Time{}, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.Username, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	s.LogInfo(ctx, "User logged in", slog.String("username", username), slog.String("role", string(user.Role)))
	return user, token, expiresAt, nil
}

// SeedUsers ensures the configured committee logins exist, hashing the
// configured passwords. Called once at startup.
func SeedUsers(ctx context.Context, userRepo portsrepo.UserRepository, cfg *config.Config) error {
	seeds := []struct {
		username string
		password string
		role     domain.UserRole
	}{
		{cfg.AdminUsername, cfg.AdminPassword, domain.RoleAdmin},
		{cfg.ViewerUsername, cfg.ViewerPassword, domain.RoleViewer},
	}
	now := time.Now().UTC()
	for _, seed := range seeds {
		hash, err := utils.HashPassword(seed.password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", seed.username, err)
		}
		user := domain.User{
			Username:     seed.username,
			PasswordHash: hash,
			Role:         seed.role,
			CreatedAt:    now,
		}
		if err := userRepo.SaveUser(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", seed.username, err)
		}
	}
	return nil
}
