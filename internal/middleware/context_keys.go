package middleware

import (
	"context"
	"log/slog"

	"github.com/aymanouf/committee-finance/internal/core/domain"
)

// contextKey is a private type for context keys to prevent collisions.
type contextKey string

const (
	loggerCtxKey   contextKey = "logger"
	usernameCtxKey contextKey = "username"
	userRoleCtxKey contextKey = "userRole"
)

// GetLoggerFromCtx retrieves the request-scoped logger from the context,
// falling back to the default logger.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// GetUsernameFromCtx retrieves the authenticated username from the context.
func GetUsernameFromCtx(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameCtxKey).(string)
	return username, ok
}

// GetUserRoleFromCtx retrieves the authenticated user's role from the context.
func GetUserRoleFromCtx(ctx context.Context) (domain.UserRole, bool) {
	role, ok := ctx.Value(userRoleCtxKey).(domain.UserRole)
	return role, ok
}
