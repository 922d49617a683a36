package dto

import (
	"time"

	"github.com/aymanouf/committee-finance/internal/core/domain"
)

// LoginRequest carries committee member credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed access token and the member's role.
type LoginResponse struct {
	Username    string          `json:"username"`
	Role        domain.UserRole `json:"role"`
	AccessToken string          `json:"accessToken"`
	ExpiresAt   time.Time       `json:"expiresAt"`
}
