package repositories

import (
	"context"

	"github.com/aymanouf/committee-finance/internal/core/domain"
)

// FundraisingRepository persists standalone fundraising initiatives.
type FundraisingRepository interface {
	SaveInitiative(ctx context.Context, initiative domain.FundraisingInitiative) error
	ListInitiatives(ctx context.Context) ([]domain.FundraisingInitiative, error)
}
