package services

import (
	"context"

	"github.com/aymanouf/committee-finance/internal/core/domain"
	"github.com/aymanouf/committee-finance/internal/dto"
)

// FundraisingSvcFacade owns standalone fundraising initiatives.
type FundraisingSvcFacade interface {
	AddInitiative(ctx context.Context, req dto.CreateInitiativeRequest) (*domain.FundraisingInitiative, error)
	ListInitiatives(ctx context.Context) ([]domain.FundraisingInitiative, error)
}
