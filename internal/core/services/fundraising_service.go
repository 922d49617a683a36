package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aymanouf/committee-finance/internal/core/domain"
	portsrepo "github.com/aymanouf/committee-finance/internal/core/ports/repositories"
	portssvc "github.com/aymanouf/committee-finance/internal/core/ports/services"
	"github.com/aymanouf/committee-finance/internal/dto"
)

// fundraisingService tracks standalone fundraising initiatives. They are not
// ledger-linked; proceeds enter the ledger as ordinary transactions when the
// treasurer posts them.
type fundraisingService struct {
	BaseService
	fundraisingRepo portsrepo.FundraisingRepository
}

// NewFundraisingService creates a new FundraisingService.
func NewFundraisingService(fundraisingRepo portsrepo.FundraisingRepository) portssvc.FundraisingSvcFacade {
	return &fundraisingService{fundraisingRepo: fundraisingRepo}
}

var _ portssvc.FundraisingSvcFacade = (*fundraisingService)(nil)

// AddInitiative registers a new initiative in Planning status with all
// realized figures at zero.
func (s *fundraisingService) AddInitiative(ctx context.Context, req dto.CreateInitiativeRequest) (*domain.FundraisingInitiative, error) {
	initiative := domain.FundraisingInitiative{
		InitiativeID: uuid.NewString(),
		Name:         req.Name,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Coordinator:  req.Coordinator,
		GoalAmount:   req.GoalAmount,
		ActualRaised: decimal.Zero,
		Expenses:     decimal.Zero,
		NetProceeds:  decimal.Zero,
		Status:       "Planning",
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.fundraisingRepo.SaveInitiative(ctx, initiative); err != nil {
		s.LogError(ctx, err, "Failed to save fundraising initiative", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save initiative: %w", err)
	}
	s.LogInfo(ctx, "Fundraising initiative added", slog.String("initiative_id", initiative.InitiativeID))
	return &initiative, nil
}

// ListInitiatives returns all initiatives in creation order.
func (s *fundraisingService) ListInitiatives(ctx context.Context) ([]domain.FundraisingInitiative, error) {
	return s.fundraisingRepo.ListInitiatives(ctx)
}
