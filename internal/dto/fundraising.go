package dto

import (
	"time"

	"github.com/aymanouf/committee-finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInitiativeRequest defines the data needed to add a fundraising initiative.
type CreateInitiativeRequest struct {
	Name        string          `json:"name" binding:"required"`
	StartDate   string          `json:"startDate" binding:"required,dateformat"`
	EndDate     string          `json:"endDate" binding:"required,dateformat"`
	Coordinator string          `json:"coordinator" binding:"required"`
	GoalAmount  decimal.Decimal `json:"goalAmount"`
}

// InitiativeResponse defines the data returned for a fundraising initiative.
type InitiativeResponse struct {
	InitiativeID string          `json:"id"`
	Name         string          `json:"name"`
	StartDate    string          `json:"startDate"`
	EndDate      string          `json:"endDate"`
	Coordinator  string          `json:"coordinator"`
	GoalAmount   decimal.Decimal `json:"goalAmount"`
	ActualRaised decimal.Decimal `json:"actualRaised"`
	Expenses     decimal.Decimal `json:"expenses"`
	NetProceeds  decimal.Decimal `json:"netProceeds"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToInitiativeResponse converts a domain.FundraisingInitiative.
func ToInitiativeResponse(in *domain.FundraisingInitiative) InitiativeResponse {
	return InitiativeResponse{
		InitiativeID: in.InitiativeID,
		Name:         in.Name,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Coordinator:  in.Coordinator,
		GoalAmount:   in.GoalAmount,
		ActualRaised: in.ActualRaised,
		Expenses:     in.Expenses,
		NetProceeds:  in.NetProceeds,
		Status:       in.Status,
		CreatedAt:    in.CreatedAt,
	}
}

// ToInitiativeResponses converts a slice of initiatives.
func ToInitiativeResponses(ins []domain.FundraisingInitiative) []InitiativeResponse {
	responses := make([]InitiativeResponse, len(ins))
	for i, in := range ins {
		responses[i] = ToInitiativeResponse(&in)
	}
	return responses
}
