package dto

import (
	"github.com/aymanouf/committee-finance/internal/core/domain"
	"github.com/aymanouf/committee-finance/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest defines the data needed to add a budget category.
type CreateCategoryRequest struct {
	Section       domain.Section  `json:"section" binding:"required,oneof=income expense"`
	Name          string          `json:"name" binding:"required"`
	InitialBudget decimal.Decimal `json:"initialBudget"`
}

// UpdateCategoryBudgetRequest carries the new budgeted figure for a category.
// Only the budget moves; actuals are owned by ledger posting.
type UpdateCategoryBudgetRequest struct {
	Budget decimal.Decimal `json:"budget"`
}

// CategoryResponse defines the data returned for a budget category.
type CategoryResponse struct {
	Section         domain.Section  `json:"section"`
	Name            string          `json:"name"`
	Budgeted        decimal.Decimal `json:"budget"`
	Actual          decimal.Decimal `json:"actual"`
	Remaining       decimal.Decimal `json:"remaining"`
	BudgetedDisplay string          `json:"budgetDisplay"`
	ActualDisplay   string          `json:"actualDisplay"`
}

// BudgetResponse groups categories by section.
type BudgetResponse struct {
	Income   []CategoryResponse `json:"income"`
	Expenses []CategoryResponse `json:"expenses"`
}

// ToCategoryResponse converts a domain.BudgetCategory to its response DTO.
func ToCategoryResponse(cat *domain.BudgetCategory) CategoryResponse {
	return CategoryResponse{
		Section:         cat.Section,
		Name:            cat.Name,
		Budgeted:        cat.Budgeted,
		Actual:          cat.Actual,
		Remaining:       cat.Budgeted.Sub(cat.Actual),
		BudgetedDisplay: utils.FormatKD(cat.Budgeted),
		ActualDisplay:   utils.FormatKD(cat.Actual),
	}
}

// ToCategoryResponses converts a slice of categories.
func ToCategoryResponses(cats []domain.BudgetCategory) []CategoryResponse {
	responses := make([]CategoryResponse, len(cats))
	for i, cat := range cats {
		responses[i] = ToCategoryResponse(&cat)
	}
	return responses
}
