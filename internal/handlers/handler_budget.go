package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aymanouf/committee-finance/internal/apperrors"
	"github.com/aymanouf/committee-finance/internal/core/domain"
	portssvc "github.com/aymanouf/committee-finance/internal/core/ports/services"
	"github.com/aymanouf/committee-finance/internal/dto"
	"github.com/aymanouf/committee-finance/internal/middleware"
)

// BudgetHandler handles HTTP requests for budget categories.
type BudgetHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(ledgerService portssvc.LedgerSvcFacade) *BudgetHandler {
	return &BudgetHandler{ledgerService: ledgerService}
}

// RegisterBudgetRoutes registers budget routes. Category management is
// admin-only; the budget overview is open to any authenticated member.
func RegisterBudgetRoutes(rg *gin.RouterGroup, admin *gin.RouterGroup, h *BudgetHandler) {
	rg.GET("/budget", h.GetBudget)
	admin.POST("/budget/categories", h.AddCategory)
	admin.PUT("/budget/categories/:section/:name", h.SetCategoryBudget)
}

// GetBudget godoc
// @Summary Budget overview
// @Description All income and expense categories with budgeted and actual figures
// @Tags budget
// @Produce  json
// @Success 200 {object} dto.BudgetResponse
// @Security BearerAuth
// @Router /budget [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	ctx := c.Request.Context()
	income, err := h.ledgerService.ListCategories(ctx, domain.SectionIncome)
	if err != nil {
		respondWithError(c, err, "Failed to list income categories")
		return
	}
	expenses, err := h.ledgerService.ListCategories(ctx, domain.SectionExpense)
	if err != nil {
		respondWithError(c, err, "Failed to list expense categories")
		return
	}
	c.JSON(http.StatusOK, dto.BudgetResponse{
		Income:   dto.ToCategoryResponses(income),
		Expenses: dto.ToCategoryResponses(expenses),
	})
}

// AddCategory godoc
// @Summary Add a budget category
// @Tags budget
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Category already exists in the section"
// @Security BearerAuth
// @Router /budget/categories [post]
func (h *BudgetHandler) AddCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cat, err := h.ledgerService.AddCategory(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to add category")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(cat))
}

// SetCategoryBudget godoc
// @Summary Set a category's budgeted figure
// @Description Overwrites the budget only; actuals are owned by ledger posting
// @Tags budget
// @Accept  json
// @Produce  json
// @Param   section path string true "Section (income or expense)"
// @Param   name path string true "Category name"
// @Param   budget body dto.UpdateCategoryBudgetRequest true "New budget"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} map[string]string "Unknown category"
// @Security BearerAuth
// @Router /budget/categories/{section}/{name} [put]
func (h *BudgetHandler) SetCategoryBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	section := domain.Section(c.Param("section"))
	if section != domain.SectionIncome && section != domain.SectionExpense {
		respondWithError(c, fmt.Errorf("%w: unknown section %q", apperrors.ErrValidation, c.Param("section")), "")
		return
	}

	var req dto.UpdateCategoryBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetCategoryBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cat, err := h.ledgerService.SetCategoryBudget(c.Request.Context(), section, c.Param("name"), req.Budget)
	if err != nil {
		respondWithError(c, err, "Failed to update category budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(cat))
}
