package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/aymanouf/committee-finance/internal/core/ports/services"
	"github.com/aymanouf/committee-finance/internal/dto"
	"github.com/aymanouf/committee-finance/internal/middleware"
)

// FundraisingHandler handles HTTP requests for fundraising initiatives.
type FundraisingHandler struct {
	fundraisingService portssvc.FundraisingSvcFacade
}

// NewFundraisingHandler creates a new FundraisingHandler.
func NewFundraisingHandler(fundraisingService portssvc.FundraisingSvcFacade) *FundraisingHandler {
	return &FundraisingHandler{fundraisingService: fundraisingService}
}

// RegisterFundraisingRoutes registers fundraising routes.
func RegisterFundraisingRoutes(rg *gin.RouterGroup, admin *gin.RouterGroup, h *FundraisingHandler) {
	rg.GET("/fundraising", h.ListInitiatives)
	admin.POST("/fundraising", h.AddInitiative)
}

// AddInitiative godoc
// @Summary Add a fundraising initiative
// @Tags fundraising
// @Accept  json
// @Produce  json
// @Param   initiative body dto.CreateInitiativeRequest true "Initiative details"
// @Success 201 {object} dto.InitiativeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /fundraising [post]
func (h *FundraisingHandler) AddInitiative(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInitiativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddInitiative", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	initiative, err := h.fundraisingService.AddInitiative(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to add initiative")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInitiativeResponse(initiative))
}

// ListInitiatives godoc
// @Summary List fundraising initiatives
// @Tags fundraising
// @Produce  json
// @Success 200 {array} dto.InitiativeResponse
// @Security BearerAuth
// @Router /fundraising [get]
func (h *FundraisingHandler) ListInitiatives(c *gin.Context) {
	initiatives, err := h.fundraisingService.ListInitiatives(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list initiatives")
		return
	}
	c.JSON(http.StatusOK, dto.ToInitiativeResponses(initiatives))
}
