package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/aymanouf/committee-finance/internal/core/ports/services"
	"github.com/aymanouf/committee-finance/internal/dto"
	"github.com/aymanouf/committee-finance/internal/middleware"
	"github.com/aymanouf/committee-finance/internal/utils"
)

// LedgerHandler handles HTTP requests for ledger transactions and the fund
// position summary.
type LedgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerService portssvc.LedgerSvcFacade) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// RegisterLedgerRoutes registers transaction and summary routes. Posting is
// admin-only; reads are open to any authenticated member.
func RegisterLedgerRoutes(rg *gin.RouterGroup, admin *gin.RouterGroup, h *LedgerHandler) {
	rg.GET("/transactions", h.ListTransactions)
	rg.GET("/summary", h.FundsSummary)
	admin.POST("/transactions", h.PostTransaction)
}

// PostTransaction godoc
// @Summary Post a ledger transaction
// @Description Validates the approval matrix and appends a transaction, updating category actuals
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input or validation error"
// @Failure 422 {object} map[string]string "Authorization matrix not satisfied"
// @Security BearerAuth
// @Router /transactions [post]
func (h *LedgerHandler) PostTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.PostTransaction(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to post transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// ListTransactions godoc
// @Summary List all ledger transactions
// @Tags ledger
// @Produce  json
// @Success 200 {array} dto.TransactionResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	txns, err := h.ledgerService.ListTransactions(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// FundsSummary godoc
// @Summary Current fund position
// @Description Current balance, the 15% emergency reserve and available funds
// @Tags ledger
// @Produce  json
// @Success 200 {object} dto.FundsSummaryResponse
// @Security BearerAuth
// @Router /summary [get]
func (h *LedgerHandler) FundsSummary(c *gin.Context) {
	ctx := c.Request.Context()
	balance, err := h.ledgerService.CurrentBalance(ctx)
	if err != nil {
		respondWithError(c, err, "Failed to compute balance")
		return
	}
	reserve, err := h.ledgerService.EmergencyReserve(ctx)
	if err != nil {
		respondWithError(c, err, "Failed to compute emergency reserve")
		return
	}
	available, err := h.ledgerService.AvailableFunds(ctx)
	if err != nil {
		respondWithError(c, err, "Failed to compute available funds")
		return
	}

	c.JSON(http.StatusOK, dto.FundsSummaryResponse{
		CurrentBalance:          balance,
		EmergencyReserve:        reserve,
		AvailableFunds:          available,
		CurrentBalanceDisplay:   utils.FormatKD(balance),
		EmergencyReserveDisplay: utils.FormatKD(reserve),
		AvailableFundsDisplay:   utils.FormatKD(available),
	})
}
