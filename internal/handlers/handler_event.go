package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/aymanouf/committee-finance/internal/core/ports/services"
	"github.com/aymanouf/committee-finance/internal/dto"
	"github.com/aymanouf/committee-finance/internal/middleware"
)

// EventHandler handles HTTP requests for events and their sub-ledgers.
type EventHandler struct {
	eventService portssvc.EventSvcFacade
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService portssvc.EventSvcFacade) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// RegisterEventRoutes registers event routes. Mutations are admin-only.
func RegisterEventRoutes(rg *gin.RouterGroup, admin *gin.RouterGroup, h *EventHandler) {
	rg.GET("/events", h.ListEvents)
	rg.GET("/events/:eventID", h.GetEvent)
	rg.GET("/events/:eventID/payments", h.ListPayments)
	rg.GET("/events/:eventID/expenses", h.ListExpenses)

	admin.POST("/events", h.CreateEvent)
	admin.PATCH("/events/:eventID/status", h.UpdateStatus)
	admin.POST("/events/:eventID/payments", h.AddPayment)
	admin.POST("/events/:eventID/expenses", h.AddExpense)
}

// CreateEvent godoc
// @Summary Create an event
// @Tags events
// @Accept  json
// @Produce  json
// @Param   event body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to create event")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

// ListEvents godoc
// @Summary List all events
// @Tags events
// @Produce  json
// @Success 200 {array} dto.EventResponse
// @Security BearerAuth
// @Router /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list events")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /events/{eventID} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.eventService.GetEventByID(c.Request.Context(), c.Param("eventID"))
	if err != nil {
		respondWithError(c, err, "Failed to get event")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// UpdateStatus godoc
// @Summary Update an event's status
// @Tags events
// @Accept  json
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   status body dto.UpdateEventStatusRequest true "New status"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /events/{eventID}/status [patch]
func (h *EventHandler) UpdateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateEventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	event, err := h.eventService.UpdateStatus(c.Request.Context(), c.Param("eventID"), req.Status)
	if err != nil {
		respondWithError(c, err, "Failed to update event status")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// AddPayment godoc
// @Summary Record a participant payment
// @Description Dual-posts the payment into the event totals and the ledger ("Trip Payments")
// @Tags events
// @Accept  json
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   payment body dto.CreateParticipantPaymentRequest true "Payment details"
// @Success 201 {object} dto.ParticipantPaymentResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 422 {object} map[string]string "Authorization matrix not satisfied"
// @Security BearerAuth
// @Router /events/{eventID}/payments [post]
func (h *EventHandler) AddPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateParticipantPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.eventService.AddParticipantPayment(c.Request.Context(), c.Param("eventID"), req)
	if err != nil {
		respondWithError(c, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToParticipantPaymentResponse(payment))
}

// AddExpense godoc
// @Summary Record an event expense
// @Description Dual-posts the expense into the event totals and the ledger under the given category
// @Tags events
// @Accept  json
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   expense body dto.CreateEventExpenseRequest true "Expense details"
// @Success 201 {object} dto.EventExpenseResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 422 {object} map[string]string "Authorization matrix not satisfied"
// @Security BearerAuth
// @Router /events/{eventID}/expenses [post]
func (h *EventHandler) AddExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEventExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.eventService.AddExpense(c.Request.Context(), c.Param("eventID"), req)
	if err != nil {
		respondWithError(c, err, "Failed to record expense")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEventExpenseResponse(expense))
}

// ListPayments godoc
// @Summary List an event's participant payments
// @Tags events
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {array} dto.ParticipantPaymentResponse
// @Security BearerAuth
// @Router /events/{eventID}/payments [get]
func (h *EventHandler) ListPayments(c *gin.Context) {
	payments, err := h.eventService.PaymentsFor(c.Request.Context(), c.Param("eventID"))
	if err != nil {
		respondWithError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToParticipantPaymentResponses(payments))
}

// ListExpenses godoc
// @Summary List an event's expense records
// @Tags events
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {array} dto.EventExpenseResponse
// @Security BearerAuth
// @Router /events/{eventID}/expenses [get]
func (h *EventHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.eventService.ExpensesFor(c.Request.Context(), c.Param("eventID"))
	if err != nil {
		respondWithError(c, err, "Failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventExpenseResponses(expenses))
}
