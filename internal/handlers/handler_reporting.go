package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/aymanouf/committee-finance/internal/core/ports/services"
	"github.com/aymanouf/committee-finance/internal/dto"
)

// ReportingHandler handles HTTP requests for derived reports.
type ReportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// NewReportingHandler creates a new ReportingHandler.
func NewReportingHandler(reportingService portssvc.ReportingSvcFacade) *ReportingHandler {
	return &ReportingHandler{reportingService: reportingService}
}

// RegisterReportingRoutes registers reporting routes. Reports are read-only
// and available to every authenticated member.
func RegisterReportingRoutes(rg *gin.RouterGroup, h *ReportingHandler) {
	rg.GET("/reports/monthly", h.MonthlyReport)
	rg.GET("/reports/events", h.AllEventsReport)
	rg.GET("/reports/events/:eventID", h.EventReport)
}

// MonthlyReport godoc
// @Summary Monthly financial summary
// @Tags reports
// @Produce  json
// @Param   month query int true "Month (1-12)"
// @Param   year query int true "Year"
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 400 {object} map[string]string "Invalid month or year"
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *ReportingHandler) MonthlyReport(c *gin.Context) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month parameter"})
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year parameter"})
		return
	}

	report, err := h.reportingService.MonthlyReport(c.Request.Context(), month, year)
	if err != nil {
		respondWithError(c, err, "Failed to build monthly report")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlyReportResponse(report))
}

// EventReport godoc
// @Summary Single-event financial report
// @Tags reports
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {object} dto.EventReportResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /reports/events/{eventID} [get]
func (h *ReportingHandler) EventReport(c *gin.Context) {
	report, err := h.reportingService.EventReport(c.Request.Context(), c.Param("eventID"))
	if err != nil {
		respondWithError(c, err, "Failed to build event report")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventReportResponse(report))
}

// AllEventsReport godoc
// @Summary Cross-event financial report
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.AllEventsReportResponse
// @Failure 404 {object} map[string]string "No events recorded"
// @Security BearerAuth
// @Router /reports/events [get]
func (h *ReportingHandler) AllEventsReport(c *gin.Context) {
	report, err := h.reportingService.AllEventsReport(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to build events report")
		return
	}
	c.JSON(http.StatusOK, dto.ToAllEventsReportResponse(report))
}
