package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aymanouf/committee-finance/internal/middleware"
)

// Snapshotter exports and restores the full application state as a JSON
// document.
type Snapshotter interface {
	ExportSnapshot() ([]byte, error)
	ImportSnapshot(data []byte) error
}

// SnapshotHandler handles state export and restore.
type SnapshotHandler struct {
	store Snapshotter
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(store Snapshotter) *SnapshotHandler {
	return &SnapshotHandler{store: store}
}

// RegisterSnapshotRoutes registers snapshot routes. Both are admin-only.
func RegisterSnapshotRoutes(admin *gin.RouterGroup, h *SnapshotHandler) {
	admin.GET("/snapshot", h.Export)
	admin.PUT("/snapshot", h.Import)
}

// Export godoc
// @Summary Export full application state
// @Tags snapshot
// @Produce  json
// @Success 200 {object} object "Snapshot document"
// @Security BearerAuth
// @Router /snapshot [get]
func (h *SnapshotHandler) Export(c *gin.Context) {
	data, err := h.store.ExportSnapshot()
	if err != nil {
		respondWithError(c, err, "Failed to export snapshot")
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// Import godoc
// @Summary Restore application state from a snapshot
// @Description Replaces only the collections present in the document; absent
// @Description top-level keys leave the corresponding state untouched. A
// @Description malformed document is rejected without changing any state.
// @Tags snapshot
// @Accept  json
// @Produce  json
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Malformed snapshot"
// @Security BearerAuth
// @Router /snapshot [put]
func (h *SnapshotHandler) Import(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		logger.Warn("Failed to read snapshot body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	if err := h.store.ImportSnapshot(data); err != nil {
		respondWithError(c, err, "Failed to import snapshot")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Snapshot restored"})
}
