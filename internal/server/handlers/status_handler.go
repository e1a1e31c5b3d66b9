package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mukeshvesalapu/MediShield-DR/internal/service/status"
)

// StatusHandler serves the aggregate system status endpoint.
type StatusHandler struct {
	svc    *status.Service
	logger *zap.Logger
}

// NewStatusHandler constructs the HTTP handler adapter.
func NewStatusHandler(svc *status.Service, logger *zap.Logger) *StatusHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatusHandler{svc: svc, logger: logger}
}

// Get returns the current system health view.
func (h *StatusHandler) Get(c *gin.Context) {
	current, err := h.svc.Current(c.Request.Context())
	if err != nil {
		h.logger.Error("failed building status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve system status"})
		return
	}

	c.JSON(http.StatusOK, current)
}
