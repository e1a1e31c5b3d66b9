package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mukeshvesalapu/MediShield-DR/internal/service/insight"
)

// InsightHandler serves the AI system analysis endpoint.
type InsightHandler struct {
	svc    *insight.Service
	logger *zap.Logger
}

// NewInsightHandler constructs the HTTP handler adapter.
func NewInsightHandler(svc *insight.Service, logger *zap.Logger) *InsightHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InsightHandler{svc: svc, logger: logger}
}

// Analyze returns the risk analysis report. Enrichment failures never reach
// the caller; only store read failures surface as errors.
func (h *InsightHandler) Analyze(c *gin.Context) {
	report, err := h.svc.Analyze(c.Request.Context())
	if err != nil {
		h.logger.Error("system analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to complete AI System Analysis"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "analysis": report})
}
