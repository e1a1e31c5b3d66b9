package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mukeshvesalapu/MediShield-DR/internal/domain/models"
	"github.com/mukeshvesalapu/MediShield-DR/internal/service/restore"
)

// RestoreHandler serves the restore-latest endpoint.
type RestoreHandler struct {
	svc    *restore.Service
	logger *zap.Logger
}

// NewRestoreHandler constructs the HTTP handler adapter.
func NewRestoreHandler(svc *restore.Service, logger *zap.Logger) *RestoreHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RestoreHandler{svc: svc, logger: logger}
}

// Latest resolves the most recent snapshot into a restore report.
func (h *RestoreHandler) Latest(c *gin.Context) {
	result, err := h.svc.RestoreLatest(c.Request.Context())
	if err != nil {
		if errors.Is(err, models.ErrNoSnapshotAvailable) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No backup snapshots found to restore"})
			return
		}
		h.logger.Error("restore failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "CRITICAL ERROR: Failed to restore system"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Hospital system fully restored",
		"restoredFrom": result.SnapshotID,
		"restoredAt":   result.RestoredAt,
		"rto":          result.RTO,
		"data":         result.Data,
	})
}
