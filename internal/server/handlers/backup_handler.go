package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mukeshvesalapu/MediShield-DR/internal/service/backup"
)

const maxListLimit = 15

// BackupHandler serves manual capture and history listing.
type BackupHandler struct {
	svc    *backup.Service
	logger *zap.Logger
}

// NewBackupHandler constructs the HTTP handler adapter.
func NewBackupHandler(svc *backup.Service, logger *zap.Logger) *BackupHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BackupHandler{svc: svc, logger: logger}
}

// Run triggers a manual capture attributed to the authenticated operator.
func (h *BackupHandler) Run(c *gin.Context) {
	triggeredBy := Identity(c)

	snapshot, err := h.svc.Capture(c.Request.Context(), triggeredBy)
	if err != nil {
		h.logger.Error("manual backup failed", zap.String("triggered_by", triggeredBy), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Backup failed to create"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Backup created successfully", "data": snapshot})
}

// List returns the most recent snapshots, capped at the history window.
func (h *BackupHandler) List(c *gin.Context) {
	limit := int64(maxListLimit)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid limit"})
			return
		}
		if parsed < limit {
			limit = parsed
		}
	}

	snapshots, err := h.svc.List(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("failed listing backups", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch backups"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(snapshots), "backups": snapshots})
}
