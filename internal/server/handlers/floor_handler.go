package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mukeshvesalapu/MediShield-DR/internal/domain/models"
	"github.com/mukeshvesalapu/MediShield-DR/internal/service/floors"
)

// FloorHandler serves the floor listing and update endpoints.
type FloorHandler struct {
	svc    *floors.Service
	logger *zap.Logger
}

// NewFloorHandler constructs the HTTP handler adapter.
func NewFloorHandler(svc *floors.Service, logger *zap.Logger) *FloorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FloorHandler{svc: svc, logger: logger}
}

// List returns every floor record, seeding the demo wards on first use.
func (h *FloorHandler) List(c *gin.Context) {
	floorList, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing floors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch floor data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(floorList), "floors": floorList})
}

// Update applies a partial update to one floor and returns the new record.
func (h *FloorHandler) Update(c *gin.Context) {
	floorNumber, err := strconv.Atoi(c.Param("floorNumber"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid floor number"})
		return
	}

	var update models.FloorUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	floor, err := h.svc.ApplyPartialUpdate(c.Request.Context(), floorNumber, update)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Floor updated successfully", "floor": floor})
	case errors.Is(err, models.ErrFloorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Floor not found"})
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	default:
		h.logger.Error("failed updating floor", zap.Int("floor", floorNumber), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update floor data"})
	}
}
