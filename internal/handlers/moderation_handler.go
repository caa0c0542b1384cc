package handlers

import (
	"net/http"
	"strconv"

	"cause-platform/internal/models"
	"cause-platform/internal/repository"
	"cause-platform/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ModerationHandler exposes the moderator-only cause endpoints. Callers
// reach it through the moderator middleware; no ownership checks happen
// here.
type ModerationHandler struct {
	causeService *services.CauseService
}

func NewModerationHandler(causeService *services.CauseService) *ModerationHandler {
	return &ModerationHandler{causeService: causeService}
}

// GetCausesForModeration returns causes by moderation status, pending by
// default
// GET /api/admin/causes
func (h *ModerationHandler) GetCausesForModeration(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := repository.CauseFilter{
		Status: models.CauseStatus(c.DefaultQuery("status", string(models.CauseStatusPending))),
		Limit:  limit,
		Offset: offset,
	}

	causes, err := h.causeService.ListCauses(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch causes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    causes,
		"count":   len(causes),
	})
}

// UpdateCauseStatus approves or rejects a cause
// PUT /api/admin/causes/:id/status
func (h *ModerationHandler) UpdateCauseStatus(c *gin.Context) {
	causeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cause id"})
		return
	}

	var req models.UpdateCauseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Status != models.CauseStatusApproved && req.Status != models.CauseStatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be approved or rejected"})
		return
	}

	cause, err := h.causeService.UpdateCauseStatus(c.Request.Context(), causeID, req.Status, req.RejectionReason)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cause not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cause status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    cause,
	})
}
