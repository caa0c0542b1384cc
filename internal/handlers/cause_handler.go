package handlers

import (
	"net/http"
	"strconv"

	"cause-platform/internal/auth"
	"cause-platform/internal/models"
	"cause-platform/internal/repository"
	"cause-platform/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CauseHandler struct {
	causeService *services.CauseService
}

func NewCauseHandler(causeService *services.CauseService) *CauseHandler {
	return &CauseHandler{causeService: causeService}
}

// filterFromQuery builds a CauseFilter from list/count query parameters.
// Public callers hit the default-visibility rule inside the filter when
// they give neither a status nor a userId.
func filterFromQuery(c *gin.Context) (repository.CauseFilter, error) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := repository.CauseFilter{
		Category: c.Query("category"),
		Status:   models.CauseStatus(c.Query("status")),
		Limit:    limit,
		Offset:   offset,
	}

	if userID := c.Query("userId"); userID != "" {
		id, err := uuid.Parse(userID)
		if err != nil {
			return filter, err
		}
		filter.UserID = &id
	}

	return filter, nil
}

// GetCauses returns causes matching the query filters, newest first
// GET /api/causes
func (h *CauseHandler) GetCauses(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
		return
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

// CountCauses returns the number of causes matching the query filters
// GET /api/causes/count
func (h *CauseHandler) CountCauses(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
		return
	}

	count, err := h.causeService.CountCauses(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count causes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   count,
	})
}

// GetCause returns a single cause with its owner's display fields
// GET /api/causes/:id
func (h *CauseHandler) GetCause(c *gin.Context) {
	causeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cause id"})
		return
	}

	cause, err := h.causeService.GetCause(c.Request.Context(), causeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cause"})
		return
	}
	if cause == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cause not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    cause,
	})
}

// CreateCause creates a new cause owned by the caller
// POST /api/causes
func (h *CauseHandler) CreateCause(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateCauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Goal.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Goal must be non-negative"})
		return
	}

	cause, err := h.causeService.CreateCause(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cause"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    cause,
	})
}

// UpdateCause applies a partial update to a cause owned by the caller
// PUT /api/causes/:id
func (h *CauseHandler) UpdateCause(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	causeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cause id"})
		return
	}

	var req models.UpdateCauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Goal != nil && req.Goal.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Goal must be non-negative"})
		return
	}

	cause, err := h.causeService.UpdateCause(c.Request.Context(), causeID, userID, &req)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cause not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cause"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    cause,
	})
}

// GetMyCauses returns the caller's causes regardless of status
// GET /api/causes/mine
func (h *CauseHandler) GetMyCauses(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := repository.CauseFilter{
		Category: c.Query("category"),
		Status:   models.CauseStatus(c.Query("status")),
		UserID:   &userID,
		Limit:    limit,
		Offset:   offset,
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
