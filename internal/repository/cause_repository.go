package repository

import (
	"context"
	"fmt"
	"time"

	"cause-platform/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetCause retrieves a cause by ID joined with the owner's profile and
// account records. Returns (nil, nil) when no cause matches; absence is
// not an error.
func (r *Repository) GetCause(ctx context.Context, causeID uuid.UUID) (*models.CauseWithUser, error) {
	var cause models.CauseWithUser
	err := r.db.WithContext(ctx).
		Table("causes").
		Select("causes.*, COALESCE(profiles.display_name, 'Anonymous') AS user_name, COALESCE(users.email, '') AS user_email").
		Joins("LEFT JOIN profiles ON profiles.user_id = causes.user_id").
		Joins("LEFT JOIN users ON users.id = causes.user_id").
		Where("causes.id = ?", causeID).
		Take(&cause).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cause, nil
}

// CreateCause persists a new cause owned by userID. The stored status is
// always pending regardless of any status the caller supplied.
func (r *Repository) CreateCause(ctx context.Context, userID uuid.UUID, req *models.CreateCauseRequest) (*models.Cause, error) {
	cause := models.Cause{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Goal:        req.Goal,
		Status:      models.CauseStatusPending,
	}

	if err := r.db.WithContext(ctx).Create(&cause).Error; err != nil {
		return nil, err
	}
	return &cause, nil
}

// UpdateCause applies the non-nil fields of req to the cause matching both
// causeID and userID and stamps a new update timestamp. When the ID exists
// but belongs to a different user, zero rows match and
// gorm.ErrRecordNotFound is returned.
func (r *Repository) UpdateCause(ctx context.Context, causeID, userID uuid.UUID, req *models.UpdateCauseRequest) (*models.Cause, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Goal != nil {
		updates["goal"] = *req.Goal
	}

	result := r.db.WithContext(ctx).
		Model(&models.Cause{}).
		Where("id = ? AND user_id = ?", causeID, userID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var cause models.Cause
	if err := r.db.WithContext(ctx).Where("id = ?", causeID).First(&cause).Error; err != nil {
		return nil, err
	}
	return &cause, nil
}

// ListCauses returns causes matching the filter, newest first.
func (r *Repository) ListCauses(ctx context.Context, filter CauseFilter) ([]models.Cause, error) {
	var causes []models.Cause

	query := filter.Apply(r.db.WithContext(ctx).Model(&models.Cause{})).
		Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	if err := query.Find(&causes).Error; err != nil {
		return nil, err
	}
	return causes, nil
}

// CountCauses counts causes matching the filter. Pagination parameters
// are ignored.
func (r *Repository) CountCauses(ctx context.Context, filter CauseFilter) (int64, error) {
	var count int64
	err := filter.Apply(r.db.WithContext(ctx).Model(&models.Cause{})).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateCauseStatus sets a cause's moderation outcome. The rejection
// reason is stored only when the new status is rejected and is cleared on
// approval. Ownership is not checked; callers are expected to have been
// authorized as moderators upstream.
func (r *Repository) UpdateCauseStatus(ctx context.Context, causeID uuid.UUID, status models.CauseStatus, rejectionReason *string) (*models.Cause, error) {
	if status != models.CauseStatusApproved && status != models.CauseStatusRejected {
		return nil, fmt.Errorf("invalid moderation status: %s", status)
	}

	updates := map[string]interface{}{
		"status":           status,
		"updated_at":       time.Now(),
		"rejection_reason": nil,
	}
	if status == models.CauseStatusRejected && rejectionReason != nil {
		updates["rejection_reason"] = *rejectionReason
	}

	result := r.db.WithContext(ctx).
		Model(&models.Cause{}).
		Where("id = ?", causeID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var cause models.Cause
	if err := r.db.WithContext(ctx).Where("id = ?", causeID).First(&cause).Error; err != nil {
		return nil, err
	}
	return &cause, nil
}
