package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CauseStatus string

const (
	CauseStatusPending  CauseStatus = "pending"
	CauseStatusApproved CauseStatus = "approved"
	CauseStatusRejected CauseStatus = "rejected"
)

// Cause represents a fundraising campaign with a moderation lifecycle
type Cause struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Title           string          `gorm:"size:255;not null" json:"title"`
	Description     string          `gorm:"type:text" json:"description"`
	Category        string          `gorm:"size:50;not null;index" json:"category"`
	Goal            decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"goal"`
	Status          CauseStatus     `gorm:"size:50;not null;default:pending;index" json:"status"`
	RejectionReason *string         `gorm:"type:text" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for Cause model
func (Cause) TableName() string {
	return "causes"
}

// CauseWithUser is a read-time projection of a cause joined with its
// owner's display name and email. It is never persisted.
type CauseWithUser struct {
	Cause
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

// CreateCauseRequest is the payload for creating a cause.
// Goal accepts both a JSON number and a numeric string.
// Status is accepted for wire compatibility but always ignored:
// new causes are persisted as pending.
type CreateCauseRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" binding:"required"`
	Goal        decimal.Decimal `json:"goal"`
	Status      string          `json:"status"`
}

// UpdateCauseRequest is a partial update payload. Only non-nil fields
// are applied to the stored record.
type UpdateCauseRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Goal        *decimal.Decimal `json:"goal"`
}

// UpdateCauseStatusRequest is the moderation payload.
type UpdateCauseStatusRequest struct {
	Status          CauseStatus `json:"status" binding:"required"`
	RejectionReason *string     `json:"rejection_reason"`
}
