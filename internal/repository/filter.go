package repository

import (
	"cause-platform/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryAll is the wildcard category value; it filters nothing.
const CategoryAll = "all"

// CauseFilter describes the selection criteria shared by ListCauses and
// CountCauses. Limit and Offset are pagination parameters and only apply
// to listing.
type CauseFilter struct {
	Category string
	Status   models.CauseStatus
	UserID   *uuid.UUID
	Limit    int
	Offset   int
}

// EffectiveStatus resolves the status clause the filter should apply.
// An explicit status always wins. An owner-scoped query (UserID set)
// applies no status clause so the owner's dashboard shows every status.
// Otherwise the listing is public and restricted to approved causes,
// which keeps pending and rejected causes out of public views.
func (f CauseFilter) EffectiveStatus() models.CauseStatus {
	if f.Status != "" {
		return f.Status
	}
	if f.UserID != nil {
		return ""
	}
	return models.CauseStatusApproved
}

// Apply adds the filter's WHERE clauses to the query. Pagination is not
// applied here; ListCauses handles it and CountCauses ignores it.
func (f CauseFilter) Apply(query *gorm.DB) *gorm.DB {
	if f.Category != "" && f.Category != CategoryAll {
		query = query.Where("category = ?", f.Category)
	}
	if f.UserID != nil {
		query = query.Where("user_id = ?", *f.UserID)
	}
	if status := f.EffectiveStatus(); status != "" {
		query = query.Where("status = ?", status)
	}
	return query
}
