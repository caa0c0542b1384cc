package services

import (
	"context"
	"log"

	"cause-platform/internal/models"
	"cause-platform/internal/repository"
	"cause-platform/internal/revalidate"

	"github.com/google/uuid"
)

// CauseService wraps the cause repository with failure logging and
// staleness signals toward the frontend cache. Store failures are logged
// with the originating operation and re-raised unchanged; the only case
// handled locally is the absent-value result of GetCause.
type CauseService struct {
	repo     *repository.Repository
	signaler revalidate.Signaler
}

func NewCauseService(repo *repository.Repository, signaler revalidate.Signaler) *CauseService {
	return &CauseService{
		repo:     repo,
		signaler: signaler,
	}
}

// GetCause returns a cause with its owner's display fields, or (nil, nil)
// when no cause matches.
func (s *CauseService) GetCause(ctx context.Context, causeID uuid.UUID) (*models.CauseWithUser, error) {
	cause, err := s.repo.GetCause(ctx, causeID)
	if err != nil {
		log.Printf("[CauseService] GetCause failed: %v", err)
		return nil, err
	}
	return cause, nil
}

// CreateCause creates a pending cause for userID and marks the public
// listing stale.
func (s *CauseService) CreateCause(ctx context.Context, userID uuid.UUID, req *models.CreateCauseRequest) (*models.Cause, error) {
	cause, err := s.repo.CreateCause(ctx, userID, req)
	if err != nil {
		log.Printf("[CauseService] CreateCause failed: %v", err)
		return nil, err
	}

	s.signaler.Signal(ctx, "/causes")
	return cause, nil
}

// UpdateCause applies a partial update to a cause owned by userID and
// marks the detail and listing views stale.
func (s *CauseService) UpdateCause(ctx context.Context, causeID, userID uuid.UUID, req *models.UpdateCauseRequest) (*models.Cause, error) {
	cause, err := s.repo.UpdateCause(ctx, causeID, userID, req)
	if err != nil {
		log.Printf("[CauseService] UpdateCause failed: %v", err)
		return nil, err
	}

	s.signaler.Signal(ctx, "/causes/"+causeID.String())
	s.signaler.Signal(ctx, "/causes")
	return cause, nil
}

// ListCauses returns causes matching the filter, newest first.
func (s *CauseService) ListCauses(ctx context.Context, filter repository.CauseFilter) ([]models.Cause, error) {
	causes, err := s.repo.ListCauses(ctx, filter)
	if err != nil {
		log.Printf("[CauseService] ListCauses failed: %v", err)
		return nil, err
	}
	return causes, nil
}

// CountCauses counts causes matching the filter.
func (s *CauseService) CountCauses(ctx context.Context, filter repository.CauseFilter) (int64, error) {
	count, err := s.repo.CountCauses(ctx, filter)
	if err != nil {
		log.Printf("[CauseService] CountCauses failed: %v", err)
		return 0, err
	}
	return count, nil
}

// UpdateCauseStatus records a moderation outcome and marks the moderation
// view stale. Authorization is the caller's responsibility.
func (s *CauseService) UpdateCauseStatus(ctx context.Context, causeID uuid.UUID, status models.CauseStatus, rejectionReason *string) (*models.Cause, error) {
	cause, err := s.repo.UpdateCauseStatus(ctx, causeID, status, rejectionReason)
	if err != nil {
		log.Printf("[CauseService] UpdateCauseStatus failed: %v", err)
		return nil, err
	}

	s.signaler.Signal(ctx, "/admin/causes")
	return cause, nil
}
