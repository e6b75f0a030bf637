package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"royalnano/internal/models/db_models"
	"royalnano/internal/models/response_models"
	"royalnano/internal/repositories"
	"royalnano/pkg/utils"
)

type ModerationServiceInterface interface {
	SetStatus(ctx context.Context, id string, status string) (*db_models.Review, error)
	DeleteReview(ctx context.Context, id string) error
	BulkSetStatus(ctx context.Context, ids []string, status string) (*response_models.BulkResult, error)
	BulkDelete(ctx context.Context, ids []string) (*response_models.BulkResult, error)
}

type ModerationService struct {
	reviewRepo repositories.ReviewRepositoryInterface
}

func NewModerationService(reviewRepo repositories.ReviewRepositoryInterface) ModerationServiceInterface {
	return &ModerationService{reviewRepo: reviewRepo}
}

// SetStatus moves a review to any of the three statuses; there is no
// transition graph and re-applying the current status is a valid no-op.
func (s *ModerationService) SetStatus(ctx context.Context, id string, status string) (*db_models.Review, error) {
	newStatus := db_models.ReviewStatus(status)
	if !newStatus.Valid() {
		return nil, utils.ErrInvalidStatus
	}

	reviewID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrReviewNotFound
	}

	review, err := s.reviewRepo.UpdateReviewStatus(ctx, reviewID, newStatus)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return review, nil
}

func (s *ModerationService) DeleteReview(ctx context.Context, id string) error {
	reviewID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrReviewNotFound
	}

	err = s.reviewRepo.DeleteReview(ctx, reviewID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrReviewNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *ModerationService) BulkSetStatus(ctx context.Context, ids []string, status string) (*response_models.BulkResult, error) {
	newStatus := db_models.ReviewStatus(status)
	if !newStatus.Valid() {
		return nil, utils.ErrInvalidStatus
	}

	reviewIDs, err := parseBulkIDs(ids)
	if err != nil {
		return nil, err
	}

	affected, err := s.reviewRepo.BulkUpdateStatus(ctx, reviewIDs, newStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return &response_models.BulkResult{Matched: affected, Modified: affected}, nil
}

func (s *ModerationService) BulkDelete(ctx context.Context, ids []string) (*response_models.BulkResult, error) {
	reviewIDs, err := parseBulkIDs(ids)
	if err != nil {
		return nil, err
	}

	affected, err := s.reviewRepo.BulkDeleteReviews(ctx, reviewIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return &response_models.BulkResult{Matched: affected, Modified: affected}, nil
}

// parseBulkIDs rejects an empty id set and drops unparseable ids, mirroring
// the silent-skip handling of ids that match no record.
func parseBulkIDs(ids []string) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, utils.ErrEmptyIDs
	}

	parsed := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		reviewID, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		parsed = append(parsed, reviewID)
	}
	return parsed, nil
}
