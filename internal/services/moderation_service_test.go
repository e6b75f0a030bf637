package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"royalnano/internal/models/db_models"
	"royalnano/pkg/utils"
)

func TestSetStatusUpdatesRecord(t *testing.T) {
	id := uuid.New()
	repo := new(mockReviewRepository)
	repo.On("UpdateReviewStatus", mock.Anything, id, db_models.ReviewStatusApproved).
		Return(&db_models.Review{ID: id, Status: db_models.ReviewStatusApproved}, nil)

	service := NewModerationService(repo)

	review, err := service.SetStatus(context.Background(), id.String(), "approved")
	require.NoError(t, err)
	assert.Equal(t, db_models.ReviewStatusApproved, review.Status)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	repo := new(mockReviewRepository)
	service := NewModerationService(repo)

	_, err := service.SetStatus(context.Background(), uuid.New().String(), "archived")
	assert.ErrorIs(t, err, utils.ErrInvalidStatus)
	repo.AssertNotCalled(t, "UpdateReviewStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetStatusNotFound(t *testing.T) {
	repo := new(mockReviewRepository)
	repo.On("UpdateReviewStatus", mock.Anything, mock.Anything, db_models.ReviewStatusRejected).
		Return(nil, gorm.ErrRecordNotFound)

	service := NewModerationService(repo)

	_, err := service.SetStatus(context.Background(), uuid.New().String(), "rejected")
	assert.ErrorIs(t, err, utils.ErrReviewNotFound)

	// an unparseable id is indistinguishable from a missing record
	_, err = service.SetStatus(context.Background(), "not-a-uuid", "rejected")
	assert.ErrorIs(t, err, utils.ErrReviewNotFound)
}

func TestDeleteReviewNotFound(t *testing.T) {
	repo := new(mockReviewRepository)
	repo.On("DeleteReview", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound)

	service := NewModerationService(repo)

	err := service.DeleteReview(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrReviewNotFound)
}

func TestBulkSetStatusSkipsUnmatchedIDs(t *testing.T) {
	id1, id2 := uuid.New(), uuid.New()
	repo := new(mockReviewRepository)
	// the store reports two rows touched even though three ids were sent
	repo.On("BulkUpdateStatus", mock.Anything, mock.MatchedBy(func(ids []uuid.UUID) bool {
		return len(ids) == 3
	}), db_models.ReviewStatusApproved).Return(int64(2), nil)

	service := NewModerationService(repo)

	result, err := service.BulkSetStatus(context.Background(),
		[]string{id1.String(), id2.String(), uuid.New().String()}, "approved")
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Matched)
	assert.Equal(t, int64(2), result.Modified)
}

func TestBulkSetStatusRequiresIDs(t *testing.T) {
	service := NewModerationService(new(mockReviewRepository))

	_, err := service.BulkSetStatus(context.Background(), nil, "approved")
	assert.ErrorIs(t, err, utils.ErrEmptyIDs)

	_, err = service.BulkDelete(context.Background(), []string{})
	assert.ErrorIs(t, err, utils.ErrEmptyIDs)
}

func TestBulkSetStatusRejectsUnknownStatus(t *testing.T) {
	service := NewModerationService(new(mockReviewRepository))

	_, err := service.BulkSetStatus(context.Background(), []string{uuid.New().String()}, "published")
	assert.ErrorIs(t, err, utils.ErrInvalidStatus)
}

func TestBulkDeleteDropsUnparseableIDs(t *testing.T) {
	id := uuid.New()
	repo := new(mockReviewRepository)
	repo.On("BulkDeleteReviews", mock.Anything, []uuid.UUID{id}).Return(int64(1), nil)

	service := NewModerationService(repo)

	result, err := service.BulkDelete(context.Background(), []string{id.String(), "garbage"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Matched)
	repo.AssertExpectations(t)
}
