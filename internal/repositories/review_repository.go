package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"royalnano/internal/models/db_models"
)

// ReviewFilter narrows admin listings. Zero values mean "no constraint".
type ReviewFilter struct {
	Status db_models.ReviewStatus
	Query  string
	From   *time.Time
	To     *time.Time
}

type ReviewRepositoryInterface interface {
	CreateReview(ctx context.Context, review *db_models.Review) error
	FindReviews(ctx context.Context, filter ReviewFilter, sortAsc bool, page, limit int) ([]db_models.Review, int64, error)
	UpdateReviewStatus(ctx context.Context, id uuid.UUID, status db_models.ReviewStatus) (*db_models.Review, error)
	DeleteReview(ctx context.Context, id uuid.UUID) error
	BulkUpdateStatus(ctx context.Context, ids []uuid.UUID, status db_models.ReviewStatus) (int64, error)
	BulkDeleteReviews(ctx context.Context, ids []uuid.UUID) (int64, error)
	CountByStatus(ctx context.Context, status db_models.ReviewStatus) (int64, error)
	CountReviews(ctx context.Context) (int64, error)
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) CreateReview(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepository) FindReviews(ctx context.Context, filter ReviewFilter, sortAsc bool, page, limit int) ([]db_models.Review, int64, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Review{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("name ILIKE ? OR text ILIKE ?", pattern, pattern)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	if sortAsc {
		order = "created_at ASC"
	}

	var reviews []db_models.Review
	err := query.
		Order(order).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reviews).Error
	return reviews, total, err
}

func (r *ReviewRepository) UpdateReviewStatus(ctx context.Context, id uuid.UUID, status db_models.ReviewStatus) (*db_models.Review, error) {
	result := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var review db_models.Review
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) DeleteReview(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&db_models.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReviewRepository) BulkUpdateStatus(ctx context.Context, ids []uuid.UUID, status db_models.ReviewStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Where("id IN ?", ids).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *ReviewRepository) BulkDeleteReviews(ctx context.Context, ids []uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&db_models.Review{}, "id IN ?", ids)
	return result.RowsAffected, result.Error
}

func (r *ReviewRepository) CountByStatus(ctx context.Context, status db_models.ReviewStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *ReviewRepository) CountReviews(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Review{}).Count(&count).Error
	return count, err
}
