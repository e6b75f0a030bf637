package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"royalnano/internal/models/db_models"
)

type ContactRepositoryInterface interface {
	CreateContact(ctx context.Context, contact *db_models.Contact) error
	ListContacts(ctx context.Context, page, limit int) ([]db_models.Contact, int64, error)
	CountContacts(ctx context.Context) (int64, error)
	CountContactsSince(ctx context.Context, since time.Time) (int64, error)
}

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) CreateContact(ctx context.Context, contact *db_models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *ContactRepository) ListContacts(ctx context.Context, page, limit int) ([]db_models.Contact, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&db_models.Contact{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contacts []db_models.Contact
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&contacts).Error
	return contacts, total, err
}

func (r *ContactRepository) CountContacts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Contact{}).Count(&count).Error
	return count, err
}

func (r *ContactRepository) CountContactsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Contact{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}
