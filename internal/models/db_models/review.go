package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

type Review struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string       `gorm:"size:100;not null" json:"name"`
	Text      string       `gorm:"type:text;not null" json:"text"`
	Rating    *float64     `gorm:"check:rating >= 1 AND rating <= 5" json:"rating,omitempty"`
	PhotoURL  string       `gorm:"size:500" json:"photo_url,omitempty"`
	Status    ReviewStatus `gorm:"size:16;not null;default:pending;index:idx_reviews_status_created,priority:1" json:"status"`
	CreatedIP string       `gorm:"size:64" json:"-"` // abuse investigation only, never exposed
	CreatedAt time.Time    `gorm:"autoCreateTime;index:idx_reviews_status_created,priority:2" json:"created_at"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = ReviewStatusPending
	}
	return nil
}
