package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Contact struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName        string    `gorm:"size:120;not null" json:"full_name"`
	PhoneNumber     string    `gorm:"size:30;not null" json:"phone_number"`
	CarType         string    `gorm:"size:60;not null" json:"car_type"`
	CarModel        string    `gorm:"size:60;not null" json:"car_model"`
	AdditionalNotes string    `gorm:"type:text" json:"additional_notes,omitempty"`
	UTMSource       string    `gorm:"size:100" json:"utm_source,omitempty"`
	UTMMedium       string    `gorm:"size:100" json:"utm_medium,omitempty"`
	UTMCampaign     string    `gorm:"size:100" json:"utm_campaign,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
