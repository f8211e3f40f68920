package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Coach is the profile created when a user is promoted to the coach role.
// One profile per user.
type Coach struct {
	ID              uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID          uuid.UUID `json:"user_id" gorm:"type:char(36);uniqueIndex;not null"`
	ExperienceYears int       `json:"experience_years" gorm:"not null"`
	Description     string    `json:"description" gorm:"type:text;not null"`
	ProfileImageURL string    `json:"profile_image_url" gorm:"size:2048"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Coach) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
