package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Course is a bookable session offered by a coach for a single skill.
type Course struct {
	ID              uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID          uuid.UUID `json:"user_id" gorm:"type:char(36);index;not null"`
	SkillID         uuid.UUID `json:"skill_id" gorm:"type:char(36);index;not null"`
	Name            string    `json:"name" gorm:"size:100;not null"`
	Description     string    `json:"description" gorm:"type:text;not null"`
	StartAt         time.Time `json:"start_at" gorm:"not null"`
	EndAt           time.Time `json:"end_at" gorm:"not null"`
	MaxParticipants int       `json:"max_participants" gorm:"not null"`
	MeetingURL      string    `json:"meeting_url" gorm:"size:2048;not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
