package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. A user starts as RoleUser and may be promoted to RoleCoach;
// the promotion is one-way.
const (
	RoleUser  = "user"
	RoleCoach = "coach"
)

// User represents a registered member of the marketplace.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:50;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:320;not null"`
	Password  string    `json:"-" gorm:"size:72;not null"` // bcrypt digest, never exposed
	Role      string    `json:"role" gorm:"size:20;not null;default:'user'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
