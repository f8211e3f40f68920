package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coachhub/internal/model"
)

// CoachRepository defines coach profile persistence operations.
type CoachRepository interface {
	Create(ctx context.Context, coach *model.Coach) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Coach, error)
}

type coachRepository struct {
	db *gorm.DB
}

// NewCoachRepository builds a GORM-backed repository.
func NewCoachRepository(db *gorm.DB) CoachRepository {
	return &coachRepository{db: db}
}

func (r *coachRepository) Create(ctx context.Context, coach *model.Coach) error {
	return r.db.WithContext(ctx).Create(coach).Error
}

func (r *coachRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Coach, error) {
	var coach model.Coach
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&coach).Error; err != nil {
		return nil, err
	}
	return &coach, nil
}
