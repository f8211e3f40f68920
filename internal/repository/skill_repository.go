package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coachhub/internal/model"
)

// SkillRepository defines skill catalog persistence operations.
type SkillRepository interface {
	List(ctx context.Context) ([]model.Skill, error)
	FindByName(ctx context.Context, name string) (*model.Skill, error)
	Create(ctx context.Context, skill *model.Skill) error
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository builds a GORM-backed repository.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) List(ctx context.Context) ([]model.Skill, error) {
	var skills []model.Skill
	if err := r.db.WithContext(ctx).Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *skillRepository) FindByName(ctx context.Context, name string) (*model.Skill, error) {
	var skill model.Skill
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) Create(ctx context.Context, skill *model.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

// DeleteByID removes the skill and reports how many rows were deleted.
func (r *skillRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Skill{})
	return res.RowsAffected, res.Error
}
