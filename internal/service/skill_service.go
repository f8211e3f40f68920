package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coachhub/internal/cache"
	"coachhub/internal/model"
	"coachhub/internal/repository"
)

const (
	catalogCacheTTL  = 5 * time.Minute
	skillsCacheKey   = "catalog:skills"
	packagesCacheKey = "catalog:credit_packages"
)

var (
	// ErrDuplicateRecord is returned when a catalog entry's name is taken.
	ErrDuplicateRecord = errors.New("duplicate record")
	// ErrRecordNotFound is returned when a delete targets a missing row.
	ErrRecordNotFound = errors.New("record not found")
)

// SkillService handles the skill catalog.
type SkillService interface {
	List(ctx context.Context) ([]model.Skill, error)
	Create(ctx context.Context, name string) (*model.Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type skillService struct {
	repo  repository.SkillRepository
	cache *cache.Client
}

// NewSkillService builds a SkillService with repository and cache.
func NewSkillService(repo repository.SkillRepository, cache *cache.Client) SkillService {
	return &skillService{repo: repo, cache: cache}
}

// List returns the skill catalog, served from cache when warm.
func (s *skillService) List(ctx context.Context) ([]model.Skill, error) {
	if data, err := s.cache.Get(ctx, skillsCacheKey); err == nil && data != nil {
		var skills []model.Skill
		if err := json.Unmarshal(data, &skills); err == nil {
			return skills, nil
		}
	}

	skills, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	if payload, err := json.Marshal(skills); err == nil {
		_ = s.cache.Set(ctx, skillsCacheKey, payload, catalogCacheTTL)
	}
	return skills, nil
}

// Create adds a skill, rejecting duplicate names.
func (s *skillService) Create(ctx context.Context, name string) (*model.Skill, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err == nil && existing != nil {
		return nil, ErrDuplicateRecord
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check skill existence: %w", err)
	}

	skill := &model.Skill{Name: name}
	if err := s.repo.Create(ctx, skill); err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}

	_ = s.cache.Delete(ctx, skillsCacheKey)
	return skill, nil
}

// Delete removes a skill by id.
func (s *skillService) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	_ = s.cache.Delete(ctx, skillsCacheKey)
	return nil
}
