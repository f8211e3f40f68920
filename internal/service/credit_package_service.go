package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"coachhub/internal/cache"
	"coachhub/internal/model"
	"coachhub/internal/repository"
)

// CreditPackageService handles the credit package catalog.
type CreditPackageService interface {
	List(ctx context.Context) ([]model.CreditPackage, error)
	Create(ctx context.Context, name string, creditAmount int, price decimal.Decimal) (*model.CreditPackage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type creditPackageService struct {
	repo  repository.CreditPackageRepository
	cache *cache.Client
}

// NewCreditPackageService builds a CreditPackageService with repository and cache.
func NewCreditPackageService(repo repository.CreditPackageRepository, cache *cache.Client) CreditPackageService {
	return &creditPackageService{repo: repo, cache: cache}
}

// List returns the package catalog, served from cache when warm.
func (s *creditPackageService) List(ctx context.Context) ([]model.CreditPackage, error) {
	if data, err := s.cache.Get(ctx, packagesCacheKey); err == nil && data != nil {
		var pkgs []model.CreditPackage
		if err := json.Unmarshal(data, &pkgs); err == nil {
			return pkgs, nil
		}
	}

	pkgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list credit packages: %w", err)
	}

	if payload, err := json.Marshal(pkgs); err == nil {
		_ = s.cache.Set(ctx, packagesCacheKey, payload, catalogCacheTTL)
	}
	return pkgs, nil
}

// Create adds a credit package, rejecting duplicate names.
func (s *creditPackageService) Create(ctx context.Context, name string, creditAmount int, price decimal.Decimal) (*model.CreditPackage, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err == nil && existing != nil {
		return nil, ErrDuplicateRecord
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check credit package existence: %w", err)
	}

	pkg := &model.CreditPackage{
		Name:         name,
		CreditAmount: creditAmount,
		Price:        price,
	}
	if err := s.repo.Create(ctx, pkg); err != nil {
		return nil, fmt.Errorf("create credit package: %w", err)
	}

	_ = s.cache.Delete(ctx, packagesCacheKey)
	return pkg, nil
}

// Delete removes a credit package by id.
func (s *creditPackageService) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete credit package: %w", err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	_ = s.cache.Delete(ctx, packagesCacheKey)
	return nil
}
