package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coachhub/internal/model"
)

// CreditPackageRepository defines credit package catalog persistence operations.
type CreditPackageRepository interface {
	List(ctx context.Context) ([]model.CreditPackage, error)
	FindByName(ctx context.Context, name string) (*model.CreditPackage, error)
	Create(ctx context.Context, pkg *model.CreditPackage) error
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
}

type creditPackageRepository struct {
	db *gorm.DB
}

// NewCreditPackageRepository builds a GORM-backed repository.
func NewCreditPackageRepository(db *gorm.DB) CreditPackageRepository {
	return &creditPackageRepository{db: db}
}

func (r *creditPackageRepository) List(ctx context.Context) ([]model.CreditPackage, error) {
	var pkgs []model.CreditPackage
	if err := r.db.WithContext(ctx).Find(&pkgs).Error; err != nil {
		return nil, err
	}
	return pkgs, nil
}

func (r *creditPackageRepository) FindByName(ctx context.Context, name string) (*model.CreditPackage, error) {
	var pkg model.CreditPackage
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *creditPackageRepository) Create(ctx context.Context, pkg *model.CreditPackage) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

// DeleteByID removes the package and reports how many rows were deleted.
func (r *creditPackageRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CreditPackage{})
	return res.RowsAffected, res.Error
}
