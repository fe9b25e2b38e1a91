package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"adsouq/internal/models/db_models"
)

type VIPPackageRepository interface {
	Create(ctx context.Context, pkg *db_models.VIPPackage) error
	Save(ctx context.Context, pkg *db_models.VIPPackage) error
	ReplacePaymentMethods(ctx context.Context, pkg *db_models.VIPPackage, methods []db_models.PaymentMethod) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id string) (*db_models.VIPPackage, error)
	ListByCountry(ctx context.Context, countryID string, activeOnly bool) ([]db_models.VIPPackage, error)
	ListAll(ctx context.Context) ([]db_models.VIPPackage, error)
	CountAll(ctx context.Context) (int64, error)
}

type vipPackageRepository struct {
	db *gorm.DB
}

func NewVIPPackageRepository(db *gorm.DB) VIPPackageRepository {
	return &vipPackageRepository{db: db}
}

func (r *vipPackageRepository) Create(ctx context.Context, pkg *db_models.VIPPackage) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *vipPackageRepository) Save(ctx context.Context, pkg *db_models.VIPPackage) error {
	return r.db.WithContext(ctx).Omit("PaymentMethods").Save(pkg).Error
}

func (r *vipPackageRepository) ReplacePaymentMethods(ctx context.Context, pkg *db_models.VIPPackage, methods []db_models.PaymentMethod) error {
	return r.db.WithContext(ctx).Model(pkg).Association("PaymentMethods").Replace(methods)
}

func (r *vipPackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pkg := db_models.VIPPackage{BaseModel: db_models.BaseModel{ID: id}}
		if err := tx.Model(&pkg).Association("PaymentMethods").Clear(); err != nil {
			return err
		}

		err := tx.Delete(&db_models.VIPPackage{}, "id = ?", id).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return nil
	})
}

func (r *vipPackageRepository) FindByID(ctx context.Context, id string) (*db_models.VIPPackage, error) {
	var pkg db_models.VIPPackage
	err := r.db.WithContext(ctx).
		Preload("PaymentMethods").
		First(&pkg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *vipPackageRepository) ListByCountry(ctx context.Context, countryID string, activeOnly bool) ([]db_models.VIPPackage, error) {
	query := r.db.WithContext(ctx).
		Preload("PaymentMethods").
		Where("country_id = ?", countryID).
		Order("price ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var packages []db_models.VIPPackage
	if err := query.Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *vipPackageRepository) ListAll(ctx context.Context) ([]db_models.VIPPackage, error) {
	var packages []db_models.VIPPackage
	err := r.db.WithContext(ctx).
		Preload("PaymentMethods").
		Order("created_at DESC").
		Find(&packages).Error
	if err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *vipPackageRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.VIPPackage{}).Count(&count).Error
	return count, err
}
