package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"adsouq/internal/models/db_models"
)

type AdSenseRepository interface {
	Create(ctx context.Context, placement *db_models.AdSensePlacement) error
	Save(ctx context.Context, placement *db_models.AdSensePlacement) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id string) (*db_models.AdSensePlacement, error)
	ListActiveByType(ctx context.Context, adType db_models.AdSenseType) ([]db_models.AdSensePlacement, error)
	ListAll(ctx context.Context) ([]db_models.AdSensePlacement, error)
}

type adSenseRepository struct {
	db *gorm.DB
}

func NewAdSenseRepository(db *gorm.DB) AdSenseRepository {
	return &adSenseRepository{db: db}
}

func (r *adSenseRepository) Create(ctx context.Context, placement *db_models.AdSensePlacement) error {
	return r.db.WithContext(ctx).Create(placement).Error
}

func (r *adSenseRepository) Save(ctx context.Context, placement *db_models.AdSensePlacement) error {
	return r.db.WithContext(ctx).Save(placement).Error
}

func (r *adSenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.AdSensePlacement{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *adSenseRepository) FindByID(ctx context.Context, id string) (*db_models.AdSensePlacement, error) {
	var placement db_models.AdSensePlacement
	err := r.db.WithContext(ctx).First(&placement, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &placement, nil
}

func (r *adSenseRepository) ListActiveByType(ctx context.Context, adType db_models.AdSenseType) ([]db_models.AdSensePlacement, error) {
	var placements []db_models.AdSensePlacement
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND ad_type = ?", true, adType).
		Order("display_order ASC").
		Find(&placements).Error
	if err != nil {
		return nil, err
	}
	return placements, nil
}

func (r *adSenseRepository) ListAll(ctx context.Context) ([]db_models.AdSensePlacement, error) {
	var placements []db_models.AdSensePlacement
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&placements).Error
	if err != nil {
		return nil, err
	}
	return placements, nil
}
