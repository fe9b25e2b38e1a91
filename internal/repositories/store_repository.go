package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"adsouq/internal/models/db_models"
)

type StoreRepository interface {
	Create(ctx context.Context, store *db_models.MerchantStore) error
	Save(ctx context.Context, store *db_models.MerchantStore) error
	FindByID(ctx context.Context, id string) (*db_models.MerchantStore, error)
	FindByOwner(ctx context.Context, ownerID string) (*db_models.MerchantStore, error)
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(ctx context.Context, store *db_models.MerchantStore) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeRepository) Save(ctx context.Context, store *db_models.MerchantStore) error {
	return r.db.WithContext(ctx).Save(store).Error
}

func (r *storeRepository) FindByID(ctx context.Context, id string) (*db_models.MerchantStore, error) {
	var store db_models.MerchantStore
	err := r.db.WithContext(ctx).
		Preload("Ads", "is_active = ?", true).
		First(&store, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) FindByOwner(ctx context.Context, ownerID string) (*db_models.MerchantStore, error) {
	var store db_models.MerchantStore
	err := r.db.WithContext(ctx).
		Preload("Ads", "is_active = ?", true).
		First(&store, "owner_id = ?", ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}

