package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"adsouq/internal/models/db_models"
)

type SettingRepository interface {
	Get(ctx context.Context, key string) (*db_models.SiteSetting, error)
	Upsert(ctx context.Context, key, value, description string) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) Get(ctx context.Context, key string) (*db_models.SiteSetting, error) {
	var setting db_models.SiteSetting
	err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepository) Upsert(ctx context.Context, key, value, description string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var setting db_models.SiteSetting
		err := tx.First(&setting, "key = ?", key).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			setting = db_models.SiteSetting{Key: key, Value: value, Description: description}
			return tx.Create(&setting).Error
		}
		if err != nil {
			return err
		}

		setting.Value = value
		return tx.Save(&setting).Error
	})
}
