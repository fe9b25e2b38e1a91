package services

import (
	"context"

	"adsouq/internal/models/db_models"
	"adsouq/internal/repositories"
	"adsouq/pkg/utils"
)

type SettingsServiceInterface interface {
	ShowVIPSection(ctx context.Context) (bool, error)
	SetShowVIPSection(ctx context.Context, show bool) error
}

type SettingsService struct {
	settingRepo repositories.SettingRepository
}

func NewSettingsService(settingRepo repositories.SettingRepository) SettingsServiceInterface {
	return &SettingsService{settingRepo: settingRepo}
}

// ShowVIPSection defaults to visible when the row was never written.
func (s *SettingsService) ShowVIPSection(ctx context.Context) (bool, error) {
	setting, err := s.settingRepo.Get(ctx, db_models.SettingShowVIPSection)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if setting == nil {
		return true, nil
	}
	return setting.Value == "true", nil
}

func (s *SettingsService) SetShowVIPSection(ctx context.Context, show bool) error {
	value := "false"
	if show {
		value = "true"
	}
	err := s.settingRepo.Upsert(ctx, db_models.SettingShowVIPSection, value, "Toggle the VIP section on the public pages")
	if err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
