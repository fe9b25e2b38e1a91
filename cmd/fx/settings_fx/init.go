package settings_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"adsouq/internal/repositories"
	"adsouq/internal/services"
)

var Module = fx.Provide(
	provideSettingsService, provideSettingRepo)

func provideSettingRepo(db *gorm.DB) repositories.SettingRepository {
	return repositories.NewSettingRepository(db)
}

func provideSettingsService(settingRepo repositories.SettingRepository) services.SettingsServiceInterface {
	return services.NewSettingsService(settingRepo)
}
