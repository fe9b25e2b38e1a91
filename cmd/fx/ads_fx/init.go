package ads_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"adsouq/internal/repositories"
	"adsouq/internal/services"
	"adsouq/pkg/storage"
)

var Module = fx.Provide(
	provideAdService, provideAdRepo)

func provideAdRepo(db *gorm.DB) repositories.AdRepository {
	return repositories.NewAdRepository(db)
}

func provideAdService(
	adRepo repositories.AdRepository,
	userRepo repositories.UserRepository,
	categoryRepo repositories.CategoryRepository,
	locationRepo repositories.LocationRepository,
	adSenseRepo repositories.AdSenseRepository,
	settingRepo repositories.SettingRepository,
	blobs storage.BlobStore,
) services.AdServiceInterface {
	return services.NewAdService(adRepo, userRepo, categoryRepo, locationRepo, adSenseRepo, settingRepo, blobs)
}
