package adsense_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"adsouq/internal/repositories"
	"adsouq/internal/services"
)

var Module = fx.Provide(
	provideAdSenseService, provideAdSenseRepo)

func provideAdSenseRepo(db *gorm.DB) repositories.AdSenseRepository {
	return repositories.NewAdSenseRepository(db)
}

func provideAdSenseService(adSenseRepo repositories.AdSenseRepository) services.AdSenseServiceInterface {
	return services.NewAdSenseService(adSenseRepo)
}
