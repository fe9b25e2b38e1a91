package taxonomy_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"adsouq/internal/repositories"
	"adsouq/internal/services"
)

var Module = fx.Provide(
	provideTaxonomyService, provideCategoryRepo, provideLocationRepo)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideLocationRepo(db *gorm.DB) repositories.LocationRepository {
	return repositories.NewLocationRepository(db)
}

func provideTaxonomyService(categoryRepo repositories.CategoryRepository, locationRepo repositories.LocationRepository) services.TaxonomyServiceInterface {
	return services.NewTaxonomyService(categoryRepo, locationRepo)
}
