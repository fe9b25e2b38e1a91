package store_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"adsouq/internal/repositories"
	"adsouq/internal/services"
	"adsouq/pkg/storage"
)

var Module = fx.Provide(
	provideStoreService, provideStoreRepo)

func provideStoreRepo(db *gorm.DB) repositories.StoreRepository {
	return repositories.NewStoreRepository(db)
}

func provideStoreService(
	storeRepo repositories.StoreRepository,
	userRepo repositories.UserRepository,
	blobs storage.BlobStore,
) services.StoreServiceInterface {
	return services.NewStoreService(storeRepo, userRepo, blobs)
}
