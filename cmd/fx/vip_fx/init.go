package vip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"adsouq/internal/repositories"
	"adsouq/internal/services"
	mem "adsouq/pkg/memcache"
	"adsouq/pkg/storage"
)

var Module = fx.Provide(
	provideCatalogService, provideSubscriptionService,
	providePackageRepo, providePaymentMethodRepo, provideSubscriptionRepo,
	provideVIPCache)

func provideVIPCache() mem.VIPStatusCache {
	return mem.NewVIPStatus()
}

func providePackageRepo(db *gorm.DB) repositories.VIPPackageRepository {
	return repositories.NewVIPPackageRepository(db)
}

func providePaymentMethodRepo(db *gorm.DB) repositories.PaymentMethodRepository {
	return repositories.NewPaymentMethodRepository(db)
}

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideCatalogService(
	pkgRepo repositories.VIPPackageRepository,
	methodRepo repositories.PaymentMethodRepository,
	locationRepo repositories.LocationRepository,
) services.VIPCatalogServiceInterface {
	return services.NewVIPCatalogService(pkgRepo, methodRepo, locationRepo)
}

func provideSubscriptionService(
	subRepo repositories.SubscriptionRepository,
	pkgRepo repositories.VIPPackageRepository,
	methodRepo repositories.PaymentMethodRepository,
	userRepo repositories.UserRepository,
	storeRepo repositories.StoreRepository,
	blobs storage.BlobStore,
	vipCache mem.VIPStatusCache,
) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subRepo, pkgRepo, methodRepo, userRepo, storeRepo, blobs, vipCache)
}
