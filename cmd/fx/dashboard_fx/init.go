package dashboard_fx

import (
	"go.uber.org/fx"

	"adsouq/internal/repositories"
	"adsouq/internal/services"
)

var Module = fx.Provide(
	provideDashboardService)

func provideDashboardService(
	adRepo repositories.AdRepository,
	userRepo repositories.UserRepository,
	subRepo repositories.SubscriptionRepository,
	pkgRepo repositories.VIPPackageRepository,
) services.DashboardServiceInterface {
	return services.NewDashboardService(adRepo, userRepo, subRepo, pkgRepo)
}
