package controllers_fx

import (
	"go.uber.org/fx"

	"adsouq/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewAdController),
	fx.Provide(controllers.NewTaxonomyController),
	fx.Provide(controllers.NewVIPCatalogController),
	fx.Provide(controllers.NewSubscriptionController),
	fx.Provide(controllers.NewStoreController),
	fx.Provide(controllers.NewAdSenseController),
	fx.Provide(controllers.NewDashboardController))
