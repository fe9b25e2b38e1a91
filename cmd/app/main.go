package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"adsouq/cmd/fx/account_fx"
	"adsouq/cmd/fx/ads_fx"
	"adsouq/cmd/fx/adsense_fx"
	"adsouq/cmd/fx/config_fx"
	"adsouq/cmd/fx/controllers_fx"
	"adsouq/cmd/fx/dashboard_fx"
	"adsouq/cmd/fx/db_fx"
	"adsouq/cmd/fx/settings_fx"
	"adsouq/cmd/fx/storage_fx"
	"adsouq/cmd/fx/store_fx"
	"adsouq/cmd/fx/taxonomy_fx"
	"adsouq/cmd/fx/vip_fx"
	"adsouq/internal/api/controllers"
	"adsouq/internal/services"
	"adsouq/pkg/config"
	"adsouq/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		storage_fx.Module,
		account_fx.Module,
		taxonomy_fx.Module,
		ads_fx.Module,
		vip_fx.Module,
		store_fx.Module,
		adsense_fx.Module,
		settings_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	addr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at %s", addr)
				if err := engine.Run(addr); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

type routerControllers struct {
	fx.In

	Account      *controllers.AccountController
	Ads          *controllers.AdController
	Taxonomy     *controllers.TaxonomyController
	Catalog      *controllers.VIPCatalogController
	Subscription *controllers.SubscriptionController
	Store        *controllers.StoreController
	AdSense      *controllers.AdSenseController
	Dashboard    *controllers.DashboardController
}

func ProvideRouter(
	cfg *config.Config,
	ctrl routerControllers,
	subscriptionService services.SubscriptionServiceInterface,
) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Static("/static/uploads", cfg.Uploads.Dir)

	RegisterRoutes(r, ctrl, subscriptionService)

	return r
}

func RegisterRoutes(r *gin.Engine, ctrl routerControllers, subscriptionService services.SubscriptionServiceInterface) {
	r.GET("/", ctrl.Ads.Home)

	api := r.Group("/api")
	api.Use(middleware.OptionalJWTMiddleware())

	api.GET("/ads/search", ctrl.Ads.Search)
	api.GET("/ads/:id", ctrl.Ads.GetAd)
	api.POST("/ads", ctrl.Ads.CreateAd)

	api.GET("/categories", ctrl.Taxonomy.ListCategories)
	api.GET("/categories/:id/ads", ctrl.Ads.ListByCategory)
	api.GET("/countries", ctrl.Taxonomy.ListCountries)
	api.GET("/countries/:id/states", ctrl.Taxonomy.ListStates)
	api.GET("/states/:id/cities", ctrl.Taxonomy.ListCities)

	api.GET("/stores/:id", ctrl.Store.GetStore)

	api.GET("/vip/packages", ctrl.Catalog.ListPackages)
	api.GET("/vip/packages/:id", ctrl.Catalog.GetPackage)
	api.GET("/vip/payment-methods", ctrl.Catalog.ListPaymentMethods)
	api.POST("/vip/subscribe", ctrl.Subscription.Subscribe)

	accounts := r.Group("/accounts")
	accounts.POST("/register", ctrl.Account.Register)
	accounts.POST("/login", ctrl.Account.Login)

	merchant := api.Group("/merchant")
	merchant.Use(middleware.JWTAuthMiddleware())
	merchant.Use(middleware.VIPMiddleware(subscriptionService.EnsureVIP))
	merchant.GET("/store", ctrl.Store.GetOwnStore)
	merchant.PUT("/store", ctrl.Store.UpdateStore)
	merchant.POST("/store/logo", ctrl.Store.UploadLogo)
	merchant.POST("/store/banner", ctrl.Store.UploadBanner)

	r.POST("/admin/login", ctrl.Account.AdminLogin)

	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware())
	admin.Use(middleware.RoleMiddleware("admin"))

	admin.GET("/dashboard", ctrl.Dashboard.Overview)
	admin.GET("/users", ctrl.Account.ListUsers)

	admin.GET("/ads", ctrl.Ads.ListForModeration)
	admin.POST("/ads/:id/approve", ctrl.Ads.ApproveAd)
	admin.POST("/ads/:id/reject", ctrl.Ads.RejectAd)
	admin.POST("/ads/:id/feature", ctrl.Ads.ToggleFeatured)
	admin.DELETE("/ads/:id", ctrl.Ads.DeleteAd)

	admin.POST("/categories", ctrl.Taxonomy.CreateCategory)
	admin.PUT("/categories/:id", ctrl.Taxonomy.UpdateCategory)
	admin.POST("/categories/:id/toggle", ctrl.Taxonomy.ToggleCategory)
	admin.DELETE("/categories/:id", ctrl.Taxonomy.DeleteCategory)

	admin.POST("/countries", ctrl.Taxonomy.CreateCountry)
	admin.DELETE("/countries/:id", ctrl.Taxonomy.DeleteCountry)
	admin.POST("/states", ctrl.Taxonomy.CreateState)
	admin.DELETE("/states/:id", ctrl.Taxonomy.DeleteState)
	admin.POST("/cities", ctrl.Taxonomy.CreateCity)
	admin.DELETE("/cities/:id", ctrl.Taxonomy.DeleteCity)

	admin.GET("/vip/dashboard", ctrl.Dashboard.VIPOverview)
	admin.GET("/vip/packages", ctrl.Catalog.ListAllPackages)
	admin.POST("/vip/packages", ctrl.Catalog.CreatePackage)
	admin.PUT("/vip/packages/:id", ctrl.Catalog.UpdatePackage)
	admin.POST("/vip/packages/:id/toggle", ctrl.Catalog.TogglePackage)
	admin.DELETE("/vip/packages/:id", ctrl.Catalog.DeletePackage)

	admin.POST("/vip/payment-methods", ctrl.Catalog.CreatePaymentMethod)
	admin.PUT("/vip/payment-methods/:id", ctrl.Catalog.UpdatePaymentMethod)
	admin.DELETE("/vip/payment-methods/:id", ctrl.Catalog.DeletePaymentMethod)

	admin.GET("/vip/subscriptions", ctrl.Subscription.ListSubscriptions)
	admin.GET("/vip/subscriptions/:id", ctrl.Subscription.GetSubscription)
	admin.POST("/vip/subscriptions/:id/approve", ctrl.Subscription.ApproveSubscription)
	admin.POST("/vip/subscriptions/:id/reject", ctrl.Subscription.RejectSubscription)

	admin.GET("/adsense", ctrl.AdSense.ListPlacements)
	admin.POST("/adsense", ctrl.AdSense.CreatePlacement)
	admin.PUT("/adsense/:id", ctrl.AdSense.UpdatePlacement)
	admin.POST("/adsense/:id/toggle", ctrl.AdSense.TogglePlacement)
	admin.DELETE("/adsense/:id", ctrl.AdSense.DeletePlacement)

	admin.POST("/settings/vip-section", ctrl.Dashboard.ToggleVIPSection)
}
