package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"adsouq/internal/infra"
	"adsouq/pkg/config"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(migrate))

func provideDB(lc fx.Lifecycle, cfg *config.Config) *gorm.DB {
	db := infra.InitPostgresql(cfg)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})

	return db
}

func migrate(db *gorm.DB) error {
	return infra.AutoMigrate(db)
}
