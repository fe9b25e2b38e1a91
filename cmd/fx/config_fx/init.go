package config_fx

import (
	"go.uber.org/fx"

	"adsouq/pkg/config"
)

var Module = fx.Provide(
	config.Load)
