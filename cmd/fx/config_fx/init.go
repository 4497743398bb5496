package config_fx

import (
	"go.uber.org/fx"

	"travelplanner/internal/config"
)

var Module = fx.Provide(config.Load)
