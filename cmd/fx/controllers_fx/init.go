package controllers_fx

import (
	"go.uber.org/fx"

	"travelplanner/internal/api/controllers"
	"travelplanner/internal/config"
)

var Module = fx.Options(
	fx.Provide(provideHealthController),
	fx.Provide(controllers.NewTagController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewPlannerController),
	fx.Provide(controllers.NewShareController))

func provideHealthController(cfg config.Config) *controllers.HealthController {
	return controllers.NewHealthController(cfg.Catalog.Source)
}
