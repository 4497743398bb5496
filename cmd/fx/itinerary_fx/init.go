package itinerary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"travelplanner/internal/catalog"
	"travelplanner/internal/config"
	"travelplanner/internal/services"
	"travelplanner/pkg/metrics"
)

var Module = fx.Provide(provideItineraryService)

func provideItineraryService(cfg config.Config, cat catalog.Catalog, m *metrics.Metrics, logger *zap.Logger) services.ItineraryServiceInterface {
	return services.NewItineraryService(cat, cfg.Planner.SimulatedLatency, nil, m, logger)
}
