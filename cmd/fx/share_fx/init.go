package share_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"travelplanner/internal/config"
	"travelplanner/internal/services"
	"travelplanner/pkg/metrics"
)

var Module = fx.Provide(provideShareService)

func provideShareService(cfg config.Config, m *metrics.Metrics, logger *zap.Logger) services.ShareServiceInterface {
	return services.NewShareService(cfg.Share.Secret, cfg.Share.BaseURL, cfg.Share.TTL, m, logger)
}
