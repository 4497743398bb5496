package ratelimit_fx

import (
	"go.uber.org/fx"

	"travelplanner/internal/config"
	"travelplanner/pkg/middleware"
)

var Module = fx.Provide(provideRateLimiter)

// provideRateLimiter returns nil when RATE_LIMIT_PER_MINUTE is 0.
func provideRateLimiter(lc fx.Lifecycle, cfg config.Config) *middleware.ClientRateLimiter {
	if cfg.RateLimit.PerMinute <= 0 {
		return nil
	}
	limiter := middleware.NewClientRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)
	lc.Append(fx.StartStopHook(limiter.StartJanitor, limiter.Stop))
	return limiter
}
