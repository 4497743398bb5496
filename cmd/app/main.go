package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"travelplanner/cmd/fx/catalog_fx"
	"travelplanner/cmd/fx/config_fx"
	"travelplanner/cmd/fx/controllers_fx"
	"travelplanner/cmd/fx/db_fx"
	"travelplanner/cmd/fx/itinerary_fx"
	"travelplanner/cmd/fx/logger_fx"
	"travelplanner/cmd/fx/memcache_fx"
	"travelplanner/cmd/fx/metrics_fx"
	"travelplanner/cmd/fx/planner_fx"
	"travelplanner/cmd/fx/ratelimit_fx"
	"travelplanner/cmd/fx/share_fx"
	"travelplanner/cmd/fx/tagsfx"
	"travelplanner/internal/api"
	"travelplanner/internal/api/controllers"
	"travelplanner/internal/api/validators"
	"travelplanner/internal/config"
	"travelplanner/pkg/metrics"
	"travelplanner/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		metrics_fx.Module,
		db_fx.Module,
		catalog_fx.Module,
		itinerary_fx.Module,
		memcache_fx.Module,
		planner_fx.Module,
		share_fx.Module,
		tagsfx.Module,
		ratelimit_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Server.Port),
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}

type routerParams struct {
	fx.In

	Config  config.Config
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	Limiter *middleware.ClientRateLimiter

	Health    *controllers.HealthController
	Tags      *controllers.TagController
	Itinerary *controllers.ItineraryController
	Planner   *controllers.PlannerController
	Share     *controllers.ShareController
}

func ProvideRouter(p routerParams) (*gin.Engine, error) {
	if !p.Config.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := validators.RegisterWithGin(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger))
	r.Use(middleware.Recovery(p.Logger))
	r.Use(middleware.CORSMiddleware())

	api.RegisterRoutes(r, api.Handlers{
		Health:    p.Health,
		Tags:      p.Tags,
		Itinerary: p.Itinerary,
		Planner:   p.Planner,
		Share:     p.Share,
	}, p.Limiter, p.Metrics.Handler())

	return r, nil
}
