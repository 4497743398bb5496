package db_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"travelplanner/internal/config"
	"travelplanner/internal/infra"
)

var Module = fx.Provide(
	provideDB)

// provideDB opens Postgres only when the catalog is stored there; otherwise
// it provides a nil *gorm.DB.
func provideDB(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (*gorm.DB, error) {
	if cfg.Catalog.Source != config.CatalogSourcePostgres {
		return nil, nil
	}

	db, err := infra.InitPostgresql(cfg.Catalog.PostgresURL, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() {
		infra.ClosePostgresql(db, logger)
	}))
	return db, nil
}
