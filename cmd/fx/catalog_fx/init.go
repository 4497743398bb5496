package catalog_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"travelplanner/internal/catalog"
	"travelplanner/internal/repositories"
	"travelplanner/internal/services"
)

var Module = fx.Provide(provideCatalogRepo, provideCatalog)

func provideCatalogRepo(db *gorm.DB) repositories.CatalogRepositoryInterface {
	if db == nil {
		return nil
	}
	return repositories.NewCatalogRepository(db)
}

func provideCatalog(repo repositories.CatalogRepositoryInterface, logger *zap.Logger) (catalog.Catalog, error) {
	if repo == nil {
		logger.Info("using built-in activity catalog")
		return catalog.Static(), nil
	}

	snapshot, err := services.LoadCatalog(context.Background(), repo, logger)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}
