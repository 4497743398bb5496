package repositories

import (
	"context"

	"gorm.io/gorm"

	"travelplanner/internal/models/db_models"
)

type CatalogRepositoryInterface interface {
	Migrate(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
	ListAll(ctx context.Context) ([]db_models.CatalogEntry, error)
	SeedEntries(ctx context.Context, entries []db_models.CatalogEntry) error
}

func NewCatalogRepository(db *gorm.DB) CatalogRepositoryInterface {
	return &CatalogRepository{db: db}
}

type CatalogRepository struct {
	db *gorm.DB
}

func (r *CatalogRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&db_models.CatalogEntry{})
}

func (r *CatalogRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.CatalogEntry{}).Count(&n).Error
	return n, err
}

func (r *CatalogRepository) ListAll(ctx context.Context) ([]db_models.CatalogEntry, error) {
	var entries []db_models.CatalogEntry
	err := r.db.WithContext(ctx).
		Order("interest ASC").
		Order("position ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *CatalogRepository) SeedEntries(ctx context.Context, entries []db_models.CatalogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entries).Error; err != nil {
			return err
		}

		return nil
	})
}
