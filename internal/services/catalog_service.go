package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"travelplanner/internal/catalog"
	"travelplanner/internal/models/db_models"
	"travelplanner/internal/repositories"
	"travelplanner/pkg/utils"
)

// LoadCatalog migrates and, when empty, seeds the catalog table, then reads
// it once into an immutable snapshot. Rows with an unknown interest are
// skipped.
func LoadCatalog(ctx context.Context, repo repositories.CatalogRepositoryInterface, logger *zap.Logger) (*catalog.Snapshot, error) {
	if err := repo.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("%w: migrate catalog: %v", utils.ErrDatabaseError, err)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: count catalog: %v", utils.ErrDatabaseError, err)
	}

	if n == 0 {
		seed := seedRows()
		if err := repo.SeedEntries(ctx, seed); err != nil {
			return nil, fmt.Errorf("%w: seed catalog: %v", utils.ErrDatabaseError, err)
		}
		logger.Info("catalog seeded", zap.Int("entries", len(seed)))
	}

	rows, err := repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list catalog: %v", utils.ErrDatabaseError, err)
	}

	byInterest := make(map[catalog.Interest][]catalog.Entry)
	for _, row := range rows {
		interest, ok := catalog.ParseInterest(row.Interest)
		if !ok {
			logger.Warn("skipping catalog row with unknown interest",
				zap.String("interest", row.Interest),
				zap.String("place", row.Place),
			)
			continue
		}
		byInterest[interest] = append(byInterest[interest], catalog.Entry{
			Place: row.Place,
			Cost:  row.Cost,
			Note:  row.Note,
		})
	}

	logger.Info("catalog loaded", zap.Int("entries", len(rows)))
	return catalog.NewSnapshot(byInterest), nil
}

func seedRows() []db_models.CatalogEntry {
	seed := catalog.Seed()
	rows := make([]db_models.CatalogEntry, 0, 40)
	for _, interest := range catalog.All() {
		for pos, e := range seed[interest] {
			rows = append(rows, db_models.CatalogEntry{
				Interest: interest.String(),
				Place:    e.Place,
				Position: pos,
				Cost:     e.Cost,
				Note:     e.Note,
			})
		}
	}
	return rows
}
