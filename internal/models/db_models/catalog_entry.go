package db_models

// CatalogEntry is one sample activity under an interest tag. Rows are
// seeded once and only read afterwards.
type CatalogEntry struct {
	BaseModel
	Interest string  `gorm:"not null;uniqueIndex:idx_catalog_interest_place"`
	Place    string  `gorm:"not null;uniqueIndex:idx_catalog_interest_place"`
	Position int     `gorm:"not null"`
	Cost     float64 `gorm:"not null"`
	Note     string
}
