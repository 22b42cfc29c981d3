package database

import (
	"fmt"

	"gorm.io/gorm"
)

// CatalogRows is the raw content of a catalog database.
type CatalogRows struct {
	Shows      []ShowRow
	Genres     []GenreRow
	ShowGenres []ShowGenreRow
	Seasons    []SeasonRow
}

// ReadCatalog reads every catalog table in display order.
func ReadCatalog(db *gorm.DB) (*CatalogRows, error) {
	var rows CatalogRows

	if err := db.Order("position ASC").Find(&rows.Shows).Error; err != nil {
		return nil, fmt.Errorf("failed to read shows: %w", err)
	}
	if err := db.Order("id ASC").Find(&rows.Genres).Error; err != nil {
		return nil, fmt.Errorf("failed to read genres: %w", err)
	}
	if err := db.Order("show_id ASC, position ASC").Find(&rows.ShowGenres).Error; err != nil {
		return nil, fmt.Errorf("failed to read show genres: %w", err)
	}
	if err := db.Order("show_id ASC, position ASC").Find(&rows.Seasons).Error; err != nil {
		return nil, fmt.Errorf("failed to read seasons: %w", err)
	}

	return &rows, nil
}
