package database

import (
	"time"

	"gorm.io/gorm"
)

// ShowRow is a catalog entry
type ShowRow struct {
	ID          string    `gorm:"primaryKey"`
	Title       string    `gorm:"not null"`
	Image       string    `gorm:"default:''"`
	Description string    `gorm:"default:''"`
	Seasons     int       `gorm:"not null;default:0"`
	Position    int       `gorm:"not null;default:0;index"` // catalog display order
	LastUpdated time.Time `gorm:"column:updated"`
}

// TableName overrides the table name
func (ShowRow) TableName() string {
	return "shows"
}

// GenreRow is a named genre
type GenreRow struct {
	ID    int    `gorm:"primaryKey;autoIncrement:false"`
	Title string `gorm:"not null"`
}

// TableName overrides the table name
func (GenreRow) TableName() string {
	return "genres"
}

// ShowGenreRow links a show to a genre. Position keeps the show's genre order.
type ShowGenreRow struct {
	ShowID   string `gorm:"primaryKey"`
	Position int    `gorm:"primaryKey"`
	GenreID  int    `gorm:"not null;index"`
}

// TableName overrides the table name
func (ShowGenreRow) TableName() string {
	return "show_genres"
}

// SeasonRow is one season of a show
type SeasonRow struct {
	ShowID   string `gorm:"primaryKey"`
	Position int    `gorm:"primaryKey"`
	Title    string `gorm:"not null"`
	Episodes int    `gorm:"not null;default:0"`
}

// TableName overrides the table name
func (SeasonRow) TableName() string {
	return "seasons"
}

// Migrate creates the catalog schema. It is used by tooling that builds
// catalog files, never by the reader.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&ShowRow{},
		&GenreRow{},
		&ShowGenreRow{},
		&SeasonRow{},
	)
}
