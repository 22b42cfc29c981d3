package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/justchokingaround/showcase/internal/database"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.json
var embeddedCatalog []byte

var (
	// ErrUnsupportedFormat is returned for data files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	// ErrDuplicateID is returned when two shows or two genres share an id.
	ErrDuplicateID = errors.New("duplicate id")
)

// Load reads the catalog at path. An empty path loads the built-in catalog.
// The format is picked from the file extension.
func Load(path string, logger *slog.Logger) (*Dataset, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		d   *Dataset
		err error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); {
	case path == "":
		d, err = decodeJSON(embeddedCatalog)
	case ext == ".json":
		d, err = readFile(path, decodeJSON)
	case ext == ".yaml" || ext == ".yml":
		d, err = readFile(path, decodeYAML)
	case ext == ".db" || ext == ".sqlite" || ext == ".sqlite3":
		d, err = loadSQLite(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	if err := normalize(d, logger); err != nil {
		return nil, err
	}

	logger.Info("catalog loaded",
		"source", sourceName(path),
		"shows", len(d.Shows),
		"genres", len(d.Genres),
		"season_records", len(d.Seasons))
	return d, nil
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

func readFile(path string, decode func([]byte) (*Dataset, error)) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return decode(data)
}

func decodeJSON(data []byte) (*Dataset, error) {
	var d Dataset
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode catalog JSON: %w", err)
	}
	return &d, nil
}

func decodeYAML(data []byte) (*Dataset, error) {
	var d Dataset
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to decode catalog YAML: %w", err)
	}
	return &d, nil
}

func loadSQLite(path string) (*Dataset, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, err
	}
	defer database.Close(db)

	rows, err := database.ReadCatalog(db)
	if err != nil {
		return nil, err
	}
	return fromRows(rows), nil
}

func fromRows(rows *database.CatalogRows) *Dataset {
	d := &Dataset{}

	genresByShow := make(map[string][]int)
	for _, sg := range rows.ShowGenres {
		genresByShow[sg.ShowID] = append(genresByShow[sg.ShowID], sg.GenreID)
	}

	for _, s := range rows.Shows {
		d.Shows = append(d.Shows, Show{
			ID:          s.ID,
			Title:       s.Title,
			Image:       s.Image,
			Description: s.Description,
			Genres:      genresByShow[s.ID],
			Seasons:     s.Seasons,
			Updated:     s.LastUpdated,
		})
	}

	for _, g := range rows.Genres {
		d.Genres = append(d.Genres, Genre{ID: g.ID, Title: g.Title})
	}

	// Seasons arrive ordered by show and position.
	index := make(map[string]int)
	for _, s := range rows.Seasons {
		i, ok := index[s.ShowID]
		if !ok {
			i = len(d.Seasons)
			index[s.ShowID] = i
			d.Seasons = append(d.Seasons, SeasonRecord{ShowID: s.ShowID})
		}
		d.Seasons[i].Seasons = append(d.Seasons[i].Seasons, SeasonDetail{
			Title:    s.Title,
			Episodes: s.Episodes,
		})
	}

	return d
}

// normalize enforces the dataset invariants in place.
func normalize(d *Dataset, logger *slog.Logger) error {
	showIDs := make(map[string]struct{}, len(d.Shows))
	for i := range d.Shows {
		s := &d.Shows[i]
		if _, ok := showIDs[s.ID]; ok {
			return fmt.Errorf("%w: show %q", ErrDuplicateID, s.ID)
		}
		showIDs[s.ID] = struct{}{}
		if s.Seasons < 0 {
			s.Seasons = 0
		}
	}

	genreIDs := make(map[int]struct{}, len(d.Genres))
	for _, g := range d.Genres {
		if _, ok := genreIDs[g.ID]; ok {
			return fmt.Errorf("%w: genre %d", ErrDuplicateID, g.ID)
		}
		genreIDs[g.ID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(d.Seasons))
	records := d.Seasons[:0]
	for _, rec := range d.Seasons {
		if _, ok := seen[rec.ShowID]; ok {
			logger.Warn("dropping duplicate season record", "show_id", rec.ShowID)
			continue
		}
		seen[rec.ShowID] = struct{}{}
		for j := range rec.Seasons {
			if rec.Seasons[j].Episodes < 0 {
				rec.Seasons[j].Episodes = 0
			}
		}
		records = append(records, rec)
	}
	d.Seasons = records

	return nil
}
