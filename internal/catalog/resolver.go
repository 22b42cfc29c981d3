package catalog

import (
	"fmt"
	"log/slog"
)

// Lookup resolves the cross-referenced data a show points at.
type Lookup interface {
	GenreName(id int) string
	Seasons(showID string) []SeasonDetail
}

// Resolver answers lookups with linear scans over the dataset. The catalog is
// small and static, so nothing is indexed or cached.
type Resolver struct {
	genres  []Genre
	seasons []SeasonRecord
	logger  *slog.Logger
}

// NewResolver creates a resolver over the dataset's genres and season records.
func NewResolver(d *Dataset, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		genres:  d.Genres,
		seasons: d.Seasons,
		logger:  logger,
	}
}

// GenreName returns the title of the genre with the given id. Unknown ids
// resolve to "Genre {id}" so the tag is never dropped.
func (r *Resolver) GenreName(id int) string {
	for _, g := range r.genres {
		if g.ID == id {
			return g.Title
		}
	}
	r.logger.Debug("unresolved genre id", "genre_id", id)
	return fmt.Sprintf("Genre %d", id)
}

// Seasons returns the season breakdown for a show, or an empty slice when the
// show has no season record.
func (r *Resolver) Seasons(showID string) []SeasonDetail {
	for _, rec := range r.seasons {
		if rec.ShowID == showID {
			out := make([]SeasonDetail, len(rec.Seasons))
			copy(out, rec.Seasons)
			return out
		}
	}
	r.logger.Debug("no season record", "show_id", showID)
	return []SeasonDetail{}
}
