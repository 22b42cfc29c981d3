package catalog

import "time"

// Show is a single catalog entry.
type Show struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Image       string    `json:"image" yaml:"image"`
	Description string    `json:"description" yaml:"description"`
	Genres      []int     `json:"genres" yaml:"genres"`
	Seasons     int       `json:"seasons" yaml:"seasons"`
	Updated     time.Time `json:"updated" yaml:"updated"`
}

// Genre is a named category referenced by id from a Show.
type Genre struct {
	ID    int    `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// SeasonDetail is one season of a show.
type SeasonDetail struct {
	Title    string `json:"title" yaml:"title"`
	Episodes int    `json:"episodes" yaml:"episodes"`
}

// SeasonRecord holds the ordered season breakdown of one show.
type SeasonRecord struct {
	ShowID  string         `json:"id" yaml:"id"`
	Seasons []SeasonDetail `json:"seasonDetails" yaml:"seasonDetails"`
}

// Dataset is the whole catalog. It is never modified after Load returns.
type Dataset struct {
	Shows   []Show         `json:"podcasts" yaml:"podcasts"`
	Genres  []Genre        `json:"genres" yaml:"genres"`
	Seasons []SeasonRecord `json:"seasons" yaml:"seasons"`
}

// ShowByID returns the show with the given id.
func (d *Dataset) ShowByID(id string) (Show, bool) {
	for _, s := range d.Shows {
		if s.ID == id {
			return s, true
		}
	}
	return Show{}, false
}
