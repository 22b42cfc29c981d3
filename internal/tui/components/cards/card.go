package cards

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justchokingaround/showcase/internal/catalog"
	"github.com/justchokingaround/showcase/internal/tui/common"
	"github.com/justchokingaround/showcase/internal/tui/utils"
)

// Card is the list-view projection of one show.
type Card struct {
	Image   string
	Alt     string
	Title   string
	Genres  string // resolved names joined with ", "
	Seasons string // "{n} Seasons"
	Updated string // calendar date
	Age     string // relative age, e.g. "3 days ago"

	show catalog.Show
}

// NewCard projects a show into a card. The card keeps its own copy of the
// show, so activating it always opens this show.
func NewCard(show catalog.Show, lookup catalog.Lookup, locale string, loc *time.Location, now time.Time) Card {
	show.Genres = append([]int(nil), show.Genres...)

	names := make([]string, 0, len(show.Genres))
	for _, id := range show.Genres {
		names = append(names, lookup.GenreName(id))
	}

	return Card{
		Image:   show.Image,
		Alt:     show.Title,
		Title:   show.Title,
		Genres:  strings.Join(names, ", "),
		Seasons: fmt.Sprintf("%d Seasons", show.Seasons),
		Updated: utils.FormatDate(show.Updated, locale, loc),
		Age:     utils.RelativeAge(show.Updated, now),
		show:    show,
	}
}

// ShowID returns the id of the show bound to this card.
func (c Card) ShowID() string {
	return c.show.ID
}

// Activate returns the command that opens this card's show.
func (c Card) Activate() tea.Cmd {
	show := c.show
	return func() tea.Msg {
		return common.ShowSelectedMsg{Show: show}
	}
}
