package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/justchokingaround/showcase/internal/catalog"
	"github.com/justchokingaround/showcase/internal/tui/components/cards"
	"github.com/justchokingaround/showcase/internal/tui/components/detail"
)

// PrintCatalog writes every card as a plain text block.
func PrintCatalog(w io.Writer, dataset *catalog.Dataset, opts Options) error {
	m := cards.New(catalog.NewResolver(dataset, nil), cards.Options{Locale: opts.Locale, Location: opts.Location, Now: opts.Now})
	m.RenderCatalog(dataset.Shows)

	for i, c := range m.Cards() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		lines := []string{
			fmt.Sprintf("%s [%s]", c.Title, c.ShowID()),
			fmt.Sprintf("  Cover: %s (%s)", c.Image, c.Alt),
			fmt.Sprintf("  Genres: %s", c.Genres),
			fmt.Sprintf("  %s • Updated: %s (%s)", c.Seasons, c.Updated, c.Age),
		}
		if _, err := fmt.Fprintln(w, strings.Join(lines, "\n")); err != nil {
			return err
		}
	}
	return nil
}

// PrintDetail writes the detail view of one show. expand shows the full
// description when it would otherwise be truncated.
func PrintDetail(w io.Writer, dataset *catalog.Dataset, showID string, expand bool, opts Options) error {
	show, ok := dataset.ShowByID(showID)
	if !ok {
		return fmt.Errorf("show %q not found", showID)
	}

	m := detail.New(catalog.NewResolver(dataset, nil), opts.Locale, opts.Location, nil)
	m.Open(show)
	if expand {
		m.ToggleDescription()
	}
	f := m.Fields()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", f.Title)
	fmt.Fprintf(&b, "Cover: %s (%s)\n", f.Image, f.Alt)
	fmt.Fprintf(&b, "Updated: %s\n", f.Updated)
	fmt.Fprintf(&b, "Genres: %s\n\n", strings.Join(f.GenreTags, " | "))
	fmt.Fprintf(&b, "%s\n", f.Description.Text())
	if f.Description.HasToggle {
		fmt.Fprintf(&b, "[%s]\n", f.Description.ToggleLabel)
	}
	b.WriteString("\nSeasons:\n")
	for _, row := range f.Seasons {
		fmt.Fprintf(&b, "  %s\n", row)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
