package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/justchokingaround/showcase/internal/catalog"
	"github.com/justchokingaround/showcase/internal/tui/common"
	"github.com/justchokingaround/showcase/internal/tui/components/cards"
	"github.com/justchokingaround/showcase/internal/tui/components/detail"
	"github.com/justchokingaround/showcase/internal/tui/components/help"
)

// Options configures the application model.
type Options struct {
	Locale string
	// Location is the zone dates are shown in; nil means local time.
	Location *time.Location
	Now      func() time.Time
}

// App is the root model. It owns the card list and the detail overlay and
// decides which of them receives input.
type App struct {
	width  int
	height int

	dataset *catalog.Dataset
	cards   cards.Model
	detail  detail.Model
	help    help.Model
	logger  *slog.Logger
}

// NewApp builds the root model and paints the catalog.
func NewApp(dataset *catalog.Dataset, logger *slog.Logger, opts Options) *App {
	if logger == nil {
		logger = slog.Default()
	}
	lookup := catalog.NewResolver(dataset, logger)

	a := &App{
		dataset: dataset,
		cards:   cards.New(lookup, cards.Options{Locale: opts.Locale, Location: opts.Location, Now: opts.Now}),
		detail:  detail.New(lookup, opts.Locale, opts.Location, logger),
		help:    help.New(),
		logger:  logger,
	}
	a.cards.RenderCatalog(dataset.Shows)
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleWindowSize(msg)
	case common.ShowSelectedMsg:
		return a.handleShowSelected(msg)
	case common.OverlayClosedMsg:
		a.logger.Info("closed show", "show_id", msg.ShowID)
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.MouseMsg:
		return a.handleMouse(msg)
	}
	return a, nil
}

func (a *App) View() string {
	if a.help.IsVisible() {
		return a.help.View()
	}
	if a.detail.IsOpen() {
		return a.detail.View()
	}
	return a.cards.View()
}

// Cards exposes the card list for inspection.
func (a *App) Cards() cards.Model {
	return a.cards
}

// Help exposes the shortcuts panel for inspection.
func (a *App) Help() help.Model {
	return a.help
}

// Detail exposes the overlay for inspection.
func (a *App) Detail() detail.Model {
	return a.detail
}
