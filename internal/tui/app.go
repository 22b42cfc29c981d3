package tui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/justchokingaround/showcase/internal/catalog"
	"github.com/justchokingaround/showcase/internal/config"
)

// Start is the entry point for the TUI.
func Start(dataset *catalog.Dataset, cfg *config.Config, logger *slog.Logger) error {
	m := NewApp(dataset, logger, Options{Locale: cfg.Catalog.DateLocale})

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
