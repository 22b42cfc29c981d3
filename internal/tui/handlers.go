package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/justchokingaround/showcase/internal/tui/common"
	"github.com/justchokingaround/showcase/internal/tui/components/help"
)

func (a *App) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width = msg.Width
	a.height = msg.Height
	a.cards.SetSize(msg.Width, msg.Height)
	a.detail.SetSize(msg.Width, msg.Height)
	a.help.SetSize(msg.Width, msg.Height)
	return a, nil
}

func (a *App) handleShowSelected(msg common.ShowSelectedMsg) (tea.Model, tea.Cmd) {
	a.detail.Open(msg.Show)
	a.logger.Info("opened show", "show_id", msg.Show.ID, "title", msg.Show.Title)
	return a, nil
}

// handleKey routes keys to the help panel first, then to the overlay while it
// is open. The card list gets nothing in that time, so its cursor and scroll
// offset stay put.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.help.IsVisible() {
		switch msg.String() {
		case "?", "esc", "q":
			a.help.Hide()
			return a, nil
		}
		var cmd tea.Cmd
		a.help, cmd = a.help.Update(msg)
		return a, cmd
	}

	if msg.String() == "?" {
		if a.detail.IsOpen() {
			a.help.SetContext(help.DetailContext)
		} else {
			a.help.SetContext(help.CatalogContext)
		}
		a.help.Show()
		return a, nil
	}

	if a.detail.IsOpen() {
		var cmd tea.Cmd
		a.detail, cmd = a.detail.Update(msg)
		return a, cmd
	}

	if msg.String() == "q" {
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.cards, cmd = a.cards.Update(msg)
	return a, cmd
}

// handleMouse gives pointer input, wheel included, to the overlay while the
// page is scroll-locked.
func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.help.IsVisible() {
		return a, nil
	}

	var cmd tea.Cmd
	if a.detail.ScrollLocked() {
		a.detail, cmd = a.detail.Update(msg)
		return a, cmd
	}
	a.cards, cmd = a.cards.Update(msg)
	return a, cmd
}
