package common

import "github.com/justchokingaround/showcase/internal/catalog"

// This file contains custom tea.Msg types for communication between components.

// ShowSelectedMsg is sent when a card is activated. Show is the card's own
// copy of the show, taken when the card was built.
type ShowSelectedMsg struct {
	Show catalog.Show
}

// OverlayClosedMsg is sent after the detail overlay closes.
type OverlayClosedMsg struct {
	ShowID string
}
