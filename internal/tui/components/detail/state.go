package detail

import (
	"fmt"

	"github.com/justchokingaround/showcase/internal/tui/utils"
)

const (
	// DescriptionThreshold is the longest description shown without a toggle.
	DescriptionThreshold = 180

	ReadMoreLabel = "Read more"
	ShowLessLabel = "Show less"
	NoSeasonsText = "no seasons available"
)

// State is the overlay's UI state. It starts closed with nothing selected.
type State struct {
	SelectedShowID string
	HasSelection   bool
	Visible        bool
	Expanded       bool
	ScrollLocked   bool
}

// Description holds both renditions of a show's description. Exactly one of
// Short and Full is visible at a time.
type Description struct {
	Short       string
	Full        string
	ShortHidden bool
	FullHidden  bool
	HasToggle   bool
	ToggleLabel string
}

// Text returns the visible rendition.
func (d Description) Text() string {
	if d.ShortHidden {
		return d.Full
	}
	return d.Short
}

// Fields are the fixed regions of the overlay. Open assigns every one of
// them; none is created conditionally.
type Fields struct {
	Title       string
	Image       string
	Alt         string
	Description Description
	GenreTags   []string
	Seasons     []string
	Updated     string
}

func newDescription(text string) Description {
	short, truncated := utils.TruncateRunes(text, DescriptionThreshold)
	if !truncated {
		return Description{
			Short:      text,
			Full:       text,
			FullHidden: true,
		}
	}
	return Description{
		Short:       short,
		Full:        text,
		FullHidden:  true,
		HasToggle:   true,
		ToggleLabel: ReadMoreLabel,
	}
}

func seasonRow(title string, episodes int) string {
	return fmt.Sprintf("%s - %d episodes", title, episodes)
}
