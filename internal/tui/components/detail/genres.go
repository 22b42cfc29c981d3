package detail

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/justchokingaround/showcase/internal/tui/styles"
)

// renderGenreBadges renders one badge per tag, wrapping to a new row once
// width would be exceeded.
func renderGenreBadges(tags []string, width int) string {
	if len(tags) == 0 {
		return ""
	}

	var rows []string
	var row []string
	rowWidth := 0
	for _, tag := range tags {
		badge := styles.GenreBadgeStyle.Render(tag)
		w := lipgloss.Width(badge)
		if rowWidth > 0 && rowWidth+w > width {
			rows = append(rows, strings.Join(row, ""))
			row, rowWidth = nil, 0
		}
		row = append(row, badge)
		rowWidth += w
	}
	rows = append(rows, strings.Join(row, ""))

	return strings.Join(rows, "\n")
}
