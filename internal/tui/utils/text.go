package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis is appended to text cut at a fixed length.
const Ellipsis = "..."

// TruncateRunes cuts text to its first n characters and appends Ellipsis.
// Text of n characters or fewer is returned unchanged.
func TruncateRunes(text string, n int) (string, bool) {
	if n < 0 {
		n = 0
	}
	runes := []rune(text)
	if len(runes) <= n {
		return text, false
	}
	return string(runes[:n]) + Ellipsis, true
}

// WrapText wraps text at word boundaries to fit within maxWidth.
// Returns a slice of lines.
func WrapText(text string, maxWidth int) []string {
	text = strings.TrimSpace(text)
	words := strings.Fields(text)

	var lines []string
	var currentLine strings.Builder
	currentWidth := 0

	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)

		switch {
		case currentWidth == 0:
			currentLine.WriteString(word)
			currentWidth = wordWidth
		case currentWidth+1+wordWidth <= maxWidth:
			currentLine.WriteString(" ")
			currentLine.WriteString(word)
			currentWidth += 1 + wordWidth
		default:
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentLine.WriteString(word)
			currentWidth = wordWidth
		}
	}

	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return lines
}

// TruncateWithWidth truncates text to fit within maxWidth cells, accounting for
// wide characters. Adds "..." if the text is truncated.
func TruncateWithWidth(text string, maxWidth int) string {
	if runewidth.StringWidth(text) <= maxWidth {
		return text
	}
	return runewidth.Truncate(text, maxWidth, Ellipsis)
}
