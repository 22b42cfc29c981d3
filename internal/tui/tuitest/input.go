package tuitest

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

var namedKeys = map[string]tea.KeyType{
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEsc,
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"pgup":   tea.KeyPgUp,
	"pgdown": tea.KeyPgDown,
	"home":   tea.KeyHome,
	"end":    tea.KeyEnd,
	"ctrl+c": tea.KeyCtrlC,
}

// Key builds the tea.KeyMsg whose String() is s.
func Key(s string) tea.KeyMsg {
	if t, ok := namedKeys[s]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// Click builds a left button press at x, y.
func Click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// Wheel builds a wheel event at x, y. down selects the scroll direction.
func Wheel(x, y int, down bool) tea.MouseMsg {
	button := tea.MouseButtonWheelUp
	if down {
		button = tea.MouseButtonWheelDown
	}
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: button}
}

// Plain strips ANSI sequences from a rendered view.
func Plain(view string) string {
	return ansi.Strip(view)
}

// Exec runs cmd and returns its message, or nil for a nil command.
func Exec(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// AssertContainsAll fails the test unless the plain view contains every part.
func AssertContainsAll(t *testing.T, view string, parts ...string) {
	t.Helper()

	plain := Plain(view)
	for _, part := range parts {
		require.True(t, strings.Contains(plain, part), "view does not contain %q:\n%s", part, plain)
	}
}
