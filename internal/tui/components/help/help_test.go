package help

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/justchokingaround/showcase/internal/tui/tuitest"
)

func TestHelpHiddenByDefault(t *testing.T) {
	m := New()
	m.SetSize(80, 30)
	assert.False(t, m.IsVisible())
	assert.Empty(t, m.View())
}

func TestHelpView(t *testing.T) {
	tests := []struct {
		name    string
		ctx     HelpContext
		want    []string
		notWant string
	}{
		{
			name:    "catalog",
			ctx:     CatalogContext,
			want:    []string{"KEYBOARD SHORTCUTS", "General", "Catalog", "Open show details"},
			notWant: "Read more",
		},
		{
			name:    "detail",
			ctx:     DetailContext,
			want:    []string{"KEYBOARD SHORTCUTS", "General", "Show details", "Read more / show less"},
			notWant: "First/last show",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			m.SetSize(80, 30)
			m.SetContext(tt.ctx)
			m.Show()

			view := tuitest.Plain(m.View())
			tuitest.AssertContainsAll(t, view, tt.want...)
			assert.NotContains(t, view, tt.notWant)
		})
	}
}

func TestHelpScrollClamps(t *testing.T) {
	m := New()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	m.Show()

	for i := 0; i < 50; i++ {
		m, _ = m.Update(tuitest.Key("down"))
	}
	assert.Equal(t, m.clampOffset(len(m.lines())), m.scrollOffset)

	m, _ = m.Update(tuitest.Key("g"))
	assert.Zero(t, m.scrollOffset)

	m.Hide()
	m, _ = m.Update(tuitest.Key("down"))
	assert.Zero(t, m.scrollOffset)
}
