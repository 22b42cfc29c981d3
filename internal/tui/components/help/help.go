package help

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/justchokingaround/showcase/internal/tui/styles"
)

// HelpContext represents which view the help is being shown in
type HelpContext int

const (
	GlobalContext HelpContext = iota
	CatalogContext
	DetailContext
)

// Shortcut represents a keyboard shortcut with its description
type Shortcut struct {
	Key         string
	Description string
	Context     []HelpContext
}

// Model represents the help panel state
type Model struct {
	context      HelpContext
	width        int
	height       int
	visible      bool
	scrollOffset int
}

var allShortcuts = []Shortcut{
	{Key: "?", Description: "Show/hide this help", Context: []HelpContext{GlobalContext}},
	{Key: "ctrl+c", Description: "Quit application", Context: []HelpContext{GlobalContext}},

	{Key: "↑/↓ or j/k", Description: "Move between shows", Context: []HelpContext{CatalogContext}},
	{Key: "pgup/pgdown", Description: "Scroll a page", Context: []HelpContext{CatalogContext}},
	{Key: "g/G", Description: "First/last show", Context: []HelpContext{CatalogContext}},
	{Key: "enter/click", Description: "Open show details", Context: []HelpContext{CatalogContext}},
	{Key: "q", Description: "Quit application", Context: []HelpContext{CatalogContext}},

	{Key: "esc/x", Description: "Close details", Context: []HelpContext{DetailContext}},
	{Key: "r/enter", Description: "Read more / show less", Context: []HelpContext{DetailContext}},
	{Key: "↑/↓", Description: "Scroll details", Context: []HelpContext{DetailContext}},
	{Key: "click outside", Description: "Close details", Context: []HelpContext{DetailContext}},
}

// New creates a new help model
func New() Model {
	return Model{context: CatalogContext}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages. Keys other than scrolling are ignored; the caller
// decides which key hides the panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if !m.visible {
			return m, nil
		}
		switch msg.String() {
		case "up", "k":
			if m.scrollOffset > 0 {
				m.scrollOffset--
			}
		case "down", "j":
			m.scrollOffset = m.clampOffset(m.scrollOffset + 1)
		case "home", "g":
			m.scrollOffset = 0
		case "end", "G":
			m.scrollOffset = m.clampOffset(len(m.lines()))
		}
	}
	return m, nil
}

// View renders the help panel
func (m Model) View() string {
	if !m.visible || m.width == 0 || m.height == 0 {
		return ""
	}

	lines := m.lines()
	available := m.availableHeight()
	start := m.clampOffset(m.scrollOffset)
	end := start + available
	if end > len(lines) {
		end = len(lines)
	}

	scrollInfo := ""
	if len(lines) > available {
		scrollInfo = fmt.Sprintf(" (%d-%d/%d)", start+1, end, len(lines))
	}

	boxWidth := 64
	if m.width < boxWidth+4 {
		boxWidth = m.width - 4
		if boxWidth < 40 {
			boxWidth = 40
		}
	}

	titleBar := lipgloss.NewStyle().
		Foreground(styles.OxocarbonWhite).
		Background(styles.OxocarbonPurple).
		Padding(0, 2).
		Bold(true).
		Width(boxWidth - 4).
		Align(lipgloss.Center).
		Render("KEYBOARD SHORTCUTS" + scrollInfo)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OxocarbonPurple).
		Padding(0, 2).
		Width(boxWidth).
		Render(titleBar + "\n\n" + strings.Join(lines[start:end], "\n"))

	if lipgloss.Height(box) >= m.height {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// SetSize sets the terminal dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetContext sets the current help context
func (m *Model) SetContext(ctx HelpContext) {
	m.context = ctx
}

// Context returns the current help context
func (m Model) Context() HelpContext {
	return m.context
}

// Show shows the help panel
func (m *Model) Show() {
	m.visible = true
	m.scrollOffset = 0
}

// Hide hides the help panel
func (m *Model) Hide() {
	m.visible = false
	m.scrollOffset = 0
}

// IsVisible returns whether the help panel is visible
func (m Model) IsVisible() bool {
	return m.visible
}

func (m Model) lines() []string {
	var b strings.Builder
	b.WriteString(styles.HelpStyle.UnsetMarginTop().Render("↑/↓ j/k scroll • g/G top/bottom • esc/? close"))
	b.WriteString("\n\n")

	global := filterBySpecificContext(allShortcuts, GlobalContext)
	b.WriteString(styles.SubtitleStyle.Render("General") + "\n")
	for _, sc := range global {
		b.WriteString(renderShortcutLine(sc) + "\n")
	}

	if name := m.contextName(); name != "" {
		b.WriteString("\n" + styles.SubtitleStyle.Render(name) + "\n")
		for _, sc := range filterBySpecificContext(allShortcuts, m.context) {
			b.WriteString(renderShortcutLine(sc) + "\n")
		}
	}

	return strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
}

func (m Model) availableHeight() int {
	h := m.height - 6
	if h < 10 {
		h = 10
	}
	return h
}

func (m Model) clampOffset(offset int) int {
	maxOffset := len(m.lines()) - m.availableHeight()
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func (m Model) contextName() string {
	switch m.context {
	case CatalogContext:
		return "Catalog"
	case DetailContext:
		return "Show details"
	default:
		return ""
	}
}

func renderShortcutLine(sc Shortcut) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(styles.OxocarbonPurple).
		Bold(true).
		Width(18)

	descStyle := lipgloss.NewStyle().
		Foreground(styles.OxocarbonBase05)

	return "  " + keyStyle.Render(sc.Key) + descStyle.Render(sc.Description)
}

// filterBySpecificContext returns the shortcuts tagged with ctx
func filterBySpecificContext(shortcuts []Shortcut, ctx HelpContext) []Shortcut {
	var filtered []Shortcut
	for _, sc := range shortcuts {
		for _, c := range sc.Context {
			if c == ctx {
				filtered = append(filtered, sc)
				break
			}
		}
	}
	return filtered
}
