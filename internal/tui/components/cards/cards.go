package cards

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justchokingaround/showcase/internal/catalog"
	"github.com/justchokingaround/showcase/internal/tui/styles"
	"github.com/justchokingaround/showcase/internal/tui/utils"
)

const (
	// header: title line, count line, blank line
	headerHeight = 3
	// footer: blank line, help line
	footerHeight = 2
	cardGap      = 1
)

// span is the range of content lines a card occupies, end exclusive, and
// the columns its box covers.
type span struct {
	start, end int
	left, right int
}

// Model is the scrollable card list.
type Model struct {
	lookup catalog.Lookup
	locale   string
	location *time.Location
	now      func() time.Time

	cards    []Card
	spans    []span
	cursor   int
	viewport viewport.Model
	width    int
	height   int
}

// Options configures the card list.
type Options struct {
	Locale string
	// Location is the zone dates are shown in; nil means local time.
	Location *time.Location
	Now      func() time.Time
}

func New(lookup catalog.Lookup, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true
	return Model{
		lookup:   lookup,
		locale:   opts.Locale,
		location: opts.Location,
		now:      opts.Now,
		viewport: vp,
		width:    80,
		height:   20 + headerHeight + footerHeight,
	}
}

// RenderCatalog replaces the card list with one card per show, in the given
// order. The cursor and scroll offset go back to the top.
func (m *Model) RenderCatalog(shows []catalog.Show) {
	now := m.now()
	cards := make([]Card, 0, len(shows))
	for _, show := range shows {
		cards = append(cards, NewCard(show, m.lookup, m.locale, m.location, now))
	}

	m.cards = cards
	m.cursor = 0
	m.refresh()
	m.viewport.GotoTop()
}

// Cards returns the current cards.
func (m Model) Cards() []Card {
	return m.cards
}

// Cursor returns the index of the highlighted card.
func (m Model) Cursor() int {
	return m.cursor
}

// YOffset returns the list's scroll offset.
func (m Model) YOffset() int {
	return m.viewport.YOffset
}

// CardAt returns the index of the card rendered at screen cell (x, y), or -1.
// The left margin beside a card and the space after it do not count.
func (m Model) CardAt(x, y int) int {
	line := y - headerHeight
	if line < 0 || line >= m.viewport.Height {
		return -1
	}
	line += m.viewport.YOffset
	for i, s := range m.spans {
		if line >= s.start && line < s.end && x >= s.left && x < s.right {
			return i
		}
	}
	return -1
}

func (m *Model) SetSize(width, height int) {
	if width <= 0 {
		width = 80 // Fallback width
	}
	if height <= 0 {
		height = 24 // Fallback height
	}
	m.width = width
	m.height = height

	vpHeight := height - headerHeight - footerHeight
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = vpHeight
	m.refresh()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.moveCursor(-1)
		case "down", "j":
			m.moveCursor(1)
		case "home", "g":
			m.moveCursor(-len(m.cards))
		case "end", "G":
			m.moveCursor(len(m.cards))
		case "pgup":
			m.viewport.HalfPageUp()
		case "pgdown":
			m.viewport.HalfPageDown()
		case "enter":
			if m.cursor < len(m.cards) {
				return m, m.cards[m.cursor].Activate()
			}
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i := m.CardAt(msg.X, msg.Y); i >= 0 {
				m.cursor = i
				m.refresh()
				return m, m.cards[i].Activate()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if len(m.cards) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > len(m.cards)-1 {
		m.cursor = len(m.cards) - 1
	}
	m.refresh()
	m.scrollToCursor()
}

func (m *Model) scrollToCursor() {
	if m.cursor >= len(m.spans) {
		return
	}
	s := m.spans[m.cursor]
	if s.start < m.viewport.YOffset {
		m.viewport.SetYOffset(s.start)
	} else if s.end > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(s.end - m.viewport.Height)
	}
}

// refresh re-renders every card and records where each one lands.
func (m *Model) refresh() {
	var content strings.Builder
	m.spans = make([]span, len(m.cards))

	line := 0
	for i, card := range m.cards {
		rendered := m.renderCard(card, i == m.cursor)
		h := lipgloss.Height(rendered)
		m.spans[i] = span{
			start: line,
			end:   line + h,
			left:  styles.CardStyle.GetMarginLeft(),
			right: lipgloss.Width(rendered),
		}

		content.WriteString(rendered)
		if i < len(m.cards)-1 {
			content.WriteString(strings.Repeat("\n", cardGap+1))
		}
		line += h + cardGap
	}

	offset := m.viewport.YOffset
	m.viewport.SetContent(content.String())
	m.viewport.SetYOffset(offset)
}

func (m Model) renderCard(card Card, selected bool) string {
	boxStyle := styles.CardStyle
	titleStyle := styles.CardTitleStyle
	metaStyle := styles.MetadataStyle

	if selected {
		boxStyle = styles.CardSelectedStyle
		titleStyle = titleStyle.Foreground(styles.OxocarbonPurple)
		metaStyle = metaStyle.Foreground(styles.OxocarbonMauve)
	}

	// border, padding and margin take 8 cells
	width := m.width - 8
	if width < 20 {
		width = 20
	}

	cover := "▣ " + card.Alt
	if card.Image != "" {
		cover += " · " + card.Image
	}

	genres := card.Genres
	if genres == "" {
		genres = " "
	}

	lines := []string{
		titleStyle.Render(utils.TruncateWithWidth(card.Title, width)),
		styles.ImageStyle.Render(utils.TruncateWithWidth(cover, width)),
		metaStyle.Render(utils.TruncateWithWidth(genres, width)),
		metaStyle.Render(utils.TruncateWithWidth(
			fmt.Sprintf("%s • Updated: %s (%s)", card.Seasons, card.Updated, card.Age), width)),
	}

	return boxStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) View() string {
	if len(m.cards) == 0 {
		return styles.SubtitleStyle.Render("\nNo shows in the catalog.\n\nPress 'q' to quit.")
	}

	header := styles.TitleStyle.Render("  SHOWS  ")
	count := styles.SubtitleStyle.Render(fmt.Sprintf("  %d shows", len(m.cards)))
	help := styles.HelpStyle.Render("  ↑/↓ nav • enter/click open • ? help • q quit")

	return header + "\n" + count + "\n\n" + m.viewport.View() + "\n" + help
}
