package detail

import (
	"log/slog"
	"math"
	"time"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justchokingaround/showcase/internal/catalog"
	"github.com/justchokingaround/showcase/internal/tui/common"
	"github.com/justchokingaround/showcase/internal/tui/styles"
	"github.com/justchokingaround/showcase/internal/tui/utils"
)

const (
	maxBoxWidth = 80
	// border (2) + horizontal padding (4)
	boxFrameWidth = 6
	// border (2) + vertical padding (2)
	boxFrameHeight = 4
)

// Model is the detail overlay. Its State changes only through Open, Close
// and ToggleDescription.
type Model struct {
	lookup   catalog.Lookup
	locale   string
	location *time.Location
	logger   *slog.Logger

	state    State
	fields   Fields
	viewport viewport.Model
	width    int
	height   int
}

// New builds a closed overlay. Dates are shown in loc, or local time when
// loc is nil.
func New(lookup catalog.Lookup, locale string, loc *time.Location, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	vp := viewport.New(maxBoxWidth-boxFrameWidth, 10)
	vp.MouseWheelEnabled = true
	return Model{
		lookup:   lookup,
		locale:   locale,
		location: loc,
		logger:   logger,
		viewport: vp,
		width:    maxBoxWidth + 4,
		height:   24,
	}
}

// State returns a copy of the overlay state.
func (m Model) State() State {
	return m.state
}

// Fields returns the populated regions.
func (m Model) Fields() Fields {
	return m.fields
}

func (m Model) IsOpen() bool {
	return m.state.Visible
}

// ScrollLocked reports whether the page behind the overlay must not scroll.
func (m Model) ScrollLocked() bool {
	return m.state.ScrollLocked
}

// Open selects show and fills every region from it. Opening again, with the
// same or another show, replaces everything and collapses the description.
func (m *Model) Open(show catalog.Show) {
	tags := make([]string, 0, len(show.Genres))
	for _, id := range show.Genres {
		tags = append(tags, m.lookup.GenreName(id))
	}

	details := m.lookup.Seasons(show.ID)
	rows := make([]string, 0, len(details))
	for _, s := range details {
		rows = append(rows, seasonRow(s.Title, s.Episodes))
	}
	if len(rows) == 0 {
		rows = append(rows, NoSeasonsText)
	}

	m.fields.Title = show.Title
	m.fields.Image = show.Image
	m.fields.Alt = show.Title
	m.fields.Description = newDescription(show.Description)
	m.fields.GenreTags = tags
	m.fields.Seasons = rows
	m.fields.Updated = utils.FormatDate(show.Updated, m.locale, m.location)

	m.state.SelectedShowID = show.ID
	m.state.HasSelection = true
	m.state.Expanded = false
	m.state.ScrollLocked = true
	m.state.Visible = true

	m.refresh()
	m.viewport.GotoTop()

	m.logger.Debug("overlay opened", "show_id", show.ID, "truncated", m.fields.Description.HasToggle)
}

// ToggleDescription swaps the short and full description. It reports false
// and changes nothing when the overlay is closed or the description fits.
func (m *Model) ToggleDescription() bool {
	d := &m.fields.Description
	if !m.state.Visible || !d.HasToggle {
		return false
	}

	d.ShortHidden = !d.ShortHidden
	d.FullHidden = !d.FullHidden
	if d.FullHidden {
		d.ToggleLabel = ReadMoreLabel
	} else {
		d.ToggleLabel = ShowLessLabel
	}
	m.state.Expanded = !d.FullHidden

	offset := m.viewport.YOffset
	m.refresh()
	m.viewport.SetYOffset(offset)
	return true
}

// Close hides the overlay and releases the scroll lock. Selection and
// expansion are left for the next Open to overwrite.
func (m *Model) Close() {
	if !m.state.Visible {
		return
	}
	m.state.Visible = false
	m.state.ScrollLocked = false
	m.logger.Debug("overlay closed", "show_id", m.state.SelectedShowID)
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

	offset := m.viewport.YOffset
	m.refresh()
	m.viewport.SetYOffset(offset)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	if !m.state.Visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "x":
			return m, m.close()
		case "r", "enter":
			m.ToggleDescription()
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if !m.inContent(msg.X, msg.Y) {
				return m, m.close()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) close() tea.Cmd {
	id := m.state.SelectedShowID
	m.Close()
	return func() tea.Msg {
		return common.OverlayClosedMsg{ShowID: id}
	}
}

// boxWidth is the overlay's outer width.
func (m Model) boxWidth() int {
	w := m.width - 4
	if w > maxBoxWidth {
		w = maxBoxWidth
	}
	if w < boxFrameWidth+20 {
		w = boxFrameWidth + 20
	}
	return w
}

// refresh renders the regions into the viewport and sizes it to fit.
func (m *Model) refresh() {
	m.viewport.Width = m.boxWidth() - boxFrameWidth
	content := m.renderBody(m.viewport.Width)

	maxBody := m.height - boxFrameHeight - 2
	if maxBody < 3 {
		maxBody = 3
	}
	h := lipgloss.Height(content)
	if h > maxBody {
		h = maxBody
	}
	m.viewport.Height = h
	m.viewport.SetContent(content)
}

func (m Model) renderBody(width int) string {
	f := m.fields
	var b strings.Builder

	b.WriteString(styles.CardTitleStyle.Render(utils.TruncateWithWidth(f.Title, width)) + "\n")
	cover := "▣ " + f.Alt
	if f.Image != "" {
		cover += " · " + f.Image
	}
	b.WriteString(styles.ImageStyle.Render(utils.TruncateWithWidth(cover, width)) + "\n")
	b.WriteString(styles.MetadataStyle.Render("Updated: "+f.Updated) + "\n\n")

	b.WriteString(renderGenreBadges(f.GenreTags, width) + "\n\n")

	b.WriteString(styles.HeaderStyle.Render("Description") + "\n")
	for _, line := range utils.WrapText(f.Description.Text(), width) {
		b.WriteString(styles.DescriptionStyle.Render(line) + "\n")
	}
	if f.Description.HasToggle {
		b.WriteString(styles.ToggleStyle.Render(f.Description.ToggleLabel) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.HeaderStyle.Render("Seasons") + "\n")
	for i, row := range f.Seasons {
		if len(f.Seasons) == 1 && row == NoSeasonsText {
			b.WriteString(styles.PlaceholderStyle.Render(row))
		} else {
			b.WriteString(styles.SeasonRowStyle.Render(utils.TruncateWithWidth(row, width-2)))
		}
		if i < len(f.Seasons)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) renderBox() string {
	help := "esc close • ↑/↓ scroll • ? help"
	if m.fields.Description.HasToggle {
		help = "esc close • r " + strings.ToLower(m.fields.Description.ToggleLabel) + " • ↑/↓ scroll • ? help"
	}
	body := m.viewport.View() + "\n" + styles.HelpStyle.Render(help)

	return styles.OverlayStyle.
		Width(m.boxWidth() - 2).
		Render(body)
}

// contentBounds returns the box's top-left corner and size on screen. It
// matches how lipgloss.Place centers the box in View.
func (m Model) contentBounds() (x, y, w, h int) {
	box := m.renderBox()
	w = lipgloss.Width(box)
	h = lipgloss.Height(box)
	return centerOffset(m.width, w), centerOffset(m.height, h), w, h
}

func centerOffset(outer, inner int) int {
	gap := outer - inner
	if gap <= 0 {
		return 0
	}
	return gap - int(math.Round(float64(gap)*0.5))
}

func (m Model) inContent(x, y int) bool {
	bx, by, bw, bh := m.contentBounds()
	return x >= bx && x < bx+bw && y >= by && y < by+bh
}

func (m Model) View() string {
	if !m.state.Visible {
		return ""
	}
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		m.renderBox(),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(styles.OxocarbonBlack))
}
