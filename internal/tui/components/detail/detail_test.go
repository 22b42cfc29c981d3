package detail

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justchokingaround/showcase/internal/catalog"
	"github.com/justchokingaround/showcase/internal/tui/common"
	"github.com/justchokingaround/showcase/internal/tui/tuitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset() *catalog.Dataset {
	return &catalog.Dataset{
		Shows: []catalog.Show{
			{
				ID:          "1",
				Title:       "Short Story",
				Image:       "https://img/1.jpg",
				Description: strings.Repeat("a", 50),
				Genres:      []int{10},
				Seasons:     2,
				Updated:     time.Date(2022, 11, 3, 7, 0, 0, 0, time.UTC),
			},
			{
				ID:          "2",
				Title:       "Long Story",
				Description: strings.Repeat("b", 250),
				Genres:      []int{11, 404, 10},
				Seasons:     2,
				Updated:     time.Date(2021, 1, 9, 7, 0, 0, 0, time.UTC),
			},
		},
		Genres: []catalog.Genre{
			{ID: 10, Title: "Drama"},
			{ID: 11, Title: "History"},
		},
		Seasons: []catalog.SeasonRecord{
			{ShowID: "2", Seasons: []catalog.SeasonDetail{
				{Title: "Season 1", Episodes: 10},
				{Title: "Season 2", Episodes: 0},
			}},
		},
	}
}

func newModel() (Model, *catalog.Dataset) {
	d := testDataset()
	m := New(catalog.NewResolver(d, nil), "en-US", time.UTC, nil)
	m.SetSize(120, 40)
	return m, d
}

func showWithDescription(n int) catalog.Show {
	return catalog.Show{ID: "x", Title: "X", Description: strings.Repeat("é", n)}
}

func TestInitialStateIsClosed(t *testing.T) {
	m, _ := newModel()

	assert.Equal(t, State{}, m.State())
	assert.False(t, m.IsOpen())
	assert.False(t, m.ScrollLocked())
	assert.Empty(t, m.View())
}

func TestOpenShortDescriptionScenario(t *testing.T) {
	m, d := newModel()

	m.Open(d.Shows[0])

	st := m.State()
	assert.True(t, st.Visible)
	assert.True(t, st.ScrollLocked)
	assert.True(t, st.HasSelection)
	assert.Equal(t, "1", st.SelectedShowID)
	assert.False(t, st.Expanded)

	f := m.Fields()
	assert.Equal(t, "Short Story", f.Title)
	assert.Equal(t, "https://img/1.jpg", f.Image)
	assert.Equal(t, "Short Story", f.Alt)
	assert.Equal(t, []string{"Drama"}, f.GenreTags)
	assert.Equal(t, []string{NoSeasonsText}, f.Seasons)
	assert.Equal(t, "11/3/2022", f.Updated)

	assert.False(t, f.Description.HasToggle)
	assert.Equal(t, strings.Repeat("a", 50), f.Description.Text())

	tuitest.AssertContainsAll(t, m.View(), "Short Story", "Drama", "no seasons available", "Updated: 11/3/2022")
	assert.NotContains(t, tuitest.Plain(m.View()), ReadMoreLabel)
}

func TestOpenResolvesGenresAndSeasonsInOrder(t *testing.T) {
	m, d := newModel()

	m.Open(d.Shows[1])

	f := m.Fields()
	assert.Equal(t, []string{"History", "Genre 404", "Drama"}, f.GenreTags)
	assert.Equal(t, []string{"Season 1 - 10 episodes", "Season 2 - 0 episodes"}, f.Seasons)
}

func TestDescriptionThresholdBoundary(t *testing.T) {
	m, _ := newModel()

	m.Open(showWithDescription(DescriptionThreshold))
	d := m.Fields().Description
	assert.False(t, d.HasToggle)
	assert.Equal(t, strings.Repeat("é", 180), d.Text())

	m.Open(showWithDescription(DescriptionThreshold + 1))
	d = m.Fields().Description
	require.True(t, d.HasToggle)
	assert.Equal(t, ReadMoreLabel, d.ToggleLabel)
	assert.Equal(t, strings.Repeat("é", 180)+"...", d.Short)
	assert.Equal(t, strings.Repeat("é", 181), d.Full)
	assert.Equal(t, d.Short, d.Text())
	assert.False(t, d.ShortHidden)
	assert.True(t, d.FullHidden)
}

func TestToggleIsAnInvolution(t *testing.T) {
	m, d := newModel()
	m.Open(d.Shows[1])
	before := m.Fields().Description

	require.True(t, m.ToggleDescription())
	expanded := m.Fields().Description
	assert.Equal(t, ShowLessLabel, expanded.ToggleLabel)
	assert.Equal(t, strings.Repeat("b", 250), expanded.Text())
	assert.True(t, expanded.ShortHidden)
	assert.False(t, expanded.FullHidden)
	assert.True(t, m.State().Expanded)

	require.True(t, m.ToggleDescription())
	assert.Equal(t, before, m.Fields().Description)
	assert.False(t, m.State().Expanded)
}

func TestToggleWithoutToggleControlHasNoEffect(t *testing.T) {
	m, d := newModel()
	m.Open(d.Shows[0])
	before := m.Fields()

	assert.False(t, m.ToggleDescription())
	assert.Equal(t, before, m.Fields())
	assert.False(t, m.State().Expanded)

	m, _ = m.Update(tuitest.Key("r"))
	assert.Equal(t, before, m.Fields())
}

func TestToggleWhileClosedHasNoEffect(t *testing.T) {
	m, d := newModel()
	m.Open(d.Shows[1])
	m.Close()

	assert.False(t, m.ToggleDescription())
	assert.False(t, m.State().Expanded)
}

func TestOpenTwiceIsIdempotentAndCollapses(t *testing.T) {
	m, d := newModel()

	m.Open(d.Shows[1])
	once := m.Fields()
	onceView := m.View()

	m.ToggleDescription()
	require.True(t, m.State().Expanded)

	m.Open(d.Shows[1])
	m.Open(d.Shows[1])

	assert.Equal(t, once, m.Fields())
	assert.Equal(t, onceView, m.View())
	assert.False(t, m.State().Expanded)
	assert.Equal(t, ReadMoreLabel, m.Fields().Description.ToggleLabel)
}

func TestOpenAnotherShowReplacesFields(t *testing.T) {
	m, d := newModel()

	m.Open(d.Shows[1])
	m.Open(d.Shows[0])

	f := m.Fields()
	assert.Equal(t, "1", m.State().SelectedShowID)
	assert.Equal(t, "Short Story", f.Title)
	assert.Equal(t, []string{"Drama"}, f.GenreTags)
	assert.Equal(t, []string{NoSeasonsText}, f.Seasons)
	assert.False(t, f.Description.HasToggle)
}

func TestCloseKeepsSelection(t *testing.T) {
	m, d := newModel()
	m.Open(d.Shows[1])
	m.ToggleDescription()

	m.Close()

	st := m.State()
	assert.False(t, st.Visible)
	assert.False(t, st.ScrollLocked)
	assert.Equal(t, "2", st.SelectedShowID)
	assert.True(t, st.Expanded)
	assert.Empty(t, m.View())
}

func TestCloseControl(t *testing.T) {
	for _, key := range []string{"esc", "x"} {
		t.Run(key, func(t *testing.T) {
			m, d := newModel()
			m.Open(d.Shows[0])

			m, cmd := m.Update(tuitest.Key(key))

			assert.False(t, m.IsOpen())
			assert.False(t, m.ScrollLocked())
			assert.Equal(t, common.OverlayClosedMsg{ShowID: "1"}, tuitest.Exec(cmd))
		})
	}
}

func TestToggleKey(t *testing.T) {
	m, d := newModel()
	m.Open(d.Shows[1])

	m, _ = m.Update(tuitest.Key("r"))
	assert.True(t, m.State().Expanded)
	tuitest.AssertContainsAll(t, m.View(), ShowLessLabel)

	m, _ = m.Update(tuitest.Key("enter"))
	assert.False(t, m.State().Expanded)
	tuitest.AssertContainsAll(t, m.View(), ReadMoreLabel)
}

func TestBackdropClickCloses(t *testing.T) {
	m, d := newModel()
	m.Open(d.Shows[0])

	m, cmd := m.Update(tuitest.Click(0, 0))

	assert.False(t, m.IsOpen())
	assert.False(t, m.ScrollLocked())
	assert.IsType(t, common.OverlayClosedMsg{}, tuitest.Exec(cmd))
}

func TestContentClickKeepsOverlayOpen(t *testing.T) {
	m, d := newModel()
	m.Open(d.Shows[0])
	before := m.State()

	x, y, w, h := m.contentBounds()
	for _, p := range [][2]int{{x, y}, {x + w/2, y + h/2}, {x + w - 1, y + h - 1}} {
		var cmd tea.Cmd
		m, cmd = m.Update(tuitest.Click(p[0], p[1]))
		assert.Nil(t, cmd)
		assert.Equal(t, before, m.State())
	}

	// just outside the box edges
	m, _ = m.Update(tuitest.Click(x+w, y))
	assert.False(t, m.IsOpen())
}

func TestInputIgnoredWhileClosed(t *testing.T) {
	m, _ := newModel()

	m, cmd := m.Update(tuitest.Click(0, 0))
	assert.Nil(t, cmd)
	m, cmd = m.Update(tuitest.Key("esc"))
	assert.Nil(t, cmd)
	assert.Equal(t, State{}, m.State())
}

func TestContentBoundsAreCentered(t *testing.T) {
	m, d := newModel()
	m.Open(d.Shows[1])

	x, y, w, h := m.contentBounds()
	assert.Equal(t, maxBoxWidth, w)
	assert.Equal(t, 20, x)

	lines := strings.Split(tuitest.Plain(m.View()), "\n")
	require.Len(t, lines, 40)
	assert.Equal(t, "╭", string([]rune(lines[y])[x]))
	assert.Equal(t, "╯", string([]rune(lines[y+h-1])[x+w-1]))
}

func TestRenderGenreBadgesWraps(t *testing.T) {
	assert.Empty(t, renderGenreBadges(nil, 40))

	one := tuitest.Plain(renderGenreBadges([]string{"Drama", "Comedy"}, 40))
	assert.Equal(t, 1, strings.Count(one, "\n")+1)
	tuitest.AssertContainsAll(t, one, "Drama", "Comedy")

	wrapped := tuitest.Plain(renderGenreBadges([]string{"Drama", "Comedy", "History"}, 12))
	lines := strings.Split(wrapped, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Drama")
	assert.Contains(t, lines[2], "History")
}
