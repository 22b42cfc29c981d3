package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset() *Dataset {
	return &Dataset{
		Shows: []Show{
			{ID: "1", Title: "One", Genres: []int{10}},
			{ID: "2", Title: "Two", Genres: []int{10, 99}},
		},
		Genres: []Genre{
			{ID: 10, Title: "Drama"},
			{ID: 11, Title: "Comedy"},
		},
		Seasons: []SeasonRecord{
			{ShowID: "2", Seasons: []SeasonDetail{
				{Title: "Season 1", Episodes: 8},
				{Title: "Season 2", Episodes: 6},
			}},
		},
	}
}

func TestGenreName(t *testing.T) {
	r := NewResolver(testDataset(), nil)

	tests := []struct {
		name     string
		id       int
		expected string
	}{
		{"resolves known genre", 10, "Drama"},
		{"resolves second genre", 11, "Comedy"},
		{"falls back for unknown id", 99, "Genre 99"},
		{"falls back for zero", 0, "Genre 0"},
		{"falls back for negative id", -3, "Genre -3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.GenreName(tt.id))
		})
	}
}

func TestSeasons(t *testing.T) {
	r := NewResolver(testDataset(), nil)

	t.Run("returns details in order", func(t *testing.T) {
		seasons := r.Seasons("2")
		require.Len(t, seasons, 2)
		assert.Equal(t, "Season 1", seasons[0].Title)
		assert.Equal(t, 8, seasons[0].Episodes)
		assert.Equal(t, "Season 2", seasons[1].Title)
	})

	t.Run("returns empty slice without a record", func(t *testing.T) {
		seasons := r.Seasons("1")
		assert.NotNil(t, seasons)
		assert.Empty(t, seasons)
	})

	t.Run("result does not alias the dataset", func(t *testing.T) {
		d := testDataset()
		r := NewResolver(d, nil)
		seasons := r.Seasons("2")
		seasons[0].Title = "changed"
		assert.Equal(t, "Season 1", d.Seasons[0].Seasons[0].Title)
	})
}

func TestShowByID(t *testing.T) {
	d := testDataset()

	s, ok := d.ShowByID("2")
	require.True(t, ok)
	assert.Equal(t, "Two", s.Title)

	_, ok = d.ShowByID("missing")
	assert.False(t, ok)
}
