package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		n         int
		expected  string
		truncated bool
	}{
		{"shorter than limit", "hello", 10, "hello", false},
		{"exactly at limit", "hello", 5, "hello", false},
		{"one over limit", "hello!", 5, "hello...", true},
		{"counts runes not bytes", "héllo wörld", 5, "héllo...", true},
		{"empty string", "", 3, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, truncated := TruncateRunes(tt.input, tt.n)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, tt.truncated, truncated)
		})
	}
}

func TestWrapText(t *testing.T) {
	lines := WrapText("the quick brown fox jumps over the lazy dog", 10)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 10)
	}
	assert.Equal(t, "the quick brown fox jumps over the lazy dog", strings.Join(lines, " "))

	assert.Empty(t, WrapText("   ", 10))
}

func TestTruncateWithWidth(t *testing.T) {
	assert.Equal(t, "short", TruncateWithWidth("short", 10))
	assert.Equal(t, "abcdefg...", TruncateWithWidth("abcdefghijklmnop", 10))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2022, 11, 3, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		locale   string
		expected string
	}{
		{"en-US", "11/3/2022"},
		{"en_GB", "03/11/2022"},
		{"de-DE", "3.11.2022"},
		{"iso", "2022-11-03"},
		{"", "11/3/2022"},
		{"xx-YY", "11/3/2022"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDate(ts, tt.locale, time.UTC))
		})
	}
}

func TestFormatDateUsesViewerZone(t *testing.T) {
	ts := time.Date(2022, 11, 3, 7, 0, 0, 0, time.UTC)
	pacific := time.FixedZone("PST", -8*60*60)
	tokyo := time.FixedZone("JST", 9*60*60)

	assert.Equal(t, "11/3/2022", FormatDate(ts, "en-US", time.UTC))
	assert.Equal(t, "11/2/2022", FormatDate(ts, "en-US", pacific))
	assert.Equal(t, "11/3/2022", FormatDate(ts, "en-US", tokyo))
	assert.Equal(t, ts.In(time.Local).Format("2006-01-02"), FormatDate(ts, "iso", nil))
}

func TestRelativeAge(t *testing.T) {
	now := time.Date(2022, 11, 6, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "3 days ago", RelativeAge(now.Add(-72*time.Hour), now))
}
