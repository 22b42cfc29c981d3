package utils

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// dateLayouts maps a locale tag to its short calendar date layout.
var dateLayouts = map[string]string{
	"en-us": "1/2/2006",
	"en-gb": "02/01/2006",
	"en-au": "02/01/2006",
	"fr-fr": "02/01/2006",
	"de-de": "2.1.2006",
	"nl-nl": "2-1-2006",
	"ja-jp": "2006/1/2",
	"sv-se": "2006-01-02",
	"iso":   "2006-01-02",
}

// DefaultLocale is used for unknown or empty locale tags.
const DefaultLocale = "en-US"

// FormatDate renders the calendar date of t in the given locale, as seen in
// loc. A nil loc means the local zone. Time of day is dropped.
func FormatDate(t time.Time, locale string, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	layout, ok := dateLayouts[strings.ToLower(strings.ReplaceAll(locale, "_", "-"))]
	if !ok {
		layout = dateLayouts[strings.ToLower(DefaultLocale)]
	}
	return t.In(loc).Format(layout)
}

// RelativeAge renders how long ago t was relative to now, e.g. "3 days ago".
func RelativeAge(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}
