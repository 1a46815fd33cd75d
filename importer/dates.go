package importer

import "time"

// dateLayouts are tried in order. The sources mix ISO dates, slashed
// numerals (month-first, as the sheets are edited through tools that write
// them that way) and spelled-out months; ambiguous all-numeric forms resolve
// to the first matching layout.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"02-01-2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// ParseDate best-effort parses a calendar date.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// dateOr parses s, falling back to now; empty and unparseable values are
// not worth rejecting a row over.
func dateOr(s string, now time.Time) time.Time {
	if s == "" {
		return now
	}

	if t, ok := ParseDate(s); ok {
		return t
	}

	return now
}
