package datefmt

import (
	"strings"
	"time"

	"github.com/relvacode/iso8601"
	"github.com/volatiletech/null/v8"
)

var (
	// date-times without zone designator are wall-clock times in the display location
	localLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04",
	}

	fallbackLayouts = []string{
		time.RFC1123Z,
		time.RFC1123,
		time.RFC850,
		time.UnixDate,
		time.ANSIC,
		"2006-01-02 15:04:05 -0700 MST", // time.Time.String()
		"2006-01-02",
	}
)

// Instant resolves v into a point in time. ok is false when v is absent, of an unsupported type,
// the zero time or an unparseable string.
func (f *Formatter) Instant(v interface{}) (t time.Time, ok bool) {
	switch val := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		t = val
	case *time.Time:
		if val == nil {
			return time.Time{}, false
		}
		t = *val
	case null.Time:
		if !val.Valid {
			return time.Time{}, false
		}
		t = val.Time
	case *null.Time:
		if val == nil || !val.Valid {
			return time.Time{}, false
		}
		t = val.Time
	case string:
		return f.Parse(val)
	case *string:
		if val == nil {
			return time.Time{}, false
		}
		return f.Parse(*val)
	default:
		return time.Time{}, false
	}
	return t, !t.IsZero()
}

// Parse parses a serialized timestamp. ISO 8601 date-only strings are UTC midnight,
// ISO 8601 date-times without zone are read in the display location.
func (f *Formatter) Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, f.Location()); err == nil {
			return t, true
		}
	}
	if t, err := iso8601.ParseString(s); err == nil {
		return t, !t.IsZero()
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
