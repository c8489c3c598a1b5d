// Package datefmt formats instants for display: time of day, calendar dates and "time ago" strings.
//
// Every formatter accepts an instant given as time.Time, *time.Time, null.Time, *null.Time,
// string or *string. Absent or unparseable instants are rendered as Placeholder, formatters never fail.
package datefmt

import (
	"fmt"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
)

// Placeholder is displayed in place of absent or malformed instants.
const Placeholder = "--"

// Mode selects the layout used by FormatDate.
type Mode string

const (
	Full     Mode = "full"      // January 5, 2025
	Short    Mode = "short"     // Jan 5
	MonthDay Mode = "month-day" // January 5
)

type (
	// Formatter formats instants using its own clock, display location & locale.
	// The locale supplies month names, layouts & AM/PM markers follow en-US.
	// The zero value is usable: it formats in time.Local, with time.Now and the en locale.
	Formatter struct {
		now    func() time.Time
		loc    *time.Location
		locale locales.Translator
	}

	Option func(f *Formatter)
)

func WithClock(now func() time.Time) Option {
	return func(f *Formatter) { f.now = now }
}

func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) { f.loc = loc }
}

func WithLocale(locale locales.Translator) Option {
	return func(f *Formatter) { f.locale = locale }
}

func New(opts ...Option) *Formatter {
	f := &Formatter{
		now:    time.Now,
		loc:    time.Local,
		locale: en.New(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Now returns the current instant according to the Formatter's clock.
func (f *Formatter) Now() time.Time {
	if f.now == nil {
		return time.Now()
	}
	return f.now()
}

// Location returns the display location.
func (f *Formatter) Location() *time.Location {
	if f.loc == nil {
		return time.Local
	}
	return f.loc
}

func (f *Formatter) translator() locales.Translator {
	if f.locale == nil {
		f.locale = en.New()
	}
	return f.locale
}

// FormatTime renders the local hour:minute on a 12-hour clock, eg. "2:05 PM".
func (f *Formatter) FormatTime(instant interface{}) string {
	t, ok := f.Instant(instant)
	if !ok {
		return Placeholder
	}
	return t.In(f.Location()).Format("3:04 PM")
}

// FormatDate renders the local calendar date of instant using mode (Full when omitted).
// Unknown modes fall back to the locale's default numeric date, eg. "1/5/2025".
func (f *Formatter) FormatDate(instant interface{}, mode ...Mode) string {
	t, ok := f.Instant(instant)
	if !ok {
		return Placeholder
	}
	t = t.In(f.Location())

	m := Full
	if len(mode) > 0 {
		m = mode[0]
	}
	tr := f.translator()
	switch m {
	case Full:
		return fmt.Sprintf("%s %d, %d", tr.MonthWide(t.Month()), t.Day(), t.Year())
	case Short:
		return fmt.Sprintf("%s %d", tr.MonthAbbreviated(t.Month()), t.Day())
	case MonthDay:
		return fmt.Sprintf("%s %d", tr.MonthWide(t.Month()), t.Day())
	default:
		return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
	}
}

// FormatRelativeTime renders how long ago instant was, eg. "3 hours ago".
// Months are 30 days long. Instants in the future yield negative seconds.
func (f *Formatter) FormatRelativeTime(instant interface{}) string {
	t, ok := f.Instant(instant)
	if !ok {
		return Placeholder
	}

	ms := f.Now().Sub(t).Milliseconds()
	seconds := ms / 1000
	if ms%1000 < 0 { // floor, not truncate
		seconds--
	}
	if seconds < 60 {
		return ago(seconds, "second")
	}
	minutes := seconds / 60
	if minutes < 60 {
		return ago(minutes, "minute")
	}
	hours := minutes / 60
	if hours < 24 {
		return ago(hours, "hour")
	}
	days := hours / 24
	if days < 30 {
		return ago(days, "day")
	}
	return ago(days/30, "month")
}

func ago(n int64, unit string) string {
	if n != 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}

var std = New()

// SetDefault replaces the Formatter used by the package-level functions.
// It is meant to be called once at startup, before any formatting happens.
func SetDefault(f *Formatter) {
	if f != nil {
		std = f
	}
}

// Default returns the Formatter used by the package-level functions.
func Default() *Formatter { return std }

func FormatTime(instant interface{}) string { return std.FormatTime(instant) }

func FormatDate(instant interface{}, mode ...Mode) string { return std.FormatDate(instant, mode...) }

func FormatRelativeTime(instant interface{}) string { return std.FormatRelativeTime(instant) }
