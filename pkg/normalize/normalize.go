package normalize

import (
	"time"

	"github.com/jdziat/schedule-eta/pkg/core"
	"github.com/jdziat/schedule-eta/pkg/timezone"
)

// Normalizer converts date/time tuples into UTC instants. It holds no
// mutable state and is safe for concurrent use.
type Normalizer struct {
	zones timezone.Set
}

// New creates a Normalizer validating timezones against zones.
// A nil set means timezone.Supported().
func New(zones timezone.Set) *Normalizer {
	if zones == nil {
		zones = timezone.Supported()
	}
	return &Normalizer{zones: zones}
}

// Location resolves tz against the supported set. The empty name is UTC.
func (n *Normalizer) Location(tz string) (*time.Location, error) {
	if tz == "" {
		return time.UTC, nil
	}
	return timezone.Load(n.zones, tz)
}

// Normalize interprets date at clock as wall-clock time in tz and returns
// the instant in UTC. An empty tz treats the wall-clock as UTC; an empty
// format means core.DefaultDateFormat.
func (n *Normalizer) Normalize(date core.Date, clock, tz, format string) (time.Time, error) {
	if date.IsZero() {
		return time.Time{}, core.Invalid(core.ErrMissingDate, "")
	}
	if clock == "" {
		return time.Time{}, core.Invalid(core.ErrMissingTime, "")
	}
	loc, err := n.Location(tz)
	if err != nil {
		return time.Time{}, err
	}
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d, err := ParseDate(date, format)
	if err != nil {
		return time.Time{}, err
	}
	return Wall(y, m, d, hour, minute, loc).UTC(), nil
}

// NormalizeBound resolves an end boundary. Its time is optional; without
// one the bound is local midnight at the start of the date.
func (n *Normalizer) NormalizeBound(b core.Bound, tz, format string) (time.Time, error) {
	if b.Time != "" {
		return n.Normalize(b.Date, b.Time, tz, format)
	}
	if b.Date.IsZero() {
		return time.Time{}, core.Invalid(core.ErrMissingDate, "")
	}
	loc, err := n.Location(tz)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d, err := ParseDate(b.Date, format)
	if err != nil {
		return time.Time{}, err
	}
	return Wall(y, m, d, 0, 0, loc).UTC(), nil
}

// ParseDate resolves date into a calendar date, parsing raw strings with the
// strftime format (core.DefaultDateFormat when empty).
func ParseDate(date core.Date, format string) (int, time.Month, int, error) {
	if y, m, d, ok := date.Civil(); ok {
		return y, m, d, nil
	}
	if date.IsZero() {
		return 0, 0, 0, core.Invalid(core.ErrMissingDate, "")
	}
	if format == "" {
		format = core.DefaultDateFormat
	}
	layout, err := Layout(format)
	if err != nil {
		return 0, 0, 0, err
	}
	t, err := time.Parse(layout, date.Raw())
	if err != nil {
		return 0, 0, 0, &core.ValidationError{Reason: core.ErrUnparsableDate, Value: date.Raw(), Format: format}
	}
	return t.Year(), t.Month(), t.Day(), nil
}

// Wall returns the instant at which the wall-clock y-m-d h:min occurs in loc.
// A repeated wall-clock resolves to its earlier occurrence; a skipped one is
// moved forward by the length of the gap.
func Wall(y int, m time.Month, d, hour, minute int, loc *time.Location) time.Time {
	t := time.Date(y, m, d, hour, minute, 0, 0, loc)
	want := time.Date(y, m, d, hour, minute, 0, 0, time.UTC)
	if gap := want.Sub(asUTC(t)); gap > 0 {
		return t.Add(gap)
	}
	for _, back := range []time.Duration{time.Hour, 30 * time.Minute} {
		earlier := t.Add(-back)
		if asUTC(earlier).Equal(want) {
			return earlier
		}
	}
	return t
}

// asUTC reinterprets the wall-clock of t as UTC.
func asUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
