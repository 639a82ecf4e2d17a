package schedule

import (
	"math"
	"time"

	"github.com/jdziat/schedule-eta/pkg/core"
	"github.com/jdziat/schedule-eta/pkg/normalize"
)

// maxOffset caps a fixed-unit move, in seconds (about 34,000 years).
const maxOffset = 1 << 40

// Advance moves t forward by n units. Minutes and hours are fixed durations.
// Days and weeks keep the wall-clock of t in loc. Months and years keep the
// day of month, clamped to the last day of shorter months.
//
// Fixed-unit moves are computed in whole seconds and saturate at maxOffset,
// so a larger n never wraps to an earlier instant.
func Advance(t time.Time, n int, unit core.Unit, loc *time.Location) time.Time {
	if d := unit.Duration(); d > 0 {
		secs := int64(d / time.Second)
		offset := int64(n)
		if limit := int64(maxOffset) / secs; offset > limit {
			offset = limit
		} else if offset < -limit {
			offset = -limit
		}
		return time.Unix(t.Unix()+offset*secs, int64(t.Nanosecond())).In(t.Location())
	}
	l := t.In(loc)
	switch unit {
	case core.Day, core.Week:
		days := n
		if unit == core.Week {
			days *= 7
		}
		return normalize.Wall(l.Year(), l.Month(), l.Day()+days, l.Hour(), l.Minute(), loc)
	case core.Month, core.Year:
		months := n
		if unit == core.Year {
			months *= 12
		}
		total := int(l.Month()) - 1 + months
		y, m := l.Year()+total/12, time.Month(total%12+1)
		return normalize.Wall(y, m, min(l.Day(), daysIn(y, m)), l.Hour(), l.Minute(), loc)
	}
	return t
}

// civilDay numbers the calendar date of t, ignoring its wall-clock.
func civilDay(t time.Time) int64 {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// maxIndex caps candidate indexes so k*every stays far from int overflow.
const maxIndex = math.MaxInt32

func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
