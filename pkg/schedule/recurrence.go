package schedule

import (
	"time"

	"github.com/jdziat/schedule-eta/pkg/core"
	"github.com/jdziat/schedule-eta/pkg/normalize"
	"github.com/jdziat/schedule-eta/pkg/security"
)

// Recurrence produces the candidates anchor + k*step for k >= 0, skipping
// candidates whose local weekday is excluded.
type Recurrence struct {
	anchor time.Time
	loc    *time.Location
	every  int
	unit   core.Unit
	days   [7]bool
	filter bool
}

// NewRecurrence creates a recurrence stepping every n units from anchor.
// Weekdays and calendar steps are evaluated in loc. An empty days list
// disables weekday filtering.
func NewRecurrence(anchor time.Time, loc *time.Location, every int, unit core.Unit, days []time.Weekday) (*Recurrence, error) {
	if err := security.ValidateRepeat("repeat_every", every); err != nil {
		return nil, err
	}
	if !unit.Valid() {
		return nil, core.Invalidf(core.ErrInvalidRule, "unknown repeat_every_unit %q", string(unit))
	}
	if loc == nil {
		loc = time.UTC
	}
	r := &Recurrence{anchor: anchor, loc: loc, every: every, unit: unit}
	for _, d := range days {
		r.days[d] = true
		r.filter = true
	}
	return r, nil
}

// At returns the k-th candidate.
func (r *Recurrence) At(k int) time.Time {
	return Advance(r.anchor, k*r.every, r.unit, r.loc).UTC()
}

// Allowed reports whether t passes the weekday filter.
func (r *Recurrence) Allowed(t time.Time) bool {
	return !r.filter || r.days[t.In(r.loc).Weekday()]
}

// Index returns the smallest k >= 0 whose candidate is not before t.
// The first guess is computed directly and then corrected one step at a
// time; ok is false when the correction needs more than budget steps.
func (r *Recurrence) Index(t time.Time, budget int) (k int, ok bool) {
	if !t.After(r.anchor) {
		return 0, true
	}
	k = r.estimate(t)
	for ; k > 0 && !r.At(k-1).Before(t); k-- {
		if budget--; budget < 0 {
			return 0, false
		}
	}
	for ; r.At(k).Before(t); k++ {
		if budget--; budget < 0 || k >= maxIndex {
			return 0, false
		}
	}
	return k, true
}

// estimate guesses the index of the first candidate at or after t. Spans
// are measured in whole seconds or calendar days, never as a Duration, which
// saturates after about 292 years.
func (r *Recurrence) estimate(t time.Time) int {
	var k int64
	switch r.unit {
	case core.Minute, core.Hour:
		step := int64(r.every) * int64(r.unit.Duration()/time.Second)
		k = (t.Unix() - r.anchor.Unix()) / step
	case core.Day, core.Week:
		stepDays := int64(r.every)
		if r.unit == core.Week {
			stepDays *= 7
		}
		k = (civilDay(t.In(r.loc)) - civilDay(r.anchor.In(r.loc))) / stepDays
	case core.Month, core.Year:
		stepMonths := int64(r.every)
		if r.unit == core.Year {
			stepMonths *= 12
		}
		a, b := r.anchor.In(r.loc), t.In(r.loc)
		k = (int64(b.Year()-a.Year())*12 + int64(b.Month()-a.Month())) / stepMonths
	}
	return int(min(max(k, 0), maxIndex))
}

// Search returns the first allowed candidate at or after from. It examines
// at most maxSteps candidates, spends at most maxSteps more on each index
// correction, and gives up once a candidate passes limit.
func (r *Recurrence) Search(from time.Time, maxSteps int, limit time.Time) (time.Time, bool) {
	k, ok := r.Index(from, maxSteps)
	if !ok {
		return time.Time{}, false
	}
	for i := 0; i < maxSteps; i++ {
		c := r.At(k)
		if c.After(limit) {
			return time.Time{}, false
		}
		if r.Allowed(c) {
			return c, true
		}
		k++
		if !r.unit.Calendar() {
			// Skip the rest of an excluded day in one jump.
			l := c.In(r.loc)
			midnight := normalize.Wall(l.Year(), l.Month(), l.Day()+1, 0, 0, r.loc)
			next, ok := r.Index(midnight, maxSteps)
			if !ok {
				return time.Time{}, false
			}
			k = max(k, next)
		}
	}
	return time.Time{}, false
}

// Next returns the first allowed candidate strictly after from, searching
// the default candidate budget and lookahead.
func (r *Recurrence) Next(from time.Time) time.Time {
	after := from.Add(time.Nanosecond)
	c, ok := r.Search(after, security.DefaultMaxSteps, after.Add(security.DefaultMaxLookahead))
	if !ok {
		return time.Time{}
	}
	return c
}

// Anchor returns the first candidate.
func (r *Recurrence) Anchor() time.Time { return r.anchor.UTC() }
