package resolver

import (
	"time"

	"github.com/jdziat/schedule-eta/pkg/core"
	"github.com/jdziat/schedule-eta/pkg/schedule"
	"github.com/jdziat/schedule-eta/pkg/security"
)

// Recurring returns the first candidate start + k*step (k >= 0) that is at or
// after ref and passes the rule's weekday filter. A zero ref means now.
//
// The series is bounded by end and by the rule's repeat_for window measured
// from start; the earlier bound wins and a candidate past it yields None.
// Weekdays and calendar steps are evaluated in the start entry's timezone
// (its override, else tz).
func (r *Resolver) Recurring(start core.Entry, rule core.Rule, tz, format string, ref time.Time, end *time.Time) (core.ETA, error) {
	rec, bound, err := r.recurrence(start, rule, tz, format, end)
	if err != nil {
		return core.None, err
	}
	ref = r.reference(ref)
	at, ok := rec.Search(ref, r.maxSteps, r.horizon(ref, bound))
	if !ok {
		return core.None, nil
	}
	return core.At(at), nil
}

// recurrence builds the candidate generator and the effective upper bound.
func (r *Resolver) recurrence(start core.Entry, rule core.Rule, tz, format string, end *time.Time) (*schedule.Recurrence, *time.Time, error) {
	if start.Timezone != "" {
		tz = start.Timezone
	}
	loc, err := r.norm.Location(tz)
	if err != nil {
		return nil, nil, err
	}
	anchor, err := r.norm.Normalize(start.Date, start.Time, tz, format)
	if err != nil {
		return nil, nil, err
	}
	rec, err := schedule.NewRecurrence(anchor, loc, rule.Every, rule.EveryUnit, rule.Weekdays())
	if err != nil {
		return nil, nil, err
	}

	bound := end
	if rule.HasWindow() {
		if err := security.ValidateRepeat("repeat_for", rule.For); err != nil {
			return nil, nil, err
		}
		if !rule.ForUnit.Valid() {
			return nil, nil, core.Invalidf(core.ErrInvalidRule, "unknown repeat_for_unit %q", string(rule.ForUnit))
		}
		window := schedule.Advance(anchor, rule.For, rule.ForUnit, loc).UTC()
		if bound == nil || window.Before(*bound) {
			bound = &window
		}
	}
	return rec, bound, nil
}
