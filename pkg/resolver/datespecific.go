package resolver

import (
	"time"

	"github.com/jdziat/schedule-eta/pkg/core"
	"github.com/jdziat/schedule-eta/pkg/security"
	"github.com/jdziat/schedule-eta/pkg/timezone"
)

// DateSpecific returns the first entry, in list order, whose instant is at or
// after ref. A zero ref means now. An entry's own timezone overrides tz.
//
// Order is the contract: a later entry that is chronologically earlier is not
// preferred. Every entry is validated before any is selected, so one bad
// entry fails the whole call.
func (r *Resolver) DateSpecific(entries []core.Entry, tz, format string, ref time.Time) (core.ETA, error) {
	if err := security.ValidateEntryCount(len(entries)); err != nil {
		return core.None, err
	}
	if _, err := timezone.Load(r.zones, tz); err != nil {
		return core.None, err
	}
	for _, e := range entries {
		if e.Date.IsZero() {
			return core.None, core.Invalid(core.ErrMissingDate, "")
		}
		if e.Time == "" {
			return core.None, core.Invalid(core.ErrMissingTime, "")
		}
	}

	instants := make([]time.Time, len(entries))
	for i, e := range entries {
		zone := tz
		if e.Timezone != "" {
			zone = e.Timezone
		}
		at, err := r.norm.Normalize(e.Date, e.Time, zone, format)
		if err != nil {
			return core.None, err
		}
		instants[i] = at
	}

	ref = r.reference(ref)
	for _, at := range instants {
		if !at.Before(ref) {
			return core.At(at), nil
		}
	}
	return core.None, nil
}
