package resolver

import (
	"time"

	"github.com/jdziat/schedule-eta/pkg/core"
	"github.com/jdziat/schedule-eta/pkg/schedule"
	"github.com/jdziat/schedule-eta/pkg/security"
	"github.com/jdziat/schedule-eta/pkg/timezone"
)

// check is one precondition run on a request before any resolver executes.
type check func(r *Resolver, req core.Request) error

var requestChecks = []check{
	checkType,
	checkTimezone,
}

func checkType(_ *Resolver, req core.Request) error {
	if !req.Type().Valid() {
		return core.Invalid(core.ErrInvalidScheduleType, string(req.Type()))
	}
	return nil
}

func checkTimezone(r *Resolver, req core.Request) error {
	_, err := timezone.Load(r.zones, req.Timezone)
	return err
}

// Next resolves req against the current instant.
func (r *Resolver) Next(req core.Request) (core.ETA, error) {
	return r.Resolve(req, time.Time{})
}

// Resolve validates req, routes it to the resolver for its schedule type and
// returns that resolver's result unmodified. A zero ref means now.
func (r *Resolver) Resolve(req core.Request, ref time.Time) (core.ETA, error) {
	for _, c := range requestChecks {
		if err := c(r, req); err != nil {
			return core.None, err
		}
	}
	ref = r.reference(ref)
	format := req.Format()

	var (
		eta core.ETA
		err error
	)
	switch s := req.Schedule.(type) {
	case core.DateSpecific:
		eta, err = r.DateSpecific(s.Entries, req.Timezone, format, ref)
	case core.Cron:
		eta, err = r.resolveCron(s, req.Timezone, format, ref)
	case core.Recurring:
		eta, err = r.resolveRecurring(s, req.Timezone, format, ref)
	}
	if err != nil {
		return core.None, err
	}
	r.logger.Debug("resolved eta",
		"schedule_type", string(req.Type()),
		"timezone", req.Timezone,
		"reference", ref,
		"eta", eta.String(),
	)
	return eta, nil
}

func (r *Resolver) resolveCron(s core.Cron, tz, format string, ref time.Time) (core.ETA, error) {
	cs, err := schedule.ParseCron(s.Expression, r.zones)
	if err != nil {
		return core.None, err
	}
	end, err := r.bound(s.End, tz, format)
	if err != nil {
		return core.None, err
	}
	return r.cron(cs, ref, end), nil
}

func (r *Resolver) resolveRecurring(s core.Recurring, tz, format string, ref time.Time) (core.ETA, error) {
	if s.Start.Date.IsZero() && s.Start.Time == "" {
		return core.None, core.Invalid(core.ErrMissingEntry, "")
	}
	if s.Rule.IsZero() {
		return core.None, core.Invalidf(core.ErrInvalidRule, "recurring rule is empty")
	}
	end, err := r.bound(s.End, tz, format)
	if err != nil {
		return core.None, err
	}
	return r.Recurring(s.Start, s.Rule, tz, format, ref, end)
}

func (r *Resolver) bound(b *core.Bound, tz, format string) (*time.Time, error) {
	if b == nil {
		return nil, nil
	}
	end, err := r.norm.NormalizeBound(*b, tz, format)
	if err != nil {
		return nil, err
	}
	return &end, nil
}

// Upcoming returns up to n successive ETAs of req, starting at ref (zero
// means now). Each one is resolved with the previous result plus one
// nanosecond as reference, so it stops early once the schedule is exhausted.
func (r *Resolver) Upcoming(req core.Request, ref time.Time, n int) ([]time.Time, error) {
	n = min(max(n, 0), security.MaxUpcoming)
	out := make([]time.Time, 0, n)
	cursor := r.reference(ref)
	for len(out) < n {
		eta, err := r.Resolve(req, cursor)
		if err != nil {
			return nil, err
		}
		if eta.IsNone() {
			break
		}
		out = append(out, eta.At)
		cursor = eta.At.Add(time.Nanosecond)
	}
	return out, nil
}
