package resolver

import (
	"time"

	"github.com/jdziat/schedule-eta/pkg/core"
	"github.com/jdziat/schedule-eta/pkg/schedule"
)

// Cron returns the first instant strictly after ref matching expr. A zero
// ref means now. The result is None when it falls after end, when nothing
// matches within the lookahead, or when the expression can never match.
// Malformed expressions are validation errors, never None.
func (r *Resolver) Cron(expr string, ref time.Time, end *time.Time) (core.ETA, error) {
	s, err := schedule.ParseCron(expr, r.zones)
	if err != nil {
		return core.None, err
	}
	return r.cron(s, r.reference(ref), end), nil
}

func (r *Resolver) cron(s *schedule.CronSchedule, ref time.Time, end *time.Time) core.ETA {
	next := s.Next(ref)
	if next.IsZero() || next.After(r.horizon(ref, end)) {
		return core.None
	}
	return core.At(next)
}
