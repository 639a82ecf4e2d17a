// Package resolver computes the next occurrence (ETA) of a schedule.
package resolver

import (
	"log/slog"
	"time"

	"github.com/jdziat/schedule-eta/pkg/normalize"
	"github.com/jdziat/schedule-eta/pkg/timezone"
)

// Resolver resolves schedules to UTC instants. It is immutable after New
// and safe for concurrent use.
type Resolver struct {
	norm      *normalize.Normalizer
	zones     timezone.Set
	now       func() time.Time
	maxSteps  int
	lookahead time.Duration
	logger    *slog.Logger
}

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	o := NewOptions()
	for _, opt := range opts {
		opt.Apply(o)
	}
	return &Resolver{
		norm:      normalize.New(o.Zones),
		zones:     o.Zones,
		now:       o.Clock,
		maxSteps:  o.MaxSteps,
		lookahead: o.MaxLookahead,
		logger:    o.Logger,
	}
}

// reference returns ref in UTC, or the current instant when ref is zero.
func (r *Resolver) reference(ref time.Time) time.Time {
	if ref.IsZero() {
		return r.now().UTC()
	}
	return ref.UTC()
}

// horizon is the last instant a search starting at ref may return, taking
// an optional bound into account.
func (r *Resolver) horizon(ref time.Time, bound *time.Time) time.Time {
	h := ref.Add(r.lookahead)
	if bound != nil && bound.Before(h) {
		return *bound
	}
	return h
}
