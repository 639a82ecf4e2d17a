package resolver

import (
	"log/slog"
	"time"

	"github.com/jdziat/schedule-eta/pkg/security"
	"github.com/jdziat/schedule-eta/pkg/timezone"
)

// Options holds resolver configuration.
type Options struct {
	Clock        func() time.Time
	Zones        timezone.Set
	MaxSteps     int
	MaxLookahead time.Duration
	Logger       *slog.Logger
}

// NewOptions creates Options with defaults.
func NewOptions() *Options {
	return &Options{
		Clock:        time.Now,
		Zones:        timezone.Supported(),
		MaxSteps:     security.DefaultMaxSteps,
		MaxLookahead: security.DefaultMaxLookahead,
		Logger:       slog.Default(),
	}
}

// Option modifies Options.
type Option interface {
	Apply(*Options)
}

type optionFunc func(*Options)

func (f optionFunc) Apply(o *Options) { f(o) }

// WithClock sets the source of the current instant used when a call passes
// no reference instant.
func WithClock(now func() time.Time) Option {
	return optionFunc(func(o *Options) {
		if now != nil {
			o.Clock = now
		}
	})
}

// WithZones restricts the supported timezone identifiers.
func WithZones(zones timezone.Set) Option {
	return optionFunc(func(o *Options) {
		if zones != nil {
			o.Zones = zones
		}
	})
}

// WithMaxSteps sets how many recurrence candidates one call may examine.
// Values are clamped to [1, MaxSteps].
func WithMaxSteps(n int) Option {
	return optionFunc(func(o *Options) {
		o.MaxSteps = security.ClampSteps(n)
	})
}

// WithMaxLookahead sets how far past the reference instant a call may search.
// Values are clamped to [MinLookahead, MaxLookahead].
func WithMaxLookahead(d time.Duration) Option {
	return optionFunc(func(o *Options) {
		o.MaxLookahead = security.ClampLookahead(d)
	})
}

// WithLogger sets the logger for debug records.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	})
}
