// Package eta computes the next occurrence (ETA) of a schedule as a UTC
// instant.
//
// This is the main package users should import. It re-exports the public
// types from the pkg/ packages for a clean API surface.
//
// Basic usage:
//
//	r := eta.New()
//	next, err := r.Next(eta.Request{
//	    Timezone: "Asia/Kolkata",
//	    Schedule: eta.Cron{Expression: "*/5 * * * *"},
//	})
//	if err != nil {
//	    // malformed request: errors.Is(err, eta.ErrUnknownTimezone), ...
//	}
//	if next.IsNone() {
//	    // schedule has no future occurrence
//	}
package eta

import (
	"log/slog"
	"time"

	"github.com/jdziat/schedule-eta/pkg/core"
	"github.com/jdziat/schedule-eta/pkg/resolver"
	"github.com/jdziat/schedule-eta/pkg/schedule"
	"github.com/jdziat/schedule-eta/pkg/security"
	"github.com/jdziat/schedule-eta/pkg/timezone"
	"github.com/jdziat/schedule-eta/pkg/wire"
)

// Type aliases for the public API.
type (
	// Request is a single resolution call.
	Request = core.Request

	// ScheduleType tags the schedule variant of a Request.
	ScheduleType = core.ScheduleType

	// DateSpecific fires at each listed entry, first-in-order.
	DateSpecific = core.DateSpecific

	// Cron fires on every instant matching a 5-field cron expression.
	Cron = core.Cron

	// Recurring fires every Rule.Every units from Start.
	Recurring = core.Recurring

	// Entry is one date/time pair with an optional timezone override.
	Entry = core.Entry

	// Bound is an optional end boundary.
	Bound = core.Bound

	// Date is a civil date or a raw string parsed with the request's format.
	Date = core.Date

	// Rule is an interval recurrence with an optional weekday filter.
	Rule = core.Rule

	// Unit is a recurrence step or window unit.
	Unit = core.Unit

	// ETA is a resolved UTC instant or the "no future occurrence" sentinel.
	ETA = core.ETA

	// ValidationError reports a malformed request.
	ValidationError = core.ValidationError

	// Resolver resolves requests.
	Resolver = resolver.Resolver

	// Option configures a Resolver.
	Option = resolver.Option

	// Options holds resolver configuration.
	Options = resolver.Options

	// Schedule yields the next occurrence strictly after a given instant.
	Schedule = schedule.Schedule

	// CronSchedule is a parsed cron expression.
	CronSchedule = schedule.CronSchedule

	// Recurrence is an anchored interval series with a weekday filter.
	Recurrence = schedule.Recurrence

	// ZoneSet is a set of supported timezone identifiers.
	ZoneSet = timezone.Set

	// Item is a decoded wire request keyed by its id.
	Item = wire.Item

	// Response is the encoded answer for one wire request.
	Response = wire.Response
)

// Schedule type constants
const (
	TypeDateSpecific = core.TypeDateSpecific
	TypeCron         = core.TypeCron
	TypeRecurring    = core.TypeRecurring
)

// Unit constants
const (
	Minute = core.Minute
	Hour   = core.Hour
	Day    = core.Day
	Week   = core.Week
	Month  = core.Month
	Year   = core.Year
)

// DefaultDateFormat is the strftime pattern used when a request names none.
const DefaultDateFormat = core.DefaultDateFormat

// Security limits
const (
	MaxEntries          = security.MaxEntries
	MaxCronLength       = security.MaxCronLength
	MaxRepeat           = security.MaxRepeat
	MaxUpcoming         = security.MaxUpcoming
	DefaultMaxSteps     = security.DefaultMaxSteps
	MaxSteps            = security.MaxSteps
	DefaultMaxLookahead = security.DefaultMaxLookahead
	MinLookahead        = security.MinLookahead
	MaxLookahead        = security.MaxLookahead
)

// None is the "no future occurrence" sentinel.
var None = core.None

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	return resolver.New(opts...)
}

// NewOptions creates Options with defaults.
func NewOptions() *Options {
	return resolver.NewOptions()
}

// Next resolves req against the current instant with a default Resolver.
func Next(req Request) (ETA, error) {
	return resolver.New().Next(req)
}

// At wraps t as a resolved ETA.
func At(t time.Time) ETA {
	return core.At(t)
}

// DateOf returns a civil date value.
func DateOf(year int, month time.Month, day int) Date {
	return core.DateOf(year, month, day)
}

// DateFromTime returns the calendar date of t in t's location.
func DateFromTime(t time.Time) Date {
	return core.DateFromTime(t)
}

// DateString returns a date parsed later with the request's date format.
func DateString(s string) Date {
	return core.DateString(s)
}

// ParseUnit accepts unit codes ("m", "M", ...) and long names ("minutes").
func ParseUnit(s string) (Unit, bool) {
	return core.ParseUnit(s)
}

// Resolver option functions

// WithClock sets the source of the current instant.
func WithClock(now func() time.Time) Option {
	return resolver.WithClock(now)
}

// WithZones restricts the supported timezone identifiers.
func WithZones(zones ZoneSet) Option {
	return resolver.WithZones(zones)
}

// WithMaxSteps bounds the recurrence candidates examined per call.
func WithMaxSteps(n int) Option {
	return resolver.WithMaxSteps(n)
}

// WithMaxLookahead bounds how far past the reference a call may search.
func WithMaxLookahead(d time.Duration) Option {
	return resolver.WithMaxLookahead(d)
}

// WithLogger sets the logger for debug records.
func WithLogger(l *slog.Logger) Option {
	return resolver.WithLogger(l)
}

// Timezone functions

// SupportedZones returns the built-in set of supported timezone identifiers.
func SupportedZones() ZoneSet {
	return timezone.Supported()
}

// NewZoneSet builds a set from explicit identifiers.
func NewZoneSet(names ...string) ZoneSet {
	return timezone.NewSet(names...)
}

// LoadLocation resolves name against the supported set.
func LoadLocation(name string) (*time.Location, error) {
	return timezone.Load(timezone.Supported(), name)
}

// Schedule functions

// ParseCron parses a 5-field cron expression, optionally prefixed with
// CRON_TZ=<zone>.
func ParseCron(expr string) (*CronSchedule, error) {
	return schedule.ParseCron(expr, timezone.Supported())
}

// Advance moves t by n units using local calendar arithmetic for day, week,
// month and year units.
func Advance(t time.Time, n int, unit Unit, loc *time.Location) time.Time {
	return schedule.Advance(t, n, unit, loc)
}

// Wire functions

// Decode parses one JSON or JSONC request.
func Decode(data []byte) (Item, error) {
	return wire.Decode(data)
}

// DecodeBatch parses one request or an array of requests.
func DecodeBatch(data []byte) ([]Item, error) {
	return wire.DecodeBatch(data)
}

// NewResponse builds the wire response for a resolution outcome.
func NewResponse(id string, e ETA, err error) Response {
	return wire.NewResponse(id, e, err)
}
