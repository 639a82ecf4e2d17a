package core

import (
	"time"
)

// DefaultDateFormat is the strftime pattern used when a request names none.
const DefaultDateFormat = "%m/%d/%Y"

// ScheduleType tags the schedule variant carried by a Request.
type ScheduleType string

const (
	TypeDateSpecific ScheduleType = "date_specific"
	TypeCron         ScheduleType = "cron"
	TypeRecurring    ScheduleType = "recurring"
)

// Valid reports whether t is one of the known schedule types.
func (t ScheduleType) Valid() bool {
	switch t {
	case TypeDateSpecific, TypeCron, TypeRecurring:
		return true
	}
	return false
}

// Request is a single resolution call. It is a value: resolvers never modify it.
type Request struct {
	Timezone   string
	DateFormat string
	Schedule   Schedule
}

// Type returns the schedule tag, or "" when no schedule is set.
func (r Request) Type() ScheduleType {
	if r.Schedule == nil {
		return ""
	}
	return r.Schedule.scheduleType()
}

// Format returns the date format in effect for the request.
func (r Request) Format() string {
	if r.DateFormat == "" {
		return DefaultDateFormat
	}
	return r.DateFormat
}

// Schedule is the payload of a Request. It is implemented only by
// DateSpecific, Cron and Recurring.
type Schedule interface {
	scheduleType() ScheduleType
}

// DateSpecific fires at each listed entry. Entries are scanned in order; the
// first one not yet in the past wins, so callers that want the
// chronologically earliest entry must sort the list themselves.
type DateSpecific struct {
	Entries []Entry
}

// Cron fires on every instant matching a 5-field cron expression.
type Cron struct {
	Expression string
	End        *Bound
}

// Recurring fires every Rule.Every units from Start.
type Recurring struct {
	Start Entry
	End   *Bound
	Rule  Rule
}

func (DateSpecific) scheduleType() ScheduleType { return TypeDateSpecific }
func (Cron) scheduleType() ScheduleType         { return TypeCron }
func (Recurring) scheduleType() ScheduleType    { return TypeRecurring }

// Date is a calendar date given either as a civil value or as a raw string
// that still has to be parsed with the request's date format.
type Date struct {
	raw   string
	civil time.Time
	set   bool
}

// DateOf returns a civil date value.
func DateOf(year int, month time.Month, day int) Date {
	return Date{civil: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), set: true}
}

// DateFromTime returns the calendar date of t as seen in t's location.
func DateFromTime(t time.Time) Date {
	return DateOf(t.Year(), t.Month(), t.Day())
}

// DateString returns a date that is parsed later with the request's format.
// The empty string is a missing date.
func DateString(s string) Date {
	return Date{raw: s}
}

// IsZero reports whether the date is missing.
func (d Date) IsZero() bool { return !d.set && d.raw == "" }

// Raw returns the unparsed string, or "" for civil dates.
func (d Date) Raw() string { return d.raw }

// Civil returns the civil date and true when the date was given as a value.
func (d Date) Civil() (year int, month time.Month, day int, ok bool) {
	if !d.set {
		return 0, 0, 0, false
	}
	return d.civil.Year(), d.civil.Month(), d.civil.Day(), true
}

func (d Date) String() string {
	if d.set {
		return d.civil.Format("2006-01-02")
	}
	return d.raw
}

// Entry is one date/time pair. Timezone, when set, overrides the
// request-level timezone for this entry only.
type Entry struct {
	Date     Date
	Time     string
	Timezone string
}

// Bound is an end boundary. Time is optional; a date-only bound means local
// midnight at the start of that date.
type Bound struct {
	Date Date
	Time string
}

// Rule is an interval recurrence with an optional weekday filter and an
// optional repetition window measured from the start instant.
type Rule struct {
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool

	Every     int
	EveryUnit Unit

	For     int
	ForUnit Unit
}

// IsZero reports whether the rule object is empty.
func (r Rule) IsZero() bool {
	return r == Rule{}
}

// Weekdays returns the included weekdays, or nil when no filter applies.
func (r Rule) Weekdays() []time.Weekday {
	var days []time.Weekday
	flags := []struct {
		on  bool
		day time.Weekday
	}{
		{r.Monday, time.Monday},
		{r.Tuesday, time.Tuesday},
		{r.Wednesday, time.Wednesday},
		{r.Thursday, time.Thursday},
		{r.Friday, time.Friday},
	}
	for _, f := range flags {
		if f.on {
			days = append(days, f.day)
		}
	}
	return days
}

// HasWindow reports whether the rule sets any repeat_for field. A window
// with a non-positive count or unknown unit is still reported so that it can
// be rejected.
func (r Rule) HasWindow() bool {
	return r.For != 0 || r.ForUnit != ""
}
