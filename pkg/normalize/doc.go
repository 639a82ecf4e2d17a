// Package normalize turns a (date, time-of-day, timezone, date-format) tuple
// into a single UTC instant.
//
// Times of day use a strict 12-hour clock with a mandatory meridiem marker
// ("09:30 AM", "12:24 PM"). Date formats are strftime patterns such as
// "%m/%d/%Y"; numeric fields accept one or two digits.
//
// Wall-clock values are interpreted in the named timezone. A wall-clock that
// occurs twice (the hour repeated when daylight saving ends) resolves to the
// earlier instant; one that never occurs (the hour skipped when daylight saving
// starts) is shifted forward by the length of the gap.
package normalize
