package security

import (
	"fmt"
	"time"

	"github.com/jdziat/schedule-eta/pkg/core"
)

// Request limits and search bounds
const (
	// MaxEntries is the maximum number of entries in a date_specific list
	MaxEntries = 1000

	// MaxCronLength is the maximum length of a cron expression, including any CRON_TZ= prefix
	MaxCronLength = 256

	// MaxRepeat is the largest accepted repeat_every / repeat_for value
	MaxRepeat = 1_000_000

	// MaxUpcoming is the maximum number of successive ETAs returned by one call
	MaxUpcoming = 1000

	// DefaultMaxSteps is the default number of recurrence candidates examined per call
	DefaultMaxSteps = 10_000

	// MaxSteps is the hard limit for candidates examined per call
	MaxSteps = 1_000_000

	// DefaultMaxLookahead is the default forward search span from the reference instant
	DefaultMaxLookahead = 5 * 365 * 24 * time.Hour

	// MinLookahead and MaxLookahead bound the configurable search span
	MinLookahead = time.Hour
	MaxLookahead = 100 * 365 * 24 * time.Hour
)

// ValidateEntryCount checks the size of a date_specific list.
func ValidateEntryCount(n int) error {
	if n == 0 {
		return core.Invalid(core.ErrNoEntries, "")
	}
	if n > MaxEntries {
		return core.Invalidf(core.ErrTooManyEntries, "%d entries, limit %d", n, MaxEntries)
	}
	return nil
}

// ValidateCronExpression checks that a cron expression is present and not oversized.
// Syntax is checked by the parser.
func ValidateCronExpression(expr string) error {
	if expr == "" {
		return core.Invalid(core.ErrInvalidCron, "")
	}
	if len(expr) > MaxCronLength {
		return &core.ValidationError{Reason: core.ErrInvalidCron, Detail: fmt.Sprintf("longer than %d bytes", MaxCronLength)}
	}
	return nil
}

// ValidateRepeat checks a repeat_every / repeat_for count.
func ValidateRepeat(field string, n int) error {
	if n < 1 || n > MaxRepeat {
		return core.Invalidf(core.ErrInvalidRule, "%s must be in [1, %d], got %d", field, MaxRepeat, n)
	}
	return nil
}

// ClampSteps ensures the candidate budget is within limits
func ClampSteps(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxSteps {
		return MaxSteps
	}
	return n
}

// ClampLookahead ensures the search span is within limits
func ClampLookahead(d time.Duration) time.Duration {
	if d < MinLookahead {
		return MinLookahead
	}
	if d > MaxLookahead {
		return MaxLookahead
	}
	return d
}
