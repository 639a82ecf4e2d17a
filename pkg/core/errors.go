package core

import (
	"errors"
	"fmt"
	"strconv"
)

// Validation reasons. Every validation failure returned by this module is a
// *ValidationError wrapping exactly one of these.
var (
	ErrMissingDate         = errors.New("eta: missing date")
	ErrMissingTime         = errors.New("eta: missing time")
	ErrUnparsableTime      = errors.New("eta: unparsable time")
	ErrUnparsableDate      = errors.New("eta: unparsable date")
	ErrUnsupportedFormat   = errors.New("eta: unsupported date format")
	ErrMissingTimezone     = errors.New("eta: missing timezone")
	ErrUnknownTimezone     = errors.New("eta: unknown timezone")
	ErrInvalidCron         = errors.New("eta: invalid cron expression")
	ErrInvalidScheduleType = errors.New("eta: invalid schedule type")
	ErrNoEntries           = errors.New("eta: schedule entries not provided")
	ErrTooManyEntries      = errors.New("eta: too many schedule entries")
	ErrMultipleEntries     = errors.New("eta: exactly one schedule entry permitted")
	ErrMissingEntry        = errors.New("eta: schedule entry required")
	ErrInvalidRule         = errors.New("eta: invalid recurring rule")
	ErrInvalidRequest      = errors.New("eta: malformed request")
)

// ValidationError reports a malformed request. Callers should treat it as a
// caller bug; it is never used for "no future occurrence".
type ValidationError struct {
	Reason error
	Value  string // offending raw input, if any
	Format string // date format in effect, for ErrUnparsableDate
	Detail string
}

func (e *ValidationError) Error() string {
	msg := e.Reason.Error()
	if e.Value != "" {
		msg += " " + strconv.Quote(e.Value)
	}
	if e.Format != "" {
		msg += fmt.Sprintf(" (format %s)", e.Format)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// Invalid builds a ValidationError for reason with an optional raw value.
func Invalid(reason error, value string) error {
	return &ValidationError{Reason: reason, Value: value}
}

// Invalidf builds a ValidationError carrying a formatted detail message.
func Invalidf(reason error, format string, args ...any) error {
	return &ValidationError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
