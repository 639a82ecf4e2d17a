package eta

import "github.com/jdziat/schedule-eta/pkg/core"

// Validation reasons. Test with errors.Is.
var (
	ErrMissingDate         = core.ErrMissingDate
	ErrMissingTime         = core.ErrMissingTime
	ErrUnparsableTime      = core.ErrUnparsableTime
	ErrUnparsableDate      = core.ErrUnparsableDate
	ErrUnsupportedFormat   = core.ErrUnsupportedFormat
	ErrMissingTimezone     = core.ErrMissingTimezone
	ErrUnknownTimezone     = core.ErrUnknownTimezone
	ErrInvalidCron         = core.ErrInvalidCron
	ErrInvalidScheduleType = core.ErrInvalidScheduleType
	ErrNoEntries           = core.ErrNoEntries
	ErrTooManyEntries      = core.ErrTooManyEntries
	ErrMultipleEntries     = core.ErrMultipleEntries
	ErrMissingEntry        = core.ErrMissingEntry
	ErrInvalidRule         = core.ErrInvalidRule
	ErrInvalidRequest      = core.ErrInvalidRequest
)

// IsValidation reports whether err is a malformed-request error.
func IsValidation(err error) bool {
	return core.IsValidation(err)
}
