package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jdziat/schedule-eta/pkg/core"
)

var reClock = regexp.MustCompile(`^(1[0-2]|0?[1-9]):([0-5][0-9]) ([AaPp][Mm])$`)

// ParseClock parses "HH:MM AM|PM" into a 24-hour hour and minute.
// The meridiem marker is mandatory; its case is not significant.
func ParseClock(raw string) (hour, minute int, err error) {
	m := reClock.FindStringSubmatch(raw)
	if m == nil {
		return 0, 0, core.Invalid(core.ErrUnparsableTime, raw)
	}
	// Both groups are one or two digits, so Atoi cannot fail.
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])

	pm := strings.EqualFold(m[3], "PM")
	switch {
	case hour == 12 && !pm:
		hour = 0
	case hour != 12 && pm:
		hour += 12
	}
	return hour, minute, nil
}
