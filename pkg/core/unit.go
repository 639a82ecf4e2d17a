package core

import (
	"strings"
	"time"
)

// Unit is a recurrence step or window unit.
type Unit string

const (
	Minute Unit = "m"
	Hour   Unit = "h"
	Day    Unit = "d"
	Week   Unit = "w"
	Month  Unit = "M"
	Year   Unit = "y"
)

// ParseUnit accepts the single-letter codes (case-sensitive: "m" is minute,
// "M" is month) and the long names in any case.
func ParseUnit(s string) (Unit, bool) {
	switch s {
	case "m", "h", "d", "w", "M", "y":
		return Unit(s), true
	}
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s") {
	case "minute", "min":
		return Minute, true
	case "hour":
		return Hour, true
	case "day":
		return Day, true
	case "week":
		return Week, true
	case "month":
		return Month, true
	case "year":
		return Year, true
	}
	return "", false
}

// Valid reports whether u is a known unit.
func (u Unit) Valid() bool {
	_, ok := ParseUnit(string(u))
	return ok && len(u) == 1
}

// Calendar reports whether steps of u follow local calendar arithmetic
// rather than fixed-duration addition.
func (u Unit) Calendar() bool {
	return u == Day || u == Week || u == Month || u == Year
}

// Duration returns the fixed length of one minute or hour step.
// Calendar units return 0.
func (u Unit) Duration() time.Duration {
	switch u {
	case Minute:
		return time.Minute
	case Hour:
		return time.Hour
	}
	return 0
}

func (u Unit) String() string {
	switch u {
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	}
	return string(u)
}
