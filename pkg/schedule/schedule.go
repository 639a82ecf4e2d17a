package schedule

import (
	"time"
)

// Schedule defines when a schedule fires next.
type Schedule interface {
	// Next returns the first occurrence strictly after from, or the zero
	// time when there is none within the schedule's search limits.
	Next(from time.Time) time.Time
}
