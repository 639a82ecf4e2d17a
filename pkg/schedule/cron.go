package schedule

import (
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jdziat/schedule-eta/pkg/core"
	"github.com/jdziat/schedule-eta/pkg/security"
	"github.com/jdziat/schedule-eta/pkg/timezone"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// CronSchedule wraps a parsed 5-field cron expression.
type CronSchedule struct {
	expr     string
	schedule cron.Schedule
}

// ParseCron parses a standard 5-field cron expression. An optional
// "CRON_TZ=<zone>" or "TZ=<zone>" prefix selects the timezone the fields are
// matched in; the zone must be in zones (nil means timezone.Supported()).
// Without a prefix fields are matched against UTC.
func ParseCron(expr string, zones timezone.Set) (*CronSchedule, error) {
	expr = strings.TrimSpace(expr)
	if err := security.ValidateCronExpression(expr); err != nil {
		return nil, err
	}
	if zones == nil {
		zones = timezone.Supported()
	}
	if name, ok := cronZone(expr); ok {
		if _, err := timezone.Load(zones, name); err != nil {
			return nil, err
		}
	}
	s, err := cronParser.Parse(expr)
	if err != nil {
		return nil, &core.ValidationError{Reason: core.ErrInvalidCron, Value: expr, Detail: err.Error()}
	}
	return &CronSchedule{expr: expr, schedule: s}, nil
}

// cronZone extracts the zone name of a CRON_TZ= or TZ= prefix.
func cronZone(expr string) (string, bool) {
	for _, prefix := range []string{"CRON_TZ=", "TZ="} {
		if strings.HasPrefix(expr, prefix) {
			rest := expr[len(prefix):]
			if i := strings.IndexAny(rest, " \t"); i >= 0 {
				rest = rest[:i]
			}
			return rest, true
		}
	}
	return "", false
}

// Next returns the first matching instant strictly after from, in UTC.
// It returns the zero time when nothing matches within five years.
func (s *CronSchedule) Next(from time.Time) time.Time {
	next := s.schedule.Next(from.UTC())
	if next.IsZero() {
		return next
	}
	return next.UTC()
}

func (s *CronSchedule) String() string { return s.expr }
