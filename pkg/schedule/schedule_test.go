package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdziat/schedule-eta/pkg/core"
	"github.com/jdziat/schedule-eta/pkg/timezone"
)

func mustCron(t *testing.T, expr string) *CronSchedule {
	t.Helper()
	s, err := ParseCron(expr, nil)
	require.NoError(t, err, expr)
	return s
}

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := timezone.Load(timezone.Supported(), name)
	require.NoError(t, err)
	return loc
}

func TestCron(t *testing.T) {
	s := mustCron(t, "0 9 * * *") // Every day at 9 AM
	from := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), s.Next(from))
}

func TestCron_EveryFiveMinutes(t *testing.T) {
	s := mustCron(t, "*/5 * * * *")

	assert.Equal(t, time.Date(2026, 2, 8, 10, 35, 0, 0, time.UTC), s.Next(time.Date(2026, 2, 8, 10, 32, 17, 0, time.UTC)))
	// Strictly after: an aligned reference moves to the next slot.
	assert.Equal(t, time.Date(2026, 2, 8, 10, 40, 0, 0, time.UTC), s.Next(time.Date(2026, 2, 8, 10, 35, 0, 0, time.UTC)))
}

func TestCron_MatchesUTCFields(t *testing.T) {
	s := mustCron(t, "0 9 * * *")
	kolkata := mustLoad(t, "Asia/Calcutta")

	// 10:00 in Kolkata is 04:30 UTC, so 09:00 UTC the same day still matches.
	next := s.Next(time.Date(2026, 2, 8, 10, 0, 0, 0, kolkata))

	assert.Equal(t, time.Date(2026, 2, 8, 9, 0, 0, 0, time.UTC), next)
	assert.Equal(t, time.UTC, next.Location())
}

func TestCron_ZonePrefix(t *testing.T) {
	s := mustCron(t, "CRON_TZ=Asia/Calcutta 0 9 * * *")

	next := s.Next(time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2026, 2, 8, 3, 30, 0, 0, time.UTC), next)
	assert.Equal(t, "CRON_TZ=Asia/Calcutta 0 9 * * *", s.String())
}

func TestCron_ZonePrefixMustBeSupported(t *testing.T) {
	_, err := ParseCron("CRON_TZ=Europe/Paris 0 9 * * *", timezone.NewSet("UTC"))

	assert.True(t, errors.Is(err, core.ErrUnknownTimezone))
}

func TestCron_WeekdaysOnly(t *testing.T) {
	s := mustCron(t, "0 9 * * 1-5")

	next := s.Next(time.Date(2026, 2, 7, 10, 0, 0, 0, time.UTC)) // Saturday

	assert.Equal(t, time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC), next)
}

func TestCron_Impossible(t *testing.T) {
	s := mustCron(t, "0 0 31 2 *")

	assert.True(t, s.Next(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)).IsZero())
}

func TestCron_Invalid(t *testing.T) {
	for _, expr := range []string{"", "* x u s", "invalid cron", "60 * * * *", "* * * * * *", "@hourly", "0 9 * * MON-"} {
		_, err := ParseCron(expr, nil)
		assert.True(t, errors.Is(err, core.ErrInvalidCron), "expected %q to be rejected, got %v", expr, err)
	}
}

func TestScheduleInterface(t *testing.T) {
	r, err := NewRecurrence(time.Now(), time.UTC, 1, core.Hour, nil)
	require.NoError(t, err)

	var _ Schedule = mustCron(t, "* * * * *") //nolint:staticcheck // interface conformance check
	var _ Schedule = r                        //nolint:staticcheck // interface conformance check
}
