package resolver

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdziat/schedule-eta/pkg/core"
	"github.com/jdziat/schedule-eta/pkg/security"
	"github.com/jdziat/schedule-eta/pkg/timezone"
)

// now is a Sunday.
var now = time.Date(2026, 2, 8, 10, 32, 17, 0, time.UTC)

func newTestResolver(opts ...Option) *Resolver {
	return New(append([]Option{WithClock(func() time.Time { return now })}, opts...)...)
}

func entry(date, clock string) core.Entry {
	return core.Entry{Date: core.DateString(date), Time: clock}
}

func TestNew_Defaults(t *testing.T) {
	r := New()

	assert.Equal(t, security.DefaultMaxSteps, r.maxSteps)
	assert.Equal(t, security.DefaultMaxLookahead, r.lookahead)
	assert.NotNil(t, r.logger)
	assert.WithinDuration(t, time.Now(), r.reference(time.Time{}), time.Minute)
}

func TestOptions_Clamp(t *testing.T) {
	r := New(WithMaxSteps(0), WithMaxLookahead(time.Second), WithClock(nil), WithZones(nil), WithLogger(nil))

	assert.Equal(t, 1, r.maxSteps)
	assert.Equal(t, security.MinLookahead, r.lookahead)
	assert.NotNil(t, r.now)
	assert.NotNil(t, r.zones)
	assert.NotNil(t, r.logger)
}

func TestReference(t *testing.T) {
	r := newTestResolver()
	kolkata, err := timezone.Load(timezone.Supported(), "Asia/Calcutta")
	require.NoError(t, err)

	assert.Equal(t, now, r.reference(time.Time{}))
	ref := time.Date(2026, 2, 8, 12, 0, 0, 0, kolkata)
	assert.Equal(t, time.UTC, r.reference(ref).Location())
	assert.True(t, r.reference(ref).Equal(ref))
}

func TestNext_LogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := newTestResolver(WithLogger(logger))

	_, err := r.Next(core.Request{
		Timezone: "UTC",
		Schedule: core.Cron{Expression: "*/5 * * * *"},
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "resolved eta")
	assert.Contains(t, buf.String(), "schedule_type=cron")
}

func TestNext_ErrorsAreNotLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := newTestResolver(WithLogger(logger))

	_, err := r.Next(core.Request{Timezone: "UTC", Schedule: core.Cron{Expression: "* x u s"}})

	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestAnyResolver_RejectsUnknownTimezone(t *testing.T) {
	r := newTestResolver()
	bad := "Invalid/Zone"

	_, err := r.DateSpecific([]core.Entry{entry("02/20/2099", "12:24 PM")}, bad, "", time.Time{})
	assert.True(t, errors.Is(err, core.ErrUnknownTimezone))

	_, err = r.Recurring(entry("02/20/2099", "12:24 PM"), core.Rule{Every: 1, EveryUnit: core.Day}, bad, "", time.Time{}, nil)
	assert.True(t, errors.Is(err, core.ErrUnknownTimezone))

	_, err = r.Cron("CRON_TZ="+bad+" * * * * *", time.Time{}, nil)
	assert.True(t, errors.Is(err, core.ErrUnknownTimezone))

	for _, s := range []core.Schedule{
		core.DateSpecific{Entries: []core.Entry{entry("02/20/2099", "12:24 PM")}},
		core.Cron{Expression: "*/5 * * * *"},
		core.Recurring{Start: entry("02/20/2099", "12:24 PM"), Rule: core.Rule{Every: 1, EveryUnit: core.Day}},
	} {
		_, err := r.Next(core.Request{Timezone: bad, Schedule: s})
		assert.True(t, errors.Is(err, core.ErrUnknownTimezone))
		assert.True(t, core.IsValidation(err))
	}
}

func TestWithZones_Restricts(t *testing.T) {
	r := newTestResolver(WithZones(timezone.NewSet("UTC")))

	_, err := r.Next(core.Request{Timezone: "Asia/Calcutta", Schedule: core.Cron{Expression: "* * * * *"}})

	assert.True(t, errors.Is(err, core.ErrUnknownTimezone))
}

func TestResolve_InputsAreNotMutated(t *testing.T) {
	r := newTestResolver()
	entries := []core.Entry{entry("01/20/2019", "12:24 PM"), entry("02/20/2099", "12:24 PM")}
	req := core.Request{Timezone: "Asia/Calcutta", Schedule: core.DateSpecific{Entries: entries}}

	first, err := r.Next(req)
	require.NoError(t, err)
	second, err := r.Next(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "", entries[0].Timezone)
	assert.Equal(t, "", entries[1].Timezone)
	assert.Equal(t, "", req.DateFormat)
}

func TestResolve_ExplicitReference(t *testing.T) {
	r := newTestResolver()
	req := core.Request{Timezone: "UTC", Schedule: core.Cron{Expression: "0 0 1 * *"}}

	eta, err := r.Resolve(req, time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC), eta.At)
}

func TestErrorMessagesMentionInput(t *testing.T) {
	r := newTestResolver()

	_, err := r.DateSpecific([]core.Entry{entry("2099-02-20", "12:24 PM")}, "UTC", "", time.Time{})

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "2099-02-20"))
	assert.True(t, strings.Contains(err.Error(), "%m/%d/%Y"))
}
