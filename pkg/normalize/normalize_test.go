package normalize

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdziat/schedule-eta/pkg/core"
	"github.com/jdziat/schedule-eta/pkg/timezone"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		raw          string
		hour, minute int
	}{
		{"12:24 PM", 12, 24},
		{"12:00 AM", 0, 0},
		{"01:05 AM", 1, 5},
		{"9:30 am", 9, 30},
		{"11:59 pm", 23, 59},
		{"07:15 PM", 19, 15},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			h, m, err := ParseClock(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.hour, h)
			assert.Equal(t, tt.minute, m)
		})
	}
}

func TestParseClock_Invalid(t *testing.T) {
	for _, raw := range []string{"", "12:24", "13:00 PM", "00:30 AM", "12:60 PM", "12:24PM", "12:24  PM", "noon", "12.24 PM", " 12:24 PM"} {
		_, _, err := ParseClock(raw)
		assert.True(t, errors.Is(err, core.ErrUnparsableTime), "expected %q to be rejected", raw)
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		format, layout string
	}{
		{"%m/%d/%Y", "1/2/2006"},
		{"%d-%m-%Y", "2-1-2006"},
		{"%Y-%m-%d", "2006-1-2"},
		{"%d %b %y", "2 Jan 06"},
		{"%A, %B %d %Y", "Monday, January 2 2006"},
		{"%Y%%%m", "2006%1"},
		{"%Y-%m-%dT", "2006-1-2T"},
	}
	for _, tt := range tests {
		got, err := Layout(tt.format)
		require.NoError(t, err, tt.format)
		assert.Equal(t, tt.layout, got, tt.format)
	}
}

func TestLayout_Unsupported(t *testing.T) {
	for _, format := range []string{"", "%Q", "%Y-%m-%", "day %d", "%Y 01"} {
		_, err := Layout(format)
		assert.True(t, errors.Is(err, core.ErrUnsupportedFormat), "expected %q to be rejected", format)
	}
}

func TestParseDate(t *testing.T) {
	y, m, d, err := ParseDate(core.DateString("2/02/2018"), "")
	require.NoError(t, err)
	assert.Equal(t, []int{2018, 2, 2}, []int{y, int(m), d})

	y, m, d, err = ParseDate(core.DateString("20-02-2099"), "%d-%m-%Y")
	require.NoError(t, err)
	assert.Equal(t, []int{2099, 2, 20}, []int{y, int(m), d})

	y, m, d, err = ParseDate(core.DateOf(2030, time.July, 4), "ignored")
	require.NoError(t, err)
	assert.Equal(t, []int{2030, 7, 4}, []int{y, int(m), d})
}

func TestParseDate_Invalid(t *testing.T) {
	_, _, _, err := ParseDate(core.DateString("20/02/2099"), "%m/%d/%Y")

	var ve *core.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, core.ErrUnparsableDate, ve.Reason)
	assert.Equal(t, "20/02/2099", ve.Value)
	assert.Equal(t, "%m/%d/%Y", ve.Format)
}

func TestNormalize_Kolkata(t *testing.T) {
	n := New(nil)

	got, err := n.Normalize(core.DateString("02/20/2099"), "12:24 PM", "Asia/Calcutta", "%m/%d/%Y")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2099, 2, 20, 6, 54, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestNormalize_NoTimezoneIsUTC(t *testing.T) {
	n := New(nil)

	got, err := n.Normalize(core.DateOf(2026, 2, 8), "09:00 AM", "", "")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 8, 9, 0, 0, 0, time.UTC), got)
}

func TestNormalize_Errors(t *testing.T) {
	n := New(nil)
	date := core.DateString("02/20/2099")

	tests := []struct {
		name   string
		date   core.Date
		clock  string
		tz     string
		format string
		reason error
	}{
		{"missing date", core.Date{}, "12:24 PM", "UTC", "", core.ErrMissingDate},
		{"missing time", date, "", "UTC", "", core.ErrMissingTime},
		{"bad time", date, "12:24", "UTC", "", core.ErrUnparsableTime},
		{"bad date", core.DateString("2099-02-20"), "12:24 PM", "UTC", "", core.ErrUnparsableDate},
		{"bad zone", date, "12:24 PM", "Invalid/Zone", "", core.ErrUnknownTimezone},
		{"bad format", date, "12:24 PM", "UTC", "%Q", core.ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := n.Normalize(tt.date, tt.clock, tt.tz, tt.format)
			assert.True(t, errors.Is(err, tt.reason), "got %v", err)
			assert.True(t, core.IsValidation(err))
		})
	}
}

func TestNormalize_RestrictedZones(t *testing.T) {
	n := New(timezone.NewSet("UTC"))

	_, err := n.Normalize(core.DateOf(2026, 1, 1), "09:00 AM", "Europe/Paris", "")

	assert.True(t, errors.Is(err, core.ErrUnknownTimezone))
}

func TestNormalize_RoundTrip(t *testing.T) {
	n := New(nil)
	zones := []string{"Asia/Calcutta", "America/New_York", "Europe/London", "Australia/Sydney", "Pacific/Chatham"}
	clocks := []string{"12:00 AM", "06:45 AM", "12:24 PM", "11:59 PM"}

	for _, tz := range zones {
		loc, err := n.Location(tz)
		require.NoError(t, err)
		for _, clock := range clocks {
			got, err := n.Normalize(core.DateOf(2026, time.May, 17), clock, tz, "")
			require.NoError(t, err)

			hour, minute, _ := ParseClock(clock)
			local := got.In(loc)
			assert.Equal(t, time.Date(2026, time.May, 17, hour, minute, 0, 0, loc).Format(time.DateTime),
				local.Format(time.DateTime), "%s %s", tz, clock)
		}
	}
}

func TestNormalize_DSTPolicy(t *testing.T) {
	n := New(nil)

	// 01:30 occurs twice in New York on 2026-11-01; the earlier (EDT) wins.
	got, err := n.Normalize(core.DateOf(2026, time.November, 1), "01:30 AM", "America/New_York", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 11, 1, 5, 30, 0, 0, time.UTC), got)

	// 02:30 never occurs in New York on 2026-03-08; it is pushed past the gap.
	got, err = n.Normalize(core.DateOf(2026, time.March, 8), "02:30 AM", "America/New_York", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 8, 7, 30, 0, 0, time.UTC), got)
}

func TestNormalizeBound(t *testing.T) {
	n := New(nil)

	got, err := n.NormalizeBound(core.Bound{Date: core.DateString("2/02/2018"), Time: "12:23 PM"}, "Asia/Calcutta", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2018, 2, 2, 6, 53, 0, 0, time.UTC), got)

	got, err = n.NormalizeBound(core.Bound{Date: core.DateString("2/02/2018")}, "Asia/Calcutta", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2018, 2, 1, 18, 30, 0, 0, time.UTC), got)

	_, err = n.NormalizeBound(core.Bound{}, "UTC", "")
	assert.True(t, errors.Is(err, core.ErrMissingDate))
}
