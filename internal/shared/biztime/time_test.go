package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Santo Domingo is UTC-4 with no DST, so business midnight is 04:00 UTC
// year round.

func TestParseDateIsBusinessMidnightUTC(t *testing.T) {
	got, err := ParseDate("2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 4, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("10/06/2024")
	require.Error(t, err)
}

func TestFormatDateRoundTrips(t *testing.T) {
	parsed, err := ParseDate("2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", FormatDate(parsed))

	// 03:59 UTC is still the previous day in the business timezone.
	assert.Equal(t, "2024-12-30", FormatDate(time.Date(2024, 12, 31, 3, 59, 0, 0, time.UTC)))
}

func TestDayBoundsUTC(t *testing.T) {
	noon := time.Date(2024, 6, 10, 16, 0, 0, 0, time.UTC)

	start := StartOfDayUTC(noon)
	end := EndOfDayUTC(noon)

	assert.Equal(t, time.Date(2024, 6, 10, 4, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 6, 11, 3, 59, 59, 999999999, time.UTC), end)
	assert.True(t, start.Before(end))
}

func TestDayBoundsCrossUTCDate(t *testing.T) {
	// 02:00 UTC on June 11 is still the evening of June 10 in business time.
	lateEvening := time.Date(2024, 6, 11, 2, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 6, 10, 4, 0, 0, 0, time.UTC), StartOfDayUTC(lateEvening))
	assert.Equal(t, "2024-06-10", FormatDate(lateEvening))
}
