package rental

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewRentalComputesTotalAndReturnDate(t *testing.T) {
	r, err := New(1, 2, 3, 4, nil, date(2024, 6, 10), 4, 5000, "")
	require.NoError(t, err)

	assert.Equal(t, int64(20000), r.TotalCents)
	assert.Equal(t, 4, r.DayCount)
	assert.Equal(t, int64(5000), r.PricePerDayCents)
	assert.Equal(t, date(2024, 6, 14), r.ScheduledReturn)
	assert.Equal(t, StatusActive, r.Status)
	assert.True(t, r.Active)
}

func TestNewRentalCrossesMonthBoundary(t *testing.T) {
	r, err := New(1, 2, 3, 4, nil, date(2024, 1, 30), 3, 5000, "")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 2, 2), r.ScheduledReturn)
}

func TestNewRentalValidation(t *testing.T) {
	tests := []struct {
		name     string
		dayCount int
		price    int64
		wantErr  string
	}{
		{"zero days", 0, 5000, "day count must be at least 1"},
		{"negative days", -2, 5000, "day count must be at least 1"},
		{"zero price", 3, 0, "price per day must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(1, 2, 3, 4, nil, date(2024, 6, 10), tt.dayCount, tt.price, "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMarkReturned(t *testing.T) {
	r, err := New(1, 2, 3, 4, nil, date(2024, 6, 10), 2, 5000, "")
	require.NoError(t, err)

	returnDate := date(2024, 6, 11)
	require.NoError(t, r.MarkReturned(returnDate))
	assert.Equal(t, StatusReturned, r.Status)
	require.NotNil(t, r.ActualReturn)
	assert.Equal(t, returnDate, *r.ActualReturn)

	// Returning twice is rejected.
	assert.Error(t, r.MarkReturned(returnDate))
}

func TestMarkOverdue(t *testing.T) {
	r, err := New(1, 2, 3, 4, nil, date(2024, 6, 10), 2, 5000, "")
	require.NoError(t, err)

	// Before the scheduled return nothing happens.
	assert.Error(t, r.MarkOverdue(date(2024, 6, 11)))
	assert.Equal(t, StatusActive, r.Status)

	require.NoError(t, r.MarkOverdue(date(2024, 6, 13)))
	assert.Equal(t, StatusOverdue, r.Status)

	// An overdue rental can still be returned.
	require.NoError(t, r.MarkReturned(date(2024, 6, 14)))
	assert.Equal(t, StatusReturned, r.Status)

	// A returned rental cannot become overdue.
	r2, err := New(1, 2, 3, 4, nil, date(2024, 6, 10), 2, 5000, "")
	require.NoError(t, err)
	require.NoError(t, r2.MarkReturned(date(2024, 6, 11)))
	assert.Error(t, r2.MarkOverdue(date(2024, 6, 20)))
}
