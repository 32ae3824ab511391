package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaySet(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "single day",
			from: date(2025, time.October, 10),
			to:   date(2025, time.October, 10),
			want: 1,
		},
		{
			name: "two nights include both endpoints",
			from: date(2025, time.October, 10),
			to:   date(2025, time.October, 12),
			want: 3,
		},
		{
			name: "inverted range is empty",
			from: date(2025, time.October, 12),
			to:   date(2025, time.October, 10),
			want: 0,
		},
		{
			name: "across month boundary",
			from: date(2025, time.October, 30),
			to:   date(2025, time.November, 2),
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := DaySet(tt.from, tt.to)
			require.Len(t, days, tt.want)
			if tt.want > 0 {
				assert.Equal(t, DayOf(tt.from), days[0])
				assert.Equal(t, DayOf(tt.to), days[len(days)-1])
			}
		})
	}
}

// Cardinality property: |daySet| = nights + 1 for any ordered range.
func TestDaySetCardinality(t *testing.T) {
	from := date(2025, time.March, 1)
	for span := 0; span <= 40; span++ {
		to := from.AddDate(0, 0, span)
		days := DaySet(from, to)
		assert.Len(t, days, Nights(from, to)+1)
	}
}

func TestDaySetIgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2025, time.October, 10, 14, 30, 0, 0, time.UTC)
	to := time.Date(2025, time.October, 12, 9, 15, 0, 0, time.UTC)

	days := DaySet(from, to)

	require.Len(t, days, 3)
	for _, d := range days {
		assert.Equal(t, 0, d.Hour())
	}
}

func TestDisabledDays(t *testing.T) {
	bookings := []Booking{
		{DateFrom: date(2025, time.October, 10), DateTo: date(2025, time.October, 12)},
		{DateFrom: date(2025, time.October, 20), DateTo: date(2025, time.October, 21)},
	}

	disabled := DisabledDays(bookings)

	assert.Len(t, disabled, 5)
	assert.True(t, IsDayDisabled(disabled, date(2025, time.October, 10)))
	assert.True(t, IsDayDisabled(disabled, date(2025, time.October, 11)))
	// Checkout day stays blocked, back-to-back stays are not allowed.
	assert.True(t, IsDayDisabled(disabled, date(2025, time.October, 12)))
	assert.False(t, IsDayDisabled(disabled, date(2025, time.October, 13)))
}

// Adding a booking to the collection must never shrink the disabled set.
func TestDisabledDaysMonotonicGrowth(t *testing.T) {
	bookings := []Booking{
		{DateFrom: date(2025, time.October, 10), DateTo: date(2025, time.October, 12)},
	}
	before := DisabledDays(bookings)

	bookings = append(bookings, Booking{
		DateFrom: date(2025, time.October, 11), // overlap with the first one
		DateTo:   date(2025, time.October, 15),
	})
	after := DisabledDays(bookings)

	for day := range before {
		_, ok := after[day]
		assert.True(t, ok, "day %s disappeared from the disabled set", day.Format(DateFormat))
	}
	assert.Greater(t, len(after), len(before))
}

func TestDisabledDaysLocationIndependent(t *testing.T) {
	oslo, err := time.LoadLocation("Europe/Oslo")
	require.NoError(t, err)

	bookings := []Booking{
		{
			DateFrom: time.Date(2025, time.October, 10, 0, 0, 0, 0, oslo),
			DateTo:   time.Date(2025, time.October, 11, 0, 0, 0, 0, oslo),
		},
	}

	disabled := DisabledDays(bookings)

	assert.True(t, IsDayDisabled(disabled, date(2025, time.October, 10)))
	assert.True(t, IsDayDisabled(disabled, time.Date(2025, time.October, 11, 18, 0, 0, 0, oslo)))
}
