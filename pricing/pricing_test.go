package pricing_test

import (
	"testing"
	"time"

	"github.com/hanksha/turf-booking-backend/clock"
	"github.com/hanksha/turf-booking-backend/pricing"
	"github.com/stretchr/testify/require"
)

var rates = pricing.Rates{
	BasePrice:      900,
	WeekdayPrice:   1000,
	WeekendPrice:   1200,
	PeakMultiplier: 1.2,
	PeakStart:      clock.NewTimeOfDay(18, 0),
	PeakEnd:        clock.NewTimeOfDay(21, 0),
}

var wednesday = clock.NewDate(2026, time.October, 21)
var saturday = clock.NewDate(2026, time.October, 24)

func TestPrice(t *testing.T) {
	tests := []struct {
		name  string
		date  clock.Date
		start clock.TimeOfDay
		want  pricing.Quote
	}{
		{
			name:  "weekday peak",
			date:  wednesday,
			start: clock.NewTimeOfDay(19, 0),
			want:  pricing.Quote{BasePrice: 1000, FinalPrice: 1200, IsPeak: true, Multiplier: 1.2},
		},
		{
			name:  "weekday off peak",
			date:  wednesday,
			start: clock.NewTimeOfDay(10, 0),
			want:  pricing.Quote{BasePrice: 1000, FinalPrice: 1000, IsPeak: false, Multiplier: 1},
		},
		{
			name:  "weekend peak",
			date:  saturday,
			start: clock.NewTimeOfDay(18, 0),
			want:  pricing.Quote{BasePrice: 1200, FinalPrice: 1440, IsPeak: true, Multiplier: 1.2},
		},
		{
			name:  "peak end is exclusive",
			date:  wednesday,
			start: clock.NewTimeOfDay(21, 0),
			want:  pricing.Quote{BasePrice: 1000, FinalPrice: 1000, IsPeak: false, Multiplier: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, pricing.Price(rates, tt.date, tt.start))
		})
	}
}

func TestPriceRounding(t *testing.T) {
	r := rates
	r.WeekdayPrice = 333
	r.PeakMultiplier = 1.15

	q := pricing.Price(r, wednesday, clock.NewTimeOfDay(18, 0))

	// 333 * 1.15 = 382.95
	require.Equal(t, int64(383), q.FinalPrice)
}

func TestZeroDayRateIsFree(t *testing.T) {
	r := rates
	r.WeekendPrice = 0

	q := pricing.Price(r, saturday, clock.NewTimeOfDay(9, 0))
	require.Zero(t, q.BasePrice)
	require.Zero(t, q.FinalPrice)

	peak := pricing.Price(r, saturday, clock.NewTimeOfDay(19, 0))
	require.True(t, peak.IsPeak)
	require.Zero(t, peak.FinalPrice)

	weekday := pricing.Price(r, wednesday, clock.NewTimeOfDay(9, 0))
	require.Equal(t, r.WeekdayPrice, weekday.BasePrice)
}

func TestPriceIsDeterministic(t *testing.T) {
	first := pricing.Price(rates, wednesday, clock.NewTimeOfDay(20, 0))

	for range 100 {
		require.Equal(t, first, pricing.Price(rates, wednesday, clock.NewTimeOfDay(20, 0)))
	}
}

func TestTotal(t *testing.T) {
	quotes := []pricing.Quote{
		pricing.Price(rates, wednesday, clock.NewTimeOfDay(19, 0)),
		pricing.Price(rates, wednesday, clock.NewTimeOfDay(10, 0)),
	}

	require.Equal(t, int64(2250), pricing.Total(quotes, 50))
}
