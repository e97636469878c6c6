// Package pricing computes the price of a single hourly slot from a turf's rate card.
package pricing

import (
	"math"

	"github.com/hanksha/turf-booking-backend/clock"
)

// Rates is the subset of a turf's configuration that drives pricing. Amounts are whole
// currency units.
type Rates struct {
	BasePrice      int64
	WeekdayPrice   int64
	WeekendPrice   int64
	PeakMultiplier float64
	PeakStart      clock.TimeOfDay
	PeakEnd        clock.TimeOfDay
}

type Quote struct {
	BasePrice  int64   `json:"basePrice"`
	FinalPrice int64   `json:"finalPrice"`
	IsPeak     bool    `json:"isPeak"`
	Multiplier float64 `json:"multiplier"`
}

// Price returns the quote for a slot starting at start on date. The base is the weekday
// or weekend rate as configured, zero included; a multiplier <= 0 is treated as 1.
func Price(r Rates, date clock.Date, start clock.TimeOfDay) Quote {
	base := r.WeekdayPrice
	if date.IsWeekend() {
		base = r.WeekendPrice
	}

	multiplier := r.PeakMultiplier
	if multiplier <= 0 {
		multiplier = 1
	}

	q := Quote{BasePrice: base, FinalPrice: base, Multiplier: 1}

	if IsPeak(r, start) {
		q.IsPeak = true
		q.Multiplier = multiplier
		q.FinalPrice = int64(math.Round(float64(base) * multiplier))
	}

	return q
}

// IsPeak reports whether start falls in [PeakStart, PeakEnd). An empty window never matches.
func IsPeak(r Rates, start clock.TimeOfDay) bool {
	return r.PeakStart < r.PeakEnd && start >= r.PeakStart && start < r.PeakEnd
}

// Total sums the final prices of quotes and adds fee.
func Total(quotes []Quote, fee int64) int64 {
	total := fee
	for _, q := range quotes {
		total += q.FinalPrice
	}
	return total
}
