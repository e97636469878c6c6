package turf

import (
	"fmt"

	"github.com/hanksha/turf-booking-backend/clock"
	"github.com/hanksha/turf-booking-backend/pricing"
)

type Status string

const (
	StatusActive      Status = "ACTIVE"
	StatusMaintenance Status = "MAINTENANCE"
	StatusClosed      Status = "CLOSED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusMaintenance, StatusClosed:
		return true
	}
	return false
}

type Turf struct {
	ID             string          `json:"id"`
	AdminID        string          `json:"adminId"`
	Name           string          `json:"name"`
	BasePrice      int64           `json:"basePrice"`
	WeekdayPrice   int64           `json:"weekdayPrice"`
	WeekendPrice   int64           `json:"weekendPrice"`
	PeakMultiplier float64         `json:"peakHourMultiplier"`
	PeakStart      clock.TimeOfDay `json:"peakStartTime"`
	PeakEnd        clock.TimeOfDay `json:"peakEndTime"`
	OpeningTime    clock.TimeOfDay `json:"openingTime"`
	ClosingTime    clock.TimeOfDay `json:"closingTime"`
	Approved       bool            `json:"isApproved"`
	Status         Status          `json:"status"`
}

func (t Turf) Rates() pricing.Rates {
	return pricing.Rates{
		BasePrice:      t.BasePrice,
		WeekdayPrice:   t.WeekdayPrice,
		WeekendPrice:   t.WeekendPrice,
		PeakMultiplier: t.PeakMultiplier,
		PeakStart:      t.PeakStart,
		PeakEnd:        t.PeakEnd,
	}
}

// Bookable reports whether players may reserve slots on the turf.
func (t Turf) Bookable() bool {
	return t.Approved && t.Status == StatusActive
}

// Validate checks the hour and pricing rules. Opening and closing times must fall on
// whole hours since slots are generated hour by hour.
func (t Turf) Validate() error {
	if t.AdminID == "" {
		return fmt.Errorf("%w: missing admin id", ErrInvalidTurf)
	}
	if err := ValidateHours(t.OpeningTime, t.ClosingTime); err != nil {
		return err
	}
	if !t.PeakStart.Valid() || !t.PeakEnd.Valid() || t.PeakStart >= t.PeakEnd {
		return fmt.Errorf("%w: peak start must be before peak end", ErrInvalidTurf)
	}
	if t.BasePrice < 0 || t.WeekdayPrice < 0 || t.WeekendPrice < 0 {
		return fmt.Errorf("%w: prices cannot be negative", ErrInvalidTurf)
	}
	if t.PeakMultiplier < 1 {
		return fmt.Errorf("%w: peak multiplier must be at least 1", ErrInvalidTurf)
	}
	if t.Status != "" && !t.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTurf, t.Status)
	}
	return nil
}

func ValidateHours(opening, closing clock.TimeOfDay) error {
	if !opening.Valid() || !closing.Valid() || opening >= closing {
		return fmt.Errorf("%w: opening time must be before closing time", ErrInvalidTurf)
	}
	if !opening.OnTheHour() || !closing.OnTheHour() {
		return fmt.Errorf("%w: opening and closing times must be whole hours", ErrInvalidTurf)
	}
	return nil
}
