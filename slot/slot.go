package slot

import (
	"time"

	"github.com/hanksha/turf-booking-backend/clock"
)

// Slot is one bookable hour on a turf. Booked is derived on read from the existence of a
// PENDING or CONFIRMED booking referencing the slot; it is never stored.
type Slot struct {
	ID        string          `json:"id"`
	TurfID    string          `json:"turfId"`
	Date      clock.Date      `json:"date"`
	StartTime clock.TimeOfDay `json:"startTime"`
	EndTime   clock.TimeOfDay `json:"endTime"`
	Booked    bool            `json:"isBooked"`
}

// Key identifies the window a slot occupies; no two slots may share one.
type Key struct {
	TurfID    string
	Date      clock.Date
	StartTime clock.TimeOfDay
	EndTime   clock.TimeOfDay
}

func (s Slot) Key() Key {
	return Key{TurfID: s.TurfID, Date: s.Date, StartTime: s.StartTime, EndTime: s.EndTime}
}

func (s Slot) StartsAt(loc *time.Location) time.Time {
	return s.Date.At(s.StartTime, loc)
}

func (s Slot) EndsAt(loc *time.Location) time.Time {
	return s.Date.At(s.EndTime, loc)
}

// Hourly builds the unsaved slot for the window [hour, hour+1).
func Hourly(turfID string, date clock.Date, hour int) Slot {
	return Slot{
		TurfID:    turfID,
		Date:      date,
		StartTime: clock.NewTimeOfDay(hour, 0),
		EndTime:   clock.NewTimeOfDay(hour+1, 0),
	}
}
