package booking

import (
	"time"

	"github.com/hanksha/turf-booking-backend/clock"
)

// Booking is one reserved slot. Date and times are copied from the slot at reservation so
// the record outlives the slot; bookings are never deleted.
type Booking struct {
	ID                 string          `json:"id"`
	BatchID            string          `json:"batchId"`
	UserID             string          `json:"userId"`
	TurfID             string          `json:"turfId"`
	SlotID             string          `json:"slotId"`
	Date               clock.Date      `json:"date"`
	StartTime          clock.TimeOfDay `json:"startTime"`
	EndTime            clock.TimeOfDay `json:"endTime"`
	Status             Status          `json:"status"`
	Price              int64           `json:"price"`
	CancellationCharge *int64          `json:"cancellationCharge,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

func (b Booking) EndsAt(loc *time.Location) time.Time {
	return b.Date.At(b.EndTime, loc)
}

// Filter narrows ListBookings. Zero-valued fields do not filter.
type Filter struct {
	UserID      string
	TurfAdminID string
	TurfID      string
	BatchID     string
	Status      Status
	// OnOrBefore keeps bookings whose date is not after it.
	OnOrBefore clock.Date
}

// Reservation is the batch handed to the repository for the atomic reserve.
type Reservation struct {
	TurfID   string
	UserID   string
	BatchID  string
	Bookings []Booking
	At       time.Time
}

type ReserveResult struct {
	Bookings []Booking
	// Superseded holds the same user's stale PENDING bookings on the requested slots,
	// moved to FAILED so the new batch could take their place.
	Superseded []Booking
}

// Transition moves bookings from one status to another with a compare-and-set on From.
type Transition struct {
	IDs    []string
	From   Status
	To     Status
	Charge *int64
	At     time.Time
	// AllOrNothing rolls back unless every id was still in From.
	AllOrNothing bool
}
