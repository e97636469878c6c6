// Package memstore keeps turfs, slots and bookings in process memory behind one lock. It
// satisfies the same repository contracts as the Postgres repositories and backs the
// memory storage driver and the concurrency tests.
package memstore

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/hanksha/turf-booking-backend/booking"
	"github.com/hanksha/turf-booking-backend/clock"
	"github.com/hanksha/turf-booking-backend/slot"
	"github.com/hanksha/turf-booking-backend/turf"
)

type Store struct {
	mu       sync.Mutex
	turfs    map[string]turf.Turf
	slots    map[string]slot.Slot
	windows  map[slot.Key]string
	bookings map[string]booking.Booking
	// active maps a slot id to the id of the PENDING or CONFIRMED booking holding it.
	active map[string]string
}

func New() *Store {
	return &Store{
		turfs:    map[string]turf.Turf{},
		slots:    map[string]slot.Slot{},
		windows:  map[slot.Key]string{},
		bookings: map[string]booking.Booking{},
		active:   map[string]string{},
	}
}

func (s *Store) GetTurf(ctx context.Context, id string) (turf.Turf, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.turfs[id]
	if !ok {
		return turf.Turf{}, turf.ErrTurfNotFound
	}
	return t, nil
}

func (s *Store) InsertTurf(ctx context.Context, t turf.Turf) (turf.Turf, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	if _, ok := s.turfs[t.ID]; ok {
		return turf.Turf{}, fmt.Errorf("turf '%v' already exists", t.ID)
	}

	s.turfs[t.ID] = t

	return t, nil
}

func (s *Store) UpdateTurf(ctx context.Context, t turf.Turf) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.turfs[t.ID]; !ok {
		return turf.ErrTurfNotFound
	}

	s.turfs[t.ID] = t

	return nil
}

func (s *Store) ListSlots(ctx context.Context, turfID string, date clock.Date) ([]slot.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots := []slot.Slot{}

	for _, sl := range s.slots {
		if sl.TurfID == turfID && sl.Date == date {
			slots = append(slots, s.withBooked(sl))
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].StartTime < slots[j].StartTime })

	return slots, nil
}

func (s *Store) GetSlots(ctx context.Context, ids []string) ([]slot.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots := []slot.Slot{}

	for _, id := range ids {
		if sl, ok := s.slots[id]; ok {
			slots = append(slots, s.withBooked(sl))
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date.Before(slots[j].Date)
		}
		return slots[i].StartTime < slots[j].StartTime
	})

	return slots, nil
}

func (s *Store) GetSlot(ctx context.Context, id string) (slot.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl, ok := s.slots[id]
	if !ok {
		return slot.Slot{}, slot.ErrSlotNotFound
	}
	return s.withBooked(sl), nil
}

func (s *Store) InsertSlot(ctx context.Context, sl slot.Slot) (slot.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.turfs[sl.TurfID]; !ok {
		return slot.Slot{}, turf.ErrTurfNotFound
	}

	if _, ok := s.windows[sl.Key()]; ok {
		return slot.Slot{}, slot.ErrDuplicateSlot
	}

	if sl.ID == "" {
		sl.ID = uuid.NewString()
	}

	sl.Booked = false
	s.slots[sl.ID] = sl
	s.windows[sl.Key()] = sl.ID

	return sl, nil
}

func (s *Store) DeleteSlot(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl, ok := s.slots[id]
	if !ok {
		return slot.ErrSlotNotFound
	}

	if _, booked := s.active[id]; booked {
		return slot.ErrSlotBooked
	}

	s.deleteSlot(sl)

	return nil
}

func (s *Store) DeleteUnbookedSlots(ctx context.Context, turfID string, date clock.Date) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64

	for id, sl := range s.slots {
		if sl.TurfID != turfID || sl.Date != date {
			continue
		}
		if _, booked := s.active[id]; booked {
			continue
		}
		s.deleteSlot(sl)
		removed++
	}

	return removed, nil
}

// Reserve checks and inserts the whole batch under the store lock, so no two reservations
// can both observe a slot as free.
func (s *Store) Reserve(ctx context.Context, reservation booking.Reservation) (booking.ReserveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	missing := []string{}
	for _, b := range reservation.Bookings {
		sl, ok := s.slots[b.SlotID]
		if !ok || sl.TurfID != reservation.TurfID {
			missing = append(missing, b.SlotID)
		}
	}

	if len(missing) > 0 {
		return booking.ReserveResult{}, &booking.SlotUnavailableError{SlotIDs: missing}
	}

	taken := []string{}
	stale := []string{}

	for _, b := range reservation.Bookings {
		holderID, ok := s.active[b.SlotID]
		if !ok {
			continue
		}

		holder := s.bookings[holderID]
		if holder.Status == booking.StatusPending && holder.UserID == reservation.UserID {
			stale = append(stale, holderID)
			continue
		}

		taken = append(taken, b.SlotID)
	}

	if len(taken) > 0 {
		slices.Sort(taken)
		return booking.ReserveResult{}, &booking.SlotUnavailableError{SlotIDs: taken}
	}

	superseded := []booking.Booking{}

	for _, id := range stale {
		b := s.bookings[id]
		b.Status = booking.StatusFailed
		b.UpdatedAt = reservation.At
		s.bookings[id] = b
		delete(s.active, b.SlotID)
		superseded = append(superseded, b)
	}

	for _, b := range reservation.Bookings {
		s.bookings[b.ID] = b
		s.active[b.SlotID] = b.ID
	}

	return booking.ReserveResult{Bookings: reservation.Bookings, Superseded: superseded}, nil
}

func (s *Store) GetBookingByID(ctx context.Context, id string) (booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return booking.Booking{}, booking.ErrBookingNotFound
	}
	return b, nil
}

func (s *Store) ListBookings(ctx context.Context, filter booking.Filter) ([]booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := []booking.Booking{}

	for _, b := range s.bookings {
		if s.matches(b, filter) {
			bookings = append(bookings, b)
		}
	}

	sort.Slice(bookings, func(i, j int) bool {
		a, b := bookings[i], bookings[j]
		if a.Date != b.Date {
			return a.Date.Before(b.Date)
		}
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		return a.ID < b.ID
	})

	return bookings, nil
}

func (s *Store) ApplyTransition(ctx context.Context, transition booking.Transition) ([]booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []string{}
	for _, id := range transition.IDs {
		if b, ok := s.bookings[id]; ok && b.Status == transition.From {
			matched = append(matched, id)
		}
	}

	if transition.AllOrNothing && len(matched) != len(transition.IDs) {
		return nil, fmt.Errorf("%w: %d of %d bookings are no longer %v", booking.ErrInvalidTransition, len(transition.IDs)-len(matched), len(transition.IDs), transition.From)
	}

	updated := make([]booking.Booking, 0, len(matched))

	for _, id := range matched {
		b := s.bookings[id]
		b.Status = transition.To
		b.UpdatedAt = transition.At
		if transition.Charge != nil {
			charge := *transition.Charge
			b.CancellationCharge = &charge
		}

		s.bookings[id] = b

		if !b.Status.Active() && s.active[b.SlotID] == id {
			delete(s.active, b.SlotID)
		}

		updated = append(updated, b)
	}

	return updated, nil
}

func (s *Store) matches(b booking.Booking, filter booking.Filter) bool {
	if filter.UserID != "" && b.UserID != filter.UserID {
		return false
	}
	if filter.TurfAdminID != "" && s.turfs[b.TurfID].AdminID != filter.TurfAdminID {
		return false
	}
	if filter.TurfID != "" && b.TurfID != filter.TurfID {
		return false
	}
	if filter.BatchID != "" && b.BatchID != filter.BatchID {
		return false
	}
	if filter.Status != "" && b.Status != filter.Status {
		return false
	}
	if !filter.OnOrBefore.IsZero() && filter.OnOrBefore.Before(b.Date) {
		return false
	}
	return true
}

func (s *Store) withBooked(sl slot.Slot) slot.Slot {
	_, sl.Booked = s.active[sl.ID]
	return sl
}

// deleteSlot detaches terminal bookings from the slot the way the database nulls the
// foreign key.
func (s *Store) deleteSlot(sl slot.Slot) {
	delete(s.slots, sl.ID)
	delete(s.windows, sl.Key())

	for id, b := range s.bookings {
		if b.SlotID == sl.ID {
			b.SlotID = ""
			s.bookings[id] = b
		}
	}
}
