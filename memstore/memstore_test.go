package memstore_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/hanksha/turf-booking-backend/booking"
	"github.com/hanksha/turf-booking-backend/clock"
	"github.com/hanksha/turf-booking-backend/identity"
	"github.com/hanksha/turf-booking-backend/memstore"
	"github.com/hanksha/turf-booking-backend/slot"
	"github.com/hanksha/turf-booking-backend/turf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	wednesday  = clock.NewDate(2026, time.October, 14)
	owner      = identity.Actor{UserID: "owner-1", Role: identity.RoleTurfAdmin}
	superAdmin = identity.Actor{UserID: "root", Role: identity.RoleSuperAdmin}
	alice      = identity.Actor{UserID: "alice", Role: identity.RolePlayer}
	bob        = identity.Actor{UserID: "bob", Role: identity.RolePlayer}
)

type recorder struct {
	mu     sync.Mutex
	events []booking.Event
}

func (r *recorder) Publish(ctx context.Context, event booking.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recorder) ofType(t booking.EventType) []booking.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := []booking.Event{}
	for _, e := range r.events {
		if e.Type == t {
			events = append(events, e)
		}
	}
	return events
}

type testDeps struct {
	store    *memstore.Store
	clock    *clock.Fake
	events   *recorder
	turfs    *turf.Service
	slots    *slot.Service
	bookings *booking.Service
	turf     turf.Turf
	ctx      context.Context
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()

	ctx := context.Background()
	logger := zap.NewNop()
	store := memstore.New()
	clk := clock.NewFake(wednesday.At(clock.NewTimeOfDay(8, 0), time.UTC))
	events := &recorder{}

	slots := slot.NewService(store, store, clk, time.UTC, logger)
	turfs := turf.NewService(store, slots, 7, logger)
	bookings := booking.NewService(store, store, store, events, clk, booking.Settings{
		Location:                  time.UTC,
		CancellationChargePercent: 20,
		PlatformFee:               50,
	}, logger)

	created, err := turfs.CreateTurf(ctx, turf.Turf{
		Name:           "Downtown Arena",
		BasePrice:      1000,
		WeekdayPrice:   1000,
		WeekendPrice:   1200,
		PeakMultiplier: 1.2,
		PeakStart:      clock.NewTimeOfDay(18, 0),
		PeakEnd:        clock.NewTimeOfDay(21, 0),
		OpeningTime:    clock.NewTimeOfDay(6, 0),
		ClosingTime:    clock.NewTimeOfDay(22, 0),
	}, owner)
	require.NoError(t, err)

	approved, err := turfs.ApproveTurf(ctx, created.ID, superAdmin)
	require.NoError(t, err)

	return testDeps{
		store:    store,
		clock:    clk,
		events:   events,
		turfs:    turfs,
		slots:    slots,
		bookings: bookings,
		turf:     approved,
		ctx:      ctx,
	}
}

func (d testDeps) slotAt(t *testing.T, date clock.Date, hour int) slot.Slot {
	t.Helper()

	slots, err := d.slots.ListSlots(d.ctx, d.turf.ID, date)
	require.NoError(t, err)

	for _, s := range slots {
		if s.StartTime == clock.NewTimeOfDay(hour, 0) {
			return s
		}
	}

	t.Fatalf("no %02d:00 slot on %v", hour, date)
	return slot.Slot{}
}

func (d testDeps) activeOn(t *testing.T, slotID string) int {
	t.Helper()

	all, err := d.store.ListBookings(d.ctx, booking.Filter{})
	require.NoError(t, err)

	n := 0
	for _, b := range all {
		if b.SlotID == slotID && b.Status.Active() {
			n++
		}
	}
	return n
}

func (d testDeps) reserveConfirmed(t *testing.T, actor identity.Actor, hour int) booking.Booking {
	t.Helper()

	outcome, err := d.bookings.Reserve(d.ctx, d.turf.ID, []string{d.slotAt(t, wednesday, hour).ID}, actor)
	require.NoError(t, err)

	confirmed, err := d.bookings.ConfirmPayment(d.ctx, outcome.BatchID)
	require.NoError(t, err)
	require.Len(t, confirmed, 1)

	return confirmed[0]
}

func TestSlotProvisioning(t *testing.T) {
	d := newTestDeps(t)

	for i := range 7 {
		slots, err := d.slots.ListSlots(d.ctx, d.turf.ID, wednesday.AddDays(i))
		require.NoError(t, err)
		require.Len(t, slots, 16)
		assert.Equal(t, clock.NewTimeOfDay(6, 0), slots[0].StartTime)
		assert.Equal(t, clock.NewTimeOfDay(22, 0), slots[15].EndTime)
	}

	slots, err := d.slots.ListSlots(d.ctx, d.turf.ID, wednesday.AddDays(7))
	require.NoError(t, err)
	require.Empty(t, slots)
}

func TestScenarioPricing(t *testing.T) {
	d := newTestDeps(t)

	available, err := d.bookings.ListAvailableSlots(d.ctx, d.turf.ID, wednesday)
	require.NoError(t, err)

	prices := map[clock.TimeOfDay]booking.PricedSlot{}
	for _, s := range available {
		prices[s.StartTime] = s
	}

	_, past := prices[clock.NewTimeOfDay(8, 0)]
	require.False(t, past, "a slot starting now is not offered")

	evening := prices[clock.NewTimeOfDay(19, 0)]
	assert.Equal(t, int64(1200), evening.Price.FinalPrice)
	assert.True(t, evening.Price.IsPeak)

	morning := prices[clock.NewTimeOfDay(10, 0)]
	assert.Equal(t, int64(1000), morning.Price.FinalPrice)
	assert.False(t, morning.Price.IsPeak)

	outcome, err := d.bookings.Reserve(d.ctx, d.turf.ID, []string{evening.ID, morning.ID}, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(2250), outcome.AmountDue)

	requested := d.events.ofType(booking.EventPaymentRequested)
	require.Len(t, requested, 1)
	assert.Equal(t, int64(2250), requested[0].AmountDue)
	assert.Equal(t, outcome.BatchID, requested[0].BatchID)
}

func TestConcurrentReservationOfOneSlot(t *testing.T) {
	d := newTestDeps(t)
	target := d.slotAt(t, wednesday, 19)

	const players = 25

	var wg sync.WaitGroup
	results := make(chan error, players)

	for i := range players {
		wg.Add(1)
		go func(player identity.Actor) {
			defer wg.Done()
			_, err := d.bookings.Reserve(d.ctx, d.turf.ID, []string{target.ID}, player)
			results <- err
		}(identity.Actor{UserID: fmt.Sprintf("player-%d", i), Role: identity.RolePlayer})
	}

	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, booking.ErrSlotUnavailable)
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, d.activeOn(t, target.ID))
}

func TestReservationIsAllOrNothing(t *testing.T) {
	d := newTestDeps(t)

	taken := d.slotAt(t, wednesday, 12)
	_, err := d.bookings.Reserve(d.ctx, d.turf.ID, []string{taken.ID}, bob)
	require.NoError(t, err)

	requested := []string{
		d.slotAt(t, wednesday, 10).ID,
		d.slotAt(t, wednesday, 11).ID,
		taken.ID,
		d.slotAt(t, wednesday, 13).ID,
	}

	_, err = d.bookings.Reserve(d.ctx, d.turf.ID, requested, alice)

	var unavailable *booking.SlotUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, []string{taken.ID}, unavailable.SlotIDs)

	mine, err := d.bookings.ListBookings(d.ctx, alice, booking.Filter{})
	require.NoError(t, err)
	assert.Empty(t, mine)

	for _, id := range requested {
		want := 0
		if id == taken.ID {
			want = 1
		}
		assert.Equal(t, want, d.activeOn(t, id))
	}
}

func TestRetrySupersedesOwnPendingBooking(t *testing.T) {
	d := newTestDeps(t)
	target := d.slotAt(t, wednesday, 15)

	first, err := d.bookings.Reserve(d.ctx, d.turf.ID, []string{target.ID}, alice)
	require.NoError(t, err)

	second, err := d.bookings.Reserve(d.ctx, d.turf.ID, []string{target.ID}, alice)
	require.NoError(t, err)
	require.NotEqual(t, first.BatchID, second.BatchID)

	stale, err := d.bookings.GetBooking(d.ctx, first.Bookings[0].ID, alice)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusFailed, stale.Status)
	assert.Equal(t, 1, d.activeOn(t, target.ID))

	_, err = d.bookings.Reserve(d.ctx, d.turf.ID, []string{target.ID}, bob)
	require.ErrorIs(t, err, booking.ErrSlotUnavailable)
}

func TestCancelConfirmedBooking(t *testing.T) {
	d := newTestDeps(t)
	b := d.reserveConfirmed(t, alice, 10)
	require.Equal(t, int64(1000), b.Price)

	t.Run("stranger is refused", func(t *testing.T) {
		_, err := d.bookings.Cancel(d.ctx, b.ID, bob)
		require.ErrorIs(t, err, booking.ErrNotAllowed)
	})

	t.Run("owner cancels once", func(t *testing.T) {
		outcome, err := d.bookings.Cancel(d.ctx, b.ID, alice)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusCancelled, outcome.Status)
		assert.Equal(t, int64(200), outcome.CancellationCharge)
		assert.Equal(t, int64(800), outcome.RefundDue)
		require.NotNil(t, outcome.Booking.CancellationCharge)
		assert.Equal(t, int64(200), *outcome.Booking.CancellationCharge)
		assert.Equal(t, 0, d.activeOn(t, b.SlotID))
	})

	t.Run("second cancel is an invalid transition", func(t *testing.T) {
		_, err := d.bookings.Cancel(d.ctx, b.ID, alice)
		require.ErrorIs(t, err, booking.ErrInvalidTransition)

		stored, err := d.store.GetBookingByID(d.ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(200), *stored.CancellationCharge)
		assert.Len(t, d.events.ofType(booking.EventCancelled), 1)
	})

	t.Run("missing booking", func(t *testing.T) {
		_, err := d.bookings.Cancel(d.ctx, "nope", alice)
		require.ErrorIs(t, err, booking.ErrBookingNotFound)
	})

	t.Run("slot can be booked again", func(t *testing.T) {
		_, err := d.bookings.Reserve(d.ctx, d.turf.ID, []string{b.SlotID}, bob)
		require.NoError(t, err)
	})
}

func TestTurfAdminCancelsOnOwnTurf(t *testing.T) {
	d := newTestDeps(t)
	b := d.reserveConfirmed(t, alice, 11)

	other := identity.Actor{UserID: "owner-2", Role: identity.RoleTurfAdmin}
	_, err := d.bookings.Cancel(d.ctx, b.ID, other)
	require.ErrorIs(t, err, booking.ErrNotAllowed)

	outcome, err := d.bookings.Cancel(d.ctx, b.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCancelled, outcome.Status)
}

func TestCancelPendingBookingFailsIt(t *testing.T) {
	d := newTestDeps(t)

	outcome, err := d.bookings.Reserve(d.ctx, d.turf.ID, []string{d.slotAt(t, wednesday, 9).ID}, alice)
	require.NoError(t, err)

	cancelled, err := d.bookings.Cancel(d.ctx, outcome.Bookings[0].ID, alice)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusFailed, cancelled.Status)
	assert.Zero(t, cancelled.CancellationCharge)
	assert.Nil(t, cancelled.Booking.CancellationCharge)
	assert.Equal(t, 0, d.activeOn(t, outcome.Bookings[0].SlotID))
}

func TestTerminalStatusesAbsorbEverything(t *testing.T) {
	d := newTestDeps(t)

	cancelled := d.reserveConfirmed(t, alice, 10)
	_, err := d.bookings.Cancel(d.ctx, cancelled.ID, alice)
	require.NoError(t, err)

	pending, err := d.bookings.Reserve(d.ctx, d.turf.ID, []string{d.slotAt(t, wednesday, 11).ID}, alice)
	require.NoError(t, err)
	failed, err := d.bookings.FailPayment(d.ctx, pending.BatchID, "card declined")
	require.NoError(t, err)

	expired := d.reserveConfirmed(t, alice, 12)
	d.clock.Set(wednesday.At(clock.NewTimeOfDay(13, 1), time.UTC))
	swept, err := d.bookings.Sweep(d.ctx)
	require.NoError(t, err)
	require.Len(t, swept, 1)

	for _, id := range []string{cancelled.ID, failed[0].ID, expired.ID} {
		_, err := d.bookings.ConfirmPayment(d.ctx, id)
		require.ErrorIs(t, err, booking.ErrInvalidTransition)

		_, err = d.bookings.FailPayment(d.ctx, id, "late")
		require.ErrorIs(t, err, booking.ErrInvalidTransition)

		_, err = d.bookings.Cancel(d.ctx, id, superAdmin)
		require.ErrorIs(t, err, booking.ErrInvalidTransition)

		_, err = d.bookings.Withdraw(d.ctx, id, superAdmin)
		require.ErrorIs(t, err, booking.ErrInvalidTransition)
	}
}

func TestSweepOnlyExpiresElapsedConfirmedBookings(t *testing.T) {
	d := newTestDeps(t)

	elapsed := d.reserveConfirmed(t, alice, 9)
	upcoming := d.reserveConfirmed(t, alice, 20)
	pending, err := d.bookings.Reserve(d.ctx, d.turf.ID, []string{d.slotAt(t, wednesday, 10).ID}, bob)
	require.NoError(t, err)

	d.clock.Set(wednesday.At(clock.NewTimeOfDay(10, 0), time.UTC))
	swept, err := d.bookings.Sweep(d.ctx)
	require.NoError(t, err)
	assert.Empty(t, swept, "the 09:00 slot ends exactly now, which is not after its end")

	d.clock.Set(wednesday.At(clock.NewTimeOfDay(12, 0), time.UTC))

	mine, err := d.bookings.ListBookings(d.ctx, alice, booking.Filter{})
	require.NoError(t, err)

	statuses := map[string]booking.Status{}
	for _, b := range mine {
		statuses[b.ID] = b.Status
	}

	assert.Equal(t, booking.StatusExpired, statuses[elapsed.ID])
	assert.Equal(t, booking.StatusConfirmed, statuses[upcoming.ID])
	assert.Equal(t, 0, d.activeOn(t, elapsed.SlotID))

	stillPending, err := d.store.GetBookingByID(d.ctx, pending.Bookings[0].ID)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusPending, stillPending.Status)

	again, err := d.bookings.Sweep(d.ctx)
	require.NoError(t, err)
	assert.Empty(t, again)
	assert.Len(t, d.events.ofType(booking.EventExpired), 1)
}

func TestCancelAfterSlotElapsed(t *testing.T) {
	d := newTestDeps(t)
	b := d.reserveConfirmed(t, alice, 10)

	d.clock.Advance(5 * time.Hour)

	_, err := d.bookings.Cancel(d.ctx, b.ID, alice)
	require.ErrorIs(t, err, booking.ErrInvalidTransition)

	var transitionErr *booking.TransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, booking.StatusExpired, transitionErr.From)

	stored, err := d.store.GetBookingByID(d.ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusExpired, stored.Status)
	assert.Nil(t, stored.CancellationCharge)
	assert.Empty(t, d.events.ofType(booking.EventCancelled))
	assert.Len(t, d.events.ofType(booking.EventExpired), 1)
}

func TestElapsedBookingClearsBookedFlag(t *testing.T) {
	d := newTestDeps(t)
	b := d.reserveConfirmed(t, alice, 10)

	assert.True(t, d.slotAt(t, wednesday, 10).Booked)

	d.clock.Set(wednesday.At(clock.NewTimeOfDay(11, 1), time.UTC))

	_, err := d.bookings.Sweep(d.ctx)
	require.NoError(t, err)

	freed := d.slotAt(t, wednesday, 10)
	assert.Equal(t, b.SlotID, freed.ID)
	assert.False(t, freed.Booked)
}

func TestRegenerateKeepsBookedSlots(t *testing.T) {
	d := newTestDeps(t)
	b := d.reserveConfirmed(t, alice, 9)

	_, err := d.turfs.UpdateHours(d.ctx, d.turf.ID, clock.NewTimeOfDay(10, 0), clock.NewTimeOfDay(24, 0), owner)
	require.NoError(t, err)

	slots, err := d.slots.ListSlots(d.ctx, d.turf.ID, wednesday)
	require.NoError(t, err)

	starts := []clock.TimeOfDay{}
	for _, s := range slots {
		starts = append(starts, s.StartTime)
	}

	assert.Contains(t, starts, clock.NewTimeOfDay(9, 0), "booked slot outside the new hours survives")
	assert.NotContains(t, starts, clock.NewTimeOfDay(8, 0))
	assert.Contains(t, starts, clock.NewTimeOfDay(23, 0))
	assert.Len(t, slots, 15)

	kept := d.slotAt(t, wednesday, 9)
	assert.Equal(t, b.SlotID, kept.ID)
	assert.True(t, kept.Booked)

	_, err = d.turfs.UpdateHours(d.ctx, d.turf.ID, clock.NewTimeOfDay(10, 0), clock.NewTimeOfDay(24, 0), owner)
	require.NoError(t, err)

	again, err := d.slots.ListSlots(d.ctx, d.turf.ID, wednesday)
	require.NoError(t, err)
	assert.Len(t, again, 15)
}

func TestRemoveSlot(t *testing.T) {
	d := newTestDeps(t)
	b := d.reserveConfirmed(t, alice, 14)

	err := d.slots.RemoveSlot(d.ctx, b.SlotID, owner)
	require.ErrorIs(t, err, slot.ErrSlotBooked)

	free := d.slotAt(t, wednesday, 15)
	require.NoError(t, d.slots.RemoveSlot(d.ctx, free.ID, owner))

	err = d.slots.RemoveSlot(d.ctx, free.ID, owner)
	require.ErrorIs(t, err, slot.ErrSlotNotFound)

	_, err = d.slots.AddSlot(d.ctx, d.turf.ID, wednesday, 15, owner)
	require.NoError(t, err)

	_, err = d.slots.AddSlot(d.ctx, d.turf.ID, wednesday, 15, owner)
	require.ErrorIs(t, err, slot.ErrDuplicateSlot)
}

func TestReserveRejectsUnbookableTurf(t *testing.T) {
	d := newTestDeps(t)
	target := d.slotAt(t, wednesday, 10)

	_, err := d.turfs.SetStatus(d.ctx, d.turf.ID, turf.StatusMaintenance, owner)
	require.NoError(t, err)

	_, err = d.bookings.Reserve(d.ctx, d.turf.ID, []string{target.ID}, alice)
	require.ErrorIs(t, err, booking.ErrTurfUnavailable)
}

func TestListBookingsByRole(t *testing.T) {
	d := newTestDeps(t)

	d.reserveConfirmed(t, alice, 10)
	d.reserveConfirmed(t, bob, 11)

	mine, err := d.bookings.ListBookings(d.ctx, alice, booking.Filter{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "alice", mine[0].UserID)

	managed, err := d.bookings.ListBookings(d.ctx, owner, booking.Filter{})
	require.NoError(t, err)
	assert.Len(t, managed, 2)

	stranger := identity.Actor{UserID: "owner-2", Role: identity.RoleTurfAdmin}
	none, err := d.bookings.ListBookings(d.ctx, stranger, booking.Filter{})
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := d.bookings.ListBookings(d.ctx, superAdmin, booking.Filter{UserID: "bob"})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
