package booking

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/hanksha/turf-booking-backend/clock"
	"github.com/hanksha/turf-booking-backend/identity"
	"github.com/hanksha/turf-booking-backend/pricing"
	"github.com/hanksha/turf-booking-backend/slot"
	"github.com/hanksha/turf-booking-backend/turf"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/booking_mocks.go -package=mocks . BookingRepository,SlotReader,TurfReader,Publisher,PaymentTimeouts

type BookingRepository interface {
	Reserve(ctx context.Context, reservation Reservation) (ReserveResult, error)
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	ListBookings(ctx context.Context, filter Filter) ([]Booking, error)
	ApplyTransition(ctx context.Context, transition Transition) ([]Booking, error)
}

type SlotReader interface {
	ListSlots(ctx context.Context, turfID string, date clock.Date) ([]slot.Slot, error)
	GetSlots(ctx context.Context, ids []string) ([]slot.Slot, error)
}

type TurfReader interface {
	GetTurf(ctx context.Context, id string) (turf.Turf, error)
}

type Settings struct {
	Location                  *time.Location
	CancellationChargePercent int64
	PlatformFee               int64
	PaymentTTL                time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		Location:                  time.UTC,
		CancellationChargePercent: 20,
		PaymentTTL:                15 * time.Minute,
	}
}

type Option func(*Service)

func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

func WithPaymentTimeouts(timeouts PaymentTimeouts) Option {
	return func(s *Service) { s.timeouts = timeouts }
}

type Service struct {
	repo      BookingRepository
	slots     SlotReader
	turfs     TurfReader
	publisher Publisher
	timeouts  PaymentTimeouts
	clock     clock.Clock
	newID     func() string
	settings  Settings
	logger    *zap.Logger
}

func NewService(repo BookingRepository, slots SlotReader, turfs TurfReader, publisher Publisher, c clock.Clock, settings Settings, logger *zap.Logger, opts ...Option) *Service {
	if settings.Location == nil {
		settings.Location = time.UTC
	}

	s := &Service{
		repo:      repo,
		slots:     slots,
		turfs:     turfs,
		publisher: publisher,
		clock:     c,
		newID:     newUUID,
		settings:  settings,
		logger:    logger,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

type PricedSlot struct {
	slot.Slot
	Price pricing.Quote `json:"price"`
}

type Quote struct {
	TurfID      string       `json:"turfId"`
	Slots       []PricedSlot `json:"slots"`
	PlatformFee int64        `json:"platformFee"`
	AmountDue   int64        `json:"amountDue"`
}

type ReserveOutcome struct {
	BatchID   string    `json:"batchId"`
	Bookings  []Booking `json:"bookings"`
	AmountDue int64     `json:"amountDue"`
}

type CancelOutcome struct {
	Booking            Booking `json:"booking"`
	Status             Status  `json:"status"`
	CancellationCharge int64   `json:"cancellationCharge"`
	RefundDue          int64   `json:"refundDue"`
}

// ListAvailableSlots sweeps elapsed bookings, then returns the free, future slots of a
// turf on date with their prices.
func (s *Service) ListAvailableSlots(ctx context.Context, turfID string, date clock.Date) ([]PricedSlot, error) {
	if turfID == "" || date.IsZero() {
		return nil, fmt.Errorf("%w: turf id and date are required", ErrValidation)
	}

	if _, err := s.Sweep(ctx); err != nil {
		return nil, err
	}

	t, err := s.turfs.GetTurf(ctx, turfID)

	if err != nil {
		return nil, err
	}

	slots, err := s.slots.ListSlots(ctx, turfID, date)

	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	available := []PricedSlot{}

	for _, sl := range slots {
		if sl.Booked || !sl.StartsAt(s.settings.Location).After(now) {
			continue
		}
		available = append(available, s.price(t, sl))
	}

	return available, nil
}

// Quote prices a selection of slots without reserving them.
func (s *Service) Quote(ctx context.Context, turfID string, slotIDs []string) (Quote, error) {
	if err := validateSelection(turfID, slotIDs); err != nil {
		return Quote{}, err
	}

	t, err := s.turfs.GetTurf(ctx, turfID)

	if err != nil {
		return Quote{}, err
	}

	slots, err := s.selectSlots(ctx, turfID, slotIDs)

	if err != nil {
		return Quote{}, err
	}

	return s.quote(t, slots), nil
}

// Reserve books every requested slot under one new batch, or none of them. The
// availability check and the inserts run as one atomic unit inside the repository.
func (s *Service) Reserve(ctx context.Context, turfID string, slotIDs []string, actor identity.Actor) (ReserveOutcome, error) {
	if err := validateSelection(turfID, slotIDs); err != nil {
		return ReserveOutcome{}, err
	}

	if actor.UserID == "" {
		return ReserveOutcome{}, fmt.Errorf("%w: missing user id", ErrValidation)
	}

	if _, err := s.Sweep(ctx); err != nil {
		return ReserveOutcome{}, err
	}

	t, err := s.turfs.GetTurf(ctx, turfID)

	if err != nil {
		return ReserveOutcome{}, err
	}

	if !t.Bookable() {
		return ReserveOutcome{}, ErrTurfUnavailable
	}

	slots, err := s.selectSlots(ctx, turfID, slotIDs)

	if err != nil {
		return ReserveOutcome{}, err
	}

	quote := s.quote(t, slots)
	now := s.clock.Now()
	batchID := s.newID()

	reservation := Reservation{
		TurfID:  turfID,
		UserID:  actor.UserID,
		BatchID: batchID,
		At:      now,
	}

	for _, priced := range quote.Slots {
		reservation.Bookings = append(reservation.Bookings, Booking{
			ID:        s.newID(),
			BatchID:   batchID,
			UserID:    actor.UserID,
			TurfID:    turfID,
			SlotID:    priced.ID,
			Date:      priced.Date,
			StartTime: priced.StartTime,
			EndTime:   priced.EndTime,
			Status:    StatusPending,
			Price:     priced.Price.FinalPrice,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	result, err := s.repo.Reserve(ctx, reservation)

	if err != nil {
		return ReserveOutcome{}, err
	}

	s.logger.Info("slots reserved",
		zap.String("batchId", batchID),
		zap.String("turfId", turfID),
		zap.String("userId", actor.UserID),
		zap.Int("slots", len(result.Bookings)),
		zap.Int("superseded", len(result.Superseded)),
	)

	if len(result.Superseded) > 0 {
		s.publish(ctx, Event{Type: EventFailed, UserID: actor.UserID, TurfID: turfID, Bookings: result.Superseded, Reason: "superseded"})
	}

	s.publish(ctx, Event{
		Type:      EventPaymentRequested,
		BatchID:   batchID,
		UserID:    actor.UserID,
		TurfID:    turfID,
		Bookings:  result.Bookings,
		AmountDue: quote.AmountDue,
	})

	if s.timeouts != nil && s.settings.PaymentTTL > 0 {
		if err := s.timeouts.SchedulePaymentTimeout(ctx, batchID, s.settings.PaymentTTL); err != nil {
			s.logger.Warn("failed to schedule payment timeout", zap.String("batchId", batchID), zap.Error(err))
		}
	}

	return ReserveOutcome{BatchID: batchID, Bookings: result.Bookings, AmountDue: quote.AmountDue}, nil
}

// ConfirmPayment settles the PENDING bookings of a batch (or a single booking id).
func (s *Service) ConfirmPayment(ctx context.Context, ref string) ([]Booking, error) {
	bookings, err := s.resolve(ctx, ref)

	if err != nil {
		return nil, err
	}

	confirmed, err := s.transitionPending(ctx, bookings, TriggerPaymentSettled)

	if err != nil {
		return nil, err
	}

	s.logger.Info("payment confirmed", zap.String("ref", ref), zap.Int("bookings", len(confirmed)))
	s.publish(ctx, eventFor(EventConfirmed, confirmed))

	return confirmed, nil
}

// FailPayment releases the PENDING bookings of a batch (or a single booking id) after a
// failed or timed out payment.
func (s *Service) FailPayment(ctx context.Context, ref, reason string) ([]Booking, error) {
	bookings, err := s.resolve(ctx, ref)

	if err != nil {
		return nil, err
	}

	failed, err := s.transitionPending(ctx, bookings, TriggerPaymentFailed)

	if err != nil {
		return nil, err
	}

	s.logger.Info("payment failed", zap.String("ref", ref), zap.String("reason", reason), zap.Int("bookings", len(failed)))

	event := eventFor(EventFailed, failed)
	event.Reason = reason
	s.publish(ctx, event)

	return failed, nil
}

// Withdraw lets the owner (or an admin of the turf) abandon a pending checkout.
func (s *Service) Withdraw(ctx context.Context, ref string, actor identity.Actor) ([]Booking, error) {
	bookings, err := s.resolve(ctx, ref)

	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, bookings[0], actor); err != nil {
		return nil, err
	}

	failed, err := s.transitionPending(ctx, bookings, TriggerPaymentFailed)

	if err != nil {
		return nil, err
	}

	event := eventFor(EventFailed, failed)
	event.Reason = "withdrawn"
	s.publish(ctx, event)

	return failed, nil
}

// Cancel cancels a CONFIRMED booking, recording the cancellation charge and reporting the
// refund due. A PENDING booking is withdrawn instead, with nothing charged.
func (s *Service) Cancel(ctx context.Context, id string, actor identity.Actor) (CancelOutcome, error) {
	if id == "" {
		return CancelOutcome{}, fmt.Errorf("%w: missing booking id", ErrValidation)
	}

	// An elapsed booking has to read as EXPIRED before it can be refunded.
	if _, err := s.Sweep(ctx); err != nil {
		return CancelOutcome{}, err
	}

	b, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return CancelOutcome{}, err
	}

	if err := s.authorize(ctx, b, actor); err != nil {
		return CancelOutcome{}, err
	}

	if b.Status == StatusPending {
		failed, err := s.transitionPending(ctx, []Booking{b}, TriggerPaymentFailed)

		if err != nil {
			return CancelOutcome{}, err
		}

		event := eventFor(EventFailed, failed)
		event.Reason = "withdrawn"
		s.publish(ctx, event)

		return CancelOutcome{Booking: failed[0], Status: StatusFailed}, nil
	}

	to, err := b.Status.Next(TriggerCancel)

	if err != nil {
		return CancelOutcome{}, withBookingID(err, b.ID)
	}

	charge, refund := s.cancellationSplit(b.Price)

	updated, err := s.repo.ApplyTransition(ctx, Transition{
		IDs:          []string{b.ID},
		From:         b.Status,
		To:           to,
		Charge:       &charge,
		At:           s.clock.Now(),
		AllOrNothing: true,
	})

	if err != nil {
		return CancelOutcome{}, s.raced(ctx, err, b.ID, TriggerCancel)
	}

	s.logger.Info("booking cancelled",
		zap.String("bookingId", b.ID),
		zap.String("actor", actor.UserID),
		zap.Int64("charge", charge),
		zap.Int64("refund", refund),
	)

	event := eventFor(EventCancelled, updated)
	event.CancellationCharge = charge
	event.RefundDue = refund
	s.publish(ctx, event)

	return CancelOutcome{Booking: updated[0], Status: to, CancellationCharge: charge, RefundDue: refund}, nil
}

func (s *Service) GetBooking(ctx context.Context, id string, actor identity.Actor) (Booking, error) {
	if _, err := s.Sweep(ctx); err != nil {
		return Booking{}, err
	}

	b, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	if err := s.authorize(ctx, b, actor); err != nil {
		return Booking{}, err
	}

	return b, nil
}

// ListBookings returns the bookings visible to actor: their own as a player, those on
// turfs they administer as a turf admin, everything as a super admin.
func (s *Service) ListBookings(ctx context.Context, actor identity.Actor, filter Filter) ([]Booking, error) {
	switch actor.Role {
	case identity.RoleSuperAdmin:
	case identity.RoleTurfAdmin:
		filter.TurfAdminID = actor.UserID
	default:
		filter.UserID = actor.UserID
	}

	if actor.UserID == "" && !actor.IsSuperAdmin() {
		return nil, fmt.Errorf("%w: missing user id", ErrValidation)
	}

	if _, err := s.Sweep(ctx); err != nil {
		return nil, err
	}

	return s.repo.ListBookings(ctx, filter)
}

// Sweep expires every CONFIRMED booking whose slot has fully elapsed. PENDING bookings
// are left alone; they lapse through the payment timeout instead.
func (s *Service) Sweep(ctx context.Context) ([]Booking, error) {
	now := s.clock.Now()
	today := clock.DateOf(now.In(s.settings.Location))

	confirmed, err := s.repo.ListBookings(ctx, Filter{Status: StatusConfirmed, OnOrBefore: today})

	if err != nil {
		return nil, fmt.Errorf("failed to list confirmed bookings: %w", err)
	}

	ids := []string{}

	for _, b := range confirmed {
		if now.After(b.EndsAt(s.settings.Location)) {
			ids = append(ids, b.ID)
		}
	}

	if len(ids) == 0 {
		return nil, nil
	}

	to, err := StatusConfirmed.Next(TriggerExpire)

	if err != nil {
		return nil, err
	}

	expired, err := s.repo.ApplyTransition(ctx, Transition{
		IDs:  ids,
		From: StatusConfirmed,
		To:   to,
		At:   now,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to expire bookings: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("expired elapsed bookings", zap.Int("count", len(expired)))
		s.publish(ctx, Event{Type: EventExpired, Bookings: expired})
	}

	return expired, nil
}

// resolve loads the bookings behind a batch id, falling back to a single booking id.
func (s *Service) resolve(ctx context.Context, ref string) ([]Booking, error) {
	if ref == "" {
		return nil, fmt.Errorf("%w: missing batch or booking id", ErrValidation)
	}

	bookings, err := s.repo.ListBookings(ctx, Filter{BatchID: ref})

	if err != nil {
		return nil, err
	}

	if len(bookings) > 0 {
		return bookings, nil
	}

	b, err := s.repo.GetBookingByID(ctx, ref)

	if err != nil {
		return nil, err
	}

	return []Booking{b}, nil
}

// transitionPending applies trigger to the PENDING members of bookings, all or nothing.
func (s *Service) transitionPending(ctx context.Context, bookings []Booking, trigger Trigger) ([]Booking, error) {
	ids := []string{}
	var to Status

	for _, b := range bookings {
		if b.Status != StatusPending {
			continue
		}

		next, err := b.Status.Next(trigger)

		if err != nil {
			return nil, withBookingID(err, b.ID)
		}

		to = next
		ids = append(ids, b.ID)
	}

	if len(ids) == 0 {
		_, err := bookings[0].Status.Next(trigger)
		if err == nil {
			err = &TransitionError{From: bookings[0].Status, Trigger: trigger}
		}
		return nil, withBookingID(err, bookings[0].ID)
	}

	updated, err := s.repo.ApplyTransition(ctx, Transition{
		IDs:          ids,
		From:         StatusPending,
		To:           to,
		At:           s.clock.Now(),
		AllOrNothing: true,
	})

	if err != nil {
		return nil, s.raced(ctx, err, ids[0], trigger)
	}

	return updated, nil
}

// raced turns a failed compare-and-set into a TransitionError carrying the status the
// booking actually moved to.
func (s *Service) raced(ctx context.Context, err error, id string, trigger Trigger) error {
	if !errors.Is(err, ErrInvalidTransition) {
		return err
	}

	current, getErr := s.repo.GetBookingByID(ctx, id)

	if getErr != nil {
		return err
	}

	return &TransitionError{BookingID: id, From: current.Status, Trigger: trigger}
}

func (s *Service) authorize(ctx context.Context, b Booking, actor identity.Actor) error {
	if actor.IsSuperAdmin() || (actor.UserID != "" && b.UserID == actor.UserID) {
		return nil
	}

	if actor.Role != identity.RoleTurfAdmin {
		return ErrNotAllowed
	}

	t, err := s.turfs.GetTurf(ctx, b.TurfID)

	if err != nil {
		return err
	}

	if !actor.Manages(t.AdminID) {
		return ErrNotAllowed
	}

	return nil
}

// selectSlots loads the requested slots and rejects any that are missing, belong to
// another turf, or have already started.
func (s *Service) selectSlots(ctx context.Context, turfID string, slotIDs []string) ([]slot.Slot, error) {
	slots, err := s.slots.GetSlots(ctx, slotIDs)

	if err != nil {
		return nil, err
	}

	byID := make(map[string]slot.Slot, len(slots))
	for _, sl := range slots {
		byID[sl.ID] = sl
	}

	now := s.clock.Now()
	unavailable := []string{}
	selected := make([]slot.Slot, 0, len(slotIDs))

	for _, id := range slotIDs {
		sl, ok := byID[id]

		if !ok || sl.TurfID != turfID || !sl.StartsAt(s.settings.Location).After(now) {
			unavailable = append(unavailable, id)
			continue
		}

		selected = append(selected, sl)
	}

	if len(unavailable) > 0 {
		return nil, &SlotUnavailableError{SlotIDs: unavailable}
	}

	return selected, nil
}

func (s *Service) price(t turf.Turf, sl slot.Slot) PricedSlot {
	return PricedSlot{Slot: sl, Price: pricing.Price(t.Rates(), sl.Date, sl.StartTime)}
}

func (s *Service) quote(t turf.Turf, slots []slot.Slot) Quote {
	q := Quote{TurfID: t.ID, PlatformFee: s.settings.PlatformFee}
	quotes := make([]pricing.Quote, 0, len(slots))

	for _, sl := range slots {
		priced := s.price(t, sl)
		q.Slots = append(q.Slots, priced)
		quotes = append(quotes, priced.Price)
	}

	q.AmountDue = pricing.Total(quotes, s.settings.PlatformFee)

	return q
}

// cancellationSplit rounds the charge half up to a whole currency unit; the refund is
// whatever remains, so the two always add up to price.
func (s *Service) cancellationSplit(price int64) (charge, refund int64) {
	charge = (price*s.settings.CancellationChargePercent + 50) / 100
	return charge, price - charge
}

func (s *Service) publish(ctx context.Context, event Event) {
	if s.publisher == nil {
		return
	}

	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.clock.Now()
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish booking event", zap.String("event", string(event.Type)), zap.Error(err))
	}
}

func eventFor(eventType EventType, bookings []Booking) Event {
	event := Event{Type: eventType, Bookings: bookings}

	if len(bookings) > 0 {
		event.BatchID = bookings[0].BatchID
		event.UserID = bookings[0].UserID
		event.TurfID = bookings[0].TurfID
	}

	return event
}

func withBookingID(err error, id string) error {
	var transitionErr *TransitionError
	if errors.As(err, &transitionErr) && transitionErr.BookingID == "" {
		transitionErr.BookingID = id
	}
	return err
}

func validateSelection(turfID string, slotIDs []string) error {
	if turfID == "" {
		return fmt.Errorf("%w: missing turf id", ErrValidation)
	}

	if len(slotIDs) == 0 {
		return fmt.Errorf("%w: at least one slot is required", ErrValidation)
	}

	for i, id := range slotIDs {
		if id == "" {
			return fmt.Errorf("%w: empty slot id", ErrValidation)
		}
		if slices.Contains(slotIDs[:i], id) {
			return fmt.Errorf("%w: slot %s requested twice", ErrValidation, id)
		}
	}

	return nil
}
