package slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hanksha/turf-booking-backend/clock"
	"github.com/hanksha/turf-booking-backend/identity"
	"github.com/hanksha/turf-booking-backend/turf"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/slot_mocks.go -package=mocks . SlotRepository,TurfReader

type SlotRepository interface {
	ListSlots(ctx context.Context, turfID string, date clock.Date) ([]Slot, error)
	GetSlot(ctx context.Context, id string) (Slot, error)
	InsertSlot(ctx context.Context, slot Slot) (Slot, error)
	DeleteSlot(ctx context.Context, id string) error
	DeleteUnbookedSlots(ctx context.Context, turfID string, date clock.Date) (int64, error)
}

type TurfReader interface {
	GetTurf(ctx context.Context, id string) (turf.Turf, error)
}

type CreateResult struct {
	Created []Slot `json:"created"`
	Skipped int    `json:"skipped"`
}

type Service struct {
	repo   SlotRepository
	turfs  TurfReader
	clock  clock.Clock
	loc    *time.Location
	logger *zap.Logger
}

func NewService(repo SlotRepository, turfs TurfReader, c clock.Clock, loc *time.Location, logger *zap.Logger) *Service {
	return &Service{repo: repo, turfs: turfs, clock: c, loc: loc, logger: logger}
}

// ListSlots returns the slots of a turf on date ordered by start time.
func (s *Service) ListSlots(ctx context.Context, turfID string, date clock.Date) ([]Slot, error) {
	return s.repo.ListSlots(ctx, turfID, date)
}

// CreateSlots creates one slot per whole hour in [openHour, closeHour). Windows that
// already exist are skipped and counted, never overwritten.
func (s *Service) CreateSlots(ctx context.Context, turfID string, date clock.Date, openHour, closeHour int) (CreateResult, error) {
	if err := validateHours(openHour, closeHour); err != nil {
		return CreateResult{}, err
	}

	result := CreateResult{Created: []Slot{}}

	for hour := openHour; hour < closeHour; hour++ {
		created, err := s.repo.InsertSlot(ctx, Hourly(turfID, date, hour))

		if errors.Is(err, ErrDuplicateSlot) {
			result.Skipped++
			continue
		}

		if err != nil {
			return result, err
		}

		result.Created = append(result.Created, created)
	}

	return result, nil
}

// AddSlot creates the single window [hour, hour+1) and reports ErrDuplicateSlot if it exists.
func (s *Service) AddSlot(ctx context.Context, turfID string, date clock.Date, hour int, actor identity.Actor) (Slot, error) {
	if err := validateHours(hour, hour+1); err != nil {
		return Slot{}, err
	}

	if err := s.authorize(ctx, turfID, actor); err != nil {
		return Slot{}, err
	}

	return s.repo.InsertSlot(ctx, Hourly(turfID, date, hour))
}

func (s *Service) RemoveSlot(ctx context.Context, id string, actor identity.Actor) error {
	slot, err := s.repo.GetSlot(ctx, id)

	if err != nil {
		return err
	}

	if err := s.authorize(ctx, slot.TurfID, actor); err != nil {
		return err
	}

	return s.repo.DeleteSlot(ctx, id)
}

// RegenerateForNewHours rebuilds the slots of each date in [today, today+horizonDays):
// slots without an active booking are dropped, then the new hour range is filled in.
// Booked slots are kept as they are, so running it twice changes nothing.
func (s *Service) RegenerateForNewHours(ctx context.Context, turfID string, openHour, closeHour, horizonDays int) error {
	if err := validateHours(openHour, closeHour); err != nil {
		return err
	}

	if horizonDays < 1 {
		return fmt.Errorf("%w: horizon must be at least one day", ErrInvalidSlot)
	}

	today := clock.DateOf(s.clock.Now().In(s.loc))

	var removed int64
	var created, skipped int

	for i := range horizonDays {
		date := today.AddDays(i)

		n, err := s.repo.DeleteUnbookedSlots(ctx, turfID, date)

		if err != nil {
			return err
		}

		result, err := s.CreateSlots(ctx, turfID, date, openHour, closeHour)

		if err != nil {
			return err
		}

		removed += n
		created += len(result.Created)
		skipped += result.Skipped
	}

	s.logger.Info("regenerated slots",
		zap.String("turfId", turfID),
		zap.Int("openHour", openHour),
		zap.Int("closeHour", closeHour),
		zap.Int64("removed", removed),
		zap.Int("created", created),
		zap.Int("kept", skipped),
	)

	return nil
}

func (s *Service) authorize(ctx context.Context, turfID string, actor identity.Actor) error {
	t, err := s.turfs.GetTurf(ctx, turfID)

	if err != nil {
		return err
	}

	if !actor.Manages(t.AdminID) {
		return turf.ErrNotAllowed
	}

	return nil
}

func validateHours(openHour, closeHour int) error {
	if openHour < 0 || closeHour > 24 || openHour >= closeHour {
		return fmt.Errorf("%w: hours must satisfy 0 <= open < close <= 24", ErrInvalidSlot)
	}
	return nil
}
