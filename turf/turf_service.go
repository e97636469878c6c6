package turf

import (
	"context"
	"fmt"

	"github.com/hanksha/turf-booking-backend/clock"
	"github.com/hanksha/turf-booking-backend/identity"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/turf_mocks.go -package=mocks . TurfRepository,SlotGenerator

type TurfRepository interface {
	GetTurf(ctx context.Context, id string) (Turf, error)
	InsertTurf(ctx context.Context, turf Turf) (Turf, error)
	UpdateTurf(ctx context.Context, turf Turf) error
}

// SlotGenerator rebuilds the bookable slot inventory of a turf after its hours change.
type SlotGenerator interface {
	RegenerateForNewHours(ctx context.Context, turfID string, openHour, closeHour, horizonDays int) error
}

type PricingUpdate struct {
	BasePrice      int64           `json:"basePrice"`
	WeekdayPrice   int64           `json:"weekdayPrice"`
	WeekendPrice   int64           `json:"weekendPrice"`
	PeakMultiplier float64         `json:"peakHourMultiplier"`
	PeakStart      clock.TimeOfDay `json:"peakStartTime"`
	PeakEnd        clock.TimeOfDay `json:"peakEndTime"`
}

type Service struct {
	repo        TurfRepository
	slots       SlotGenerator
	horizonDays int
	logger      *zap.Logger
}

func NewService(repo TurfRepository, slots SlotGenerator, horizonDays int, logger *zap.Logger) *Service {
	return &Service{repo: repo, slots: slots, horizonDays: horizonDays, logger: logger}
}

func (s *Service) GetTurf(ctx context.Context, id string) (Turf, error) {
	return s.repo.GetTurf(ctx, id)
}

// CreateTurf registers a turf awaiting approval and provisions its slots for the
// configured horizon. Turf admins always own what they create.
func (s *Service) CreateTurf(ctx context.Context, turf Turf, actor identity.Actor) (Turf, error) {
	switch actor.Role {
	case identity.RoleTurfAdmin:
		turf.AdminID = actor.UserID
	case identity.RoleSuperAdmin:
	default:
		return Turf{}, ErrNotAllowed
	}

	turf.ID = ""
	turf.Approved = false
	if turf.Status == "" {
		turf.Status = StatusActive
	}

	if err := turf.Validate(); err != nil {
		return Turf{}, err
	}

	turf, err := s.repo.InsertTurf(ctx, turf)

	if err != nil {
		return Turf{}, err
	}

	if err := s.slots.RegenerateForNewHours(ctx, turf.ID, turf.OpeningTime.Hour(), turf.ClosingTime.Hour(), s.horizonDays); err != nil {
		return turf, fmt.Errorf("failed to provision slots for turf '%v': %w", turf.ID, err)
	}

	s.logger.Info("turf created", zap.String("turfId", turf.ID), zap.String("adminId", turf.AdminID))

	return turf, nil
}

func (s *Service) ApproveTurf(ctx context.Context, id string, actor identity.Actor) (Turf, error) {
	if !actor.IsSuperAdmin() {
		return Turf{}, ErrNotAllowed
	}

	turf, err := s.repo.GetTurf(ctx, id)

	if err != nil {
		return Turf{}, err
	}

	turf.Approved = true

	if err := s.repo.UpdateTurf(ctx, turf); err != nil {
		return Turf{}, err
	}

	return turf, nil
}

func (s *Service) SetStatus(ctx context.Context, id string, status Status, actor identity.Actor) (Turf, error) {
	if !status.Valid() {
		return Turf{}, fmt.Errorf("%w: unknown status %q", ErrInvalidTurf, status)
	}

	turf, err := s.managedTurf(ctx, id, actor)

	if err != nil {
		return Turf{}, err
	}

	turf.Status = status

	if err := s.repo.UpdateTurf(ctx, turf); err != nil {
		return Turf{}, err
	}

	return turf, nil
}

// UpdateHours changes opening hours and regenerates the slot inventory. Slots holding an
// active booking survive untouched.
func (s *Service) UpdateHours(ctx context.Context, id string, opening, closing clock.TimeOfDay, actor identity.Actor) (Turf, error) {
	if err := ValidateHours(opening, closing); err != nil {
		return Turf{}, err
	}

	turf, err := s.managedTurf(ctx, id, actor)

	if err != nil {
		return Turf{}, err
	}

	turf.OpeningTime = opening
	turf.ClosingTime = closing

	if err := s.repo.UpdateTurf(ctx, turf); err != nil {
		return Turf{}, err
	}

	if err := s.slots.RegenerateForNewHours(ctx, turf.ID, opening.Hour(), closing.Hour(), s.horizonDays); err != nil {
		return turf, fmt.Errorf("failed to regenerate slots for turf '%v': %w", turf.ID, err)
	}

	return turf, nil
}

func (s *Service) UpdatePricing(ctx context.Context, id string, update PricingUpdate, actor identity.Actor) (Turf, error) {
	turf, err := s.managedTurf(ctx, id, actor)

	if err != nil {
		return Turf{}, err
	}

	turf.BasePrice = update.BasePrice
	turf.WeekdayPrice = update.WeekdayPrice
	turf.WeekendPrice = update.WeekendPrice
	turf.PeakMultiplier = update.PeakMultiplier
	turf.PeakStart = update.PeakStart
	turf.PeakEnd = update.PeakEnd

	if err := turf.Validate(); err != nil {
		return Turf{}, err
	}

	if err := s.repo.UpdateTurf(ctx, turf); err != nil {
		return Turf{}, err
	}

	return turf, nil
}

func (s *Service) managedTurf(ctx context.Context, id string, actor identity.Actor) (Turf, error) {
	turf, err := s.repo.GetTurf(ctx, id)

	if err != nil {
		return Turf{}, err
	}

	if !actor.Manages(turf.AdminID) {
		return Turf{}, ErrNotAllowed
	}

	return turf, nil
}
