package slot_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hanksha/turf-booking-backend/clock"
	"github.com/hanksha/turf-booking-backend/identity"
	"github.com/hanksha/turf-booking-backend/slot"
	slot_mocks "github.com/hanksha/turf-booking-backend/slot/mocks"
	"github.com/hanksha/turf-booking-backend/turf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	today = clock.NewDate(2026, time.October, 14)
	arena = turf.Turf{ID: "turf-1", AdminID: "admin-1"}

	owner      = identity.Actor{UserID: "admin-1", Role: identity.RoleTurfAdmin}
	otherAdmin = identity.Actor{UserID: "admin-2", Role: identity.RoleTurfAdmin}
)

type testDeps struct {
	repo    *slot_mocks.MockSlotRepository
	turfs   *slot_mocks.MockTurfReader
	service *slot.Service
	ctx     context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := slot_mocks.NewMockSlotRepository(ctrl)
	turfs := slot_mocks.NewMockTurfReader(ctrl)
	c := clock.NewFake(time.Date(2026, time.October, 14, 23, 30, 0, 0, time.UTC))

	return ctrl, testDeps{
		repo:    repo,
		turfs:   turfs,
		service: slot.NewService(repo, turfs, c, time.UTC, zap.NewNop()),
		ctx:     context.Background(),
	}
}

func saved(s slot.Slot) slot.Slot {
	s.ID = s.Date.String() + "@" + s.StartTime.String()
	return s
}

func TestCreateSlots(t *testing.T) {

	t.Run("skips existing windows", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().InsertSlot(testDeps.ctx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, s slot.Slot) (slot.Slot, error) {
				if s.StartTime == clock.NewTimeOfDay(7, 0) {
					return slot.Slot{}, slot.ErrDuplicateSlot
				}
				return saved(s), nil
			}).Times(3)

		result, err := testDeps.service.CreateSlots(testDeps.ctx, arena.ID, today, 6, 9)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Skipped)
		require.Len(t, result.Created, 2)
		assert.Equal(t, clock.NewTimeOfDay(6, 0), result.Created[0].StartTime)
		assert.Equal(t, clock.NewTimeOfDay(7, 0), result.Created[0].EndTime)
		assert.Equal(t, clock.NewTimeOfDay(8, 0), result.Created[1].StartTime)
	})

	t.Run("last hour ends at midnight", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().InsertSlot(testDeps.ctx, slot.Hourly(arena.ID, today, 23)).Return(saved(slot.Hourly(arena.ID, today, 23)), nil).Times(1)

		result, err := testDeps.service.CreateSlots(testDeps.ctx, arena.ID, today, 23, 24)

		require.NoError(t, err)
		require.Len(t, result.Created, 1)
		assert.Equal(t, clock.EndOfDay, result.Created[0].EndTime)
	})

	t.Run("invalid hour ranges", func(t *testing.T) {
		ranges := [][2]int{{-1, 5}, {10, 10}, {12, 8}, {20, 25}}

		for _, r := range ranges {
			ctrl, testDeps := newTestDeps(t)

			testDeps.repo.EXPECT().InsertSlot(gomock.Any(), gomock.Any()).Times(0)

			_, err := testDeps.service.CreateSlots(testDeps.ctx, arena.ID, today, r[0], r[1])

			require.ErrorIs(t, err, slot.ErrInvalidSlot)
			ctrl.Finish()
		}
	})

	t.Run("repository failure stops creation", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		gomock.InOrder(
			testDeps.repo.EXPECT().InsertSlot(testDeps.ctx, slot.Hourly(arena.ID, today, 6)).Return(saved(slot.Hourly(arena.ID, today, 6)), nil),
			testDeps.repo.EXPECT().InsertSlot(testDeps.ctx, slot.Hourly(arena.ID, today, 7)).Return(slot.Slot{}, errors.New("db down")),
		)

		result, err := testDeps.service.CreateSlots(testDeps.ctx, arena.ID, today, 6, 10)

		require.Error(t, err)
		assert.Len(t, result.Created, 1)
	})
}

func TestRegenerateForNewHours(t *testing.T) {

	t.Run("walks the horizon from today in the configured zone", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		for i := range 3 {
			date := today.AddDays(i)
			testDeps.repo.EXPECT().DeleteUnbookedSlots(testDeps.ctx, arena.ID, date).Return(int64(2), nil).Times(1)
			for hour := 10; hour < 12; hour++ {
				testDeps.repo.EXPECT().InsertSlot(testDeps.ctx, slot.Hourly(arena.ID, date, hour)).Return(saved(slot.Hourly(arena.ID, date, hour)), nil).Times(1)
			}
		}

		err := testDeps.service.RegenerateForNewHours(testDeps.ctx, arena.ID, 10, 12, 3)

		require.NoError(t, err)
	})

	t.Run("booked windows are kept", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().DeleteUnbookedSlots(testDeps.ctx, arena.ID, today).Return(int64(0), nil).Times(1)
		testDeps.repo.EXPECT().InsertSlot(testDeps.ctx, gomock.Any()).Return(slot.Slot{}, slot.ErrDuplicateSlot).Times(2)

		err := testDeps.service.RegenerateForNewHours(testDeps.ctx, arena.ID, 18, 20, 1)

		require.NoError(t, err)
	})

	t.Run("horizon must cover today", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().DeleteUnbookedSlots(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := testDeps.service.RegenerateForNewHours(testDeps.ctx, arena.ID, 6, 22, 0)

		require.ErrorIs(t, err, slot.ErrInvalidSlot)
	})

	t.Run("delete failure", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().DeleteUnbookedSlots(testDeps.ctx, arena.ID, today).Return(int64(0), errors.New("db down")).Times(1)
		testDeps.repo.EXPECT().InsertSlot(gomock.Any(), gomock.Any()).Times(0)

		err := testDeps.service.RegenerateForNewHours(testDeps.ctx, arena.ID, 6, 22, 7)

		require.Error(t, err)
	})
}

func TestAddSlot(t *testing.T) {

	t.Run("owner adds a window", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		date := today.AddDays(1)

		testDeps.turfs.EXPECT().GetTurf(testDeps.ctx, arena.ID).Return(arena, nil).Times(1)
		testDeps.repo.EXPECT().InsertSlot(testDeps.ctx, slot.Hourly(arena.ID, date, 5)).Return(saved(slot.Hourly(arena.ID, date, 5)), nil).Times(1)

		created, err := testDeps.service.AddSlot(testDeps.ctx, arena.ID, date, 5, owner)

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, clock.NewTimeOfDay(6, 0), created.EndTime)
	})

	t.Run("another turf admin", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.turfs.EXPECT().GetTurf(testDeps.ctx, arena.ID).Return(arena, nil).Times(1)
		testDeps.repo.EXPECT().InsertSlot(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.AddSlot(testDeps.ctx, arena.ID, today, 5, otherAdmin)

		require.ErrorIs(t, err, turf.ErrNotAllowed)
	})

	t.Run("hour out of range", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.turfs.EXPECT().GetTurf(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.AddSlot(testDeps.ctx, arena.ID, today, 24, owner)

		require.ErrorIs(t, err, slot.ErrInvalidSlot)
	})
}

func TestRemoveSlot(t *testing.T) {
	existing := saved(slot.Hourly(arena.ID, today, 9))

	t.Run("success", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetSlot(testDeps.ctx, existing.ID).Return(existing, nil).Times(1)
		testDeps.turfs.EXPECT().GetTurf(testDeps.ctx, arena.ID).Return(arena, nil).Times(1)
		testDeps.repo.EXPECT().DeleteSlot(testDeps.ctx, existing.ID).Return(nil).Times(1)

		err := testDeps.service.RemoveSlot(testDeps.ctx, existing.ID, owner)

		require.NoError(t, err)
	})

	t.Run("booked slot", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetSlot(testDeps.ctx, existing.ID).Return(existing, nil).Times(1)
		testDeps.turfs.EXPECT().GetTurf(testDeps.ctx, arena.ID).Return(arena, nil).Times(1)
		testDeps.repo.EXPECT().DeleteSlot(testDeps.ctx, existing.ID).Return(slot.ErrSlotBooked).Times(1)

		err := testDeps.service.RemoveSlot(testDeps.ctx, existing.ID, owner)

		require.ErrorIs(t, err, slot.ErrSlotBooked)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetSlot(testDeps.ctx, "missing").Return(slot.Slot{}, slot.ErrSlotNotFound).Times(1)

		err := testDeps.service.RemoveSlot(testDeps.ctx, "missing", owner)

		require.ErrorIs(t, err, slot.ErrSlotNotFound)
	})

	t.Run("another turf admin", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetSlot(testDeps.ctx, existing.ID).Return(existing, nil).Times(1)
		testDeps.turfs.EXPECT().GetTurf(testDeps.ctx, arena.ID).Return(arena, nil).Times(1)
		testDeps.repo.EXPECT().DeleteSlot(gomock.Any(), gomock.Any()).Times(0)

		err := testDeps.service.RemoveSlot(testDeps.ctx, existing.ID, otherAdmin)

		require.ErrorIs(t, err, turf.ErrNotAllowed)
	})
}
