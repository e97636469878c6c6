package slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hanksha/turf-booking-backend/clock"
	"github.com/hanksha/turf-booking-backend/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectSlots = `
			SELECT s.id, s."turfId", s.date, s."startTime", s."endTime",
				EXISTS (
					SELECT 1 FROM "turf-booking".booking b
					WHERE b."slotId" = s.id AND b.status IN ('PENDING', 'CONFIRMED')
				)
			FROM "turf-booking".slot s
		`

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) ListSlots(ctx context.Context, turfID string, date clock.Date) ([]Slot, error) {
	sql := selectSlots + `WHERE s."turfId"=$1 AND s.date=$2 ORDER BY s."startTime";`

	rows, err := r.pool.Query(ctx, sql, turfID, date.Time())

	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots for turf '%v' on %v: %w", turfID, date, err)
	}

	return collectSlots(rows)
}

func (r *Repository) GetSlots(ctx context.Context, ids []string) ([]Slot, error) {
	sql := selectSlots + `WHERE s.id = ANY($1) ORDER BY s.date, s."startTime";`

	rows, err := r.pool.Query(ctx, sql, ids)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots %v: %w", ids, err)
	}

	return collectSlots(rows)
}

func (r *Repository) GetSlot(ctx context.Context, id string) (Slot, error) {
	slots, err := r.GetSlots(ctx, []string{id})

	if err != nil {
		return Slot{}, err
	}

	if len(slots) == 0 {
		return Slot{}, ErrSlotNotFound
	}

	return slots[0], nil
}

func (r *Repository) InsertSlot(ctx context.Context, slot Slot) (Slot, error) {
	sql := `
			INSERT INTO "turf-booking".slot(id, "turfId", date, "startTime", "endTime")
			VALUES ($1, $2, $3, $4, $5);
		`

	if slot.ID == "" {
		slot.ID = uuid.NewString()
	}

	_, err := r.pool.Exec(ctx, sql,
		slot.ID,
		slot.TurfID,
		slot.Date.Time(),
		database.Time(slot.StartTime),
		database.Time(slot.EndTime),
	)

	if database.IsUniqueViolation(err) {
		return Slot{}, ErrDuplicateSlot
	}

	if err != nil {
		return Slot{}, fmt.Errorf("failed to insert slot: %w", err)
	}

	slot.Booked = false

	return slot, nil
}

// DeleteSlot removes a slot unless an active booking references it. The slot row is
// locked first so a reservation in flight either completes before the check or sees the
// slot gone.
func (r *Repository) DeleteSlot(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)

	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	var locked string
	err = tx.QueryRow(ctx, `SELECT id FROM "turf-booking".slot WHERE id=$1 FOR UPDATE;`, id).Scan(&locked)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrSlotNotFound
	}

	if err != nil {
		return fmt.Errorf("failed to lock slot '%v': %w", id, err)
	}

	tag, err := tx.Exec(ctx, `
			DELETE FROM "turf-booking".slot s
			WHERE s.id=$1 AND NOT EXISTS (
				SELECT 1 FROM "turf-booking".booking b
				WHERE b."slotId" = s.id AND b.status IN ('PENDING', 'CONFIRMED')
			);
		`, id)

	if err != nil {
		return fmt.Errorf("failed to delete slot '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrSlotBooked
	}

	return tx.Commit(ctx)
}

func (r *Repository) DeleteUnbookedSlots(ctx context.Context, turfID string, date clock.Date) (int64, error) {
	tx, err := r.pool.Begin(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
			SELECT id FROM "turf-booking".slot
			WHERE "turfId"=$1 AND date=$2
			ORDER BY id
			FOR UPDATE;
		`, turfID, date.Time())

	if err != nil {
		return 0, fmt.Errorf("failed to lock slots for turf '%v' on %v: %w", turfID, date, err)
	}

	tag, err := tx.Exec(ctx, `
			DELETE FROM "turf-booking".slot s
			WHERE s."turfId"=$1 AND s.date=$2 AND NOT EXISTS (
				SELECT 1 FROM "turf-booking".booking b
				WHERE b."slotId" = s.id AND b.status IN ('PENDING', 'CONFIRMED')
			);
		`, turfID, date.Time())

	if err != nil {
		return 0, fmt.Errorf("failed to delete slots for turf '%v' on %v: %w", turfID, date, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit slot cleanup: %w", err)
	}

	return tag.RowsAffected(), nil
}

func collectSlots(rows pgx.Rows) ([]Slot, error) {
	defer rows.Close()

	slots := []Slot{}

	for rows.Next() {
		var slot Slot
		var date time.Time
		var start, end pgtype.Time

		err := rows.Scan(
			&slot.ID,
			&slot.TurfID,
			&date,
			&start,
			&end,
			&slot.Booked,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning slot row: %w", err)
		}

		slot.Date = clock.DateOf(date)
		slot.StartTime = database.TimeOfDay(start)
		slot.EndTime = database.TimeOfDay(end)

		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating slot rows: %w", err)
	}

	return slots, nil
}
