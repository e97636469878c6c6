package turf

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hanksha/turf-booking-backend/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) GetTurf(ctx context.Context, id string) (Turf, error) {
	sql := `
			SELECT id, "adminId", name, "basePrice", "weekdayPrice", "weekendPrice", "peakMultiplier",
				"peakStart", "peakEnd", "openingTime", "closingTime", approved, status
			FROM "turf-booking".turf
			WHERE id=$1;
		`

	var turf Turf
	var peakStart, peakEnd, opening, closing pgtype.Time

	err := r.pool.QueryRow(ctx, sql, id).Scan(
		&turf.ID,
		&turf.AdminID,
		&turf.Name,
		&turf.BasePrice,
		&turf.WeekdayPrice,
		&turf.WeekendPrice,
		&turf.PeakMultiplier,
		&peakStart,
		&peakEnd,
		&opening,
		&closing,
		&turf.Approved,
		&turf.Status,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Turf{}, ErrTurfNotFound
	}

	if err != nil {
		return Turf{}, fmt.Errorf("failed to fetch turf with id %v: %w", id, err)
	}

	turf.PeakStart = database.TimeOfDay(peakStart)
	turf.PeakEnd = database.TimeOfDay(peakEnd)
	turf.OpeningTime = database.TimeOfDay(opening)
	turf.ClosingTime = database.TimeOfDay(closing)

	return turf, nil
}

func (r *Repository) InsertTurf(ctx context.Context, turf Turf) (Turf, error) {
	sql := `
			INSERT INTO "turf-booking".turf(
				id, "adminId", name, "basePrice", "weekdayPrice", "weekendPrice", "peakMultiplier",
				"peakStart", "peakEnd", "openingTime", "closingTime", approved, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
		`

	if turf.ID == "" {
		turf.ID = uuid.NewString()
	}

	_, err := r.pool.Exec(ctx, sql,
		turf.ID,
		turf.AdminID,
		turf.Name,
		turf.BasePrice,
		turf.WeekdayPrice,
		turf.WeekendPrice,
		turf.PeakMultiplier,
		database.Time(turf.PeakStart),
		database.Time(turf.PeakEnd),
		database.Time(turf.OpeningTime),
		database.Time(turf.ClosingTime),
		turf.Approved,
		turf.Status,
	)

	if err != nil {
		return Turf{}, fmt.Errorf("failed to insert turf: %w", err)
	}

	return turf, nil
}

func (r *Repository) UpdateTurf(ctx context.Context, turf Turf) error {
	sql := `
			UPDATE "turf-booking".turf
			SET
				name=$1,
				"basePrice"=$2,
				"weekdayPrice"=$3,
				"weekendPrice"=$4,
				"peakMultiplier"=$5,
				"peakStart"=$6,
				"peakEnd"=$7,
				"openingTime"=$8,
				"closingTime"=$9,
				approved=$10,
				status=$11
			WHERE id=$12;
		`

	tag, err := r.pool.Exec(ctx, sql,
		turf.Name,
		turf.BasePrice,
		turf.WeekdayPrice,
		turf.WeekendPrice,
		turf.PeakMultiplier,
		database.Time(turf.PeakStart),
		database.Time(turf.PeakEnd),
		database.Time(turf.OpeningTime),
		database.Time(turf.ClosingTime),
		turf.Approved,
		turf.Status,
		turf.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update turf '%v': %w", turf.ID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrTurfNotFound
	}

	return nil
}
