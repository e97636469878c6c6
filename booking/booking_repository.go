package booking

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hanksha/turf-booking-backend/clock"
	"github.com/hanksha/turf-booking-backend/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `b.id, b."batchId", b."userId", b."turfId", COALESCE(b."slotId", ''), b.date, b."startTime", b."endTime",
				b.status, b.price, b."cancellationCharge", b."createdAt", b."updatedAt"`

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Reserve inserts every booking of the reservation in one transaction. The requested slot
// rows are locked in id order so concurrent reservations on overlapping slots serialize;
// the partial unique index on active bookings backs the check.
func (r *Repository) Reserve(ctx context.Context, reservation Reservation) (ReserveResult, error) {
	slotIDs := make([]string, 0, len(reservation.Bookings))
	for _, b := range reservation.Bookings {
		slotIDs = append(slotIDs, b.SlotID)
	}
	slices.Sort(slotIDs)

	tx, err := r.pool.Begin(ctx)

	if err != nil {
		return ReserveResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, `
			SELECT id FROM "turf-booking".slot
			WHERE id = ANY($1) AND "turfId"=$2
			ORDER BY id
			FOR UPDATE;
		`, slotIDs, reservation.TurfID)

	if err != nil {
		return ReserveResult{}, fmt.Errorf("failed to lock slots: %w", err)
	}

	locked, err := pgx.CollectRows(rows, pgx.RowTo[string])

	if err != nil {
		return ReserveResult{}, fmt.Errorf("failed to lock slots: %w", err)
	}

	if missing := difference(slotIDs, locked); len(missing) > 0 {
		return ReserveResult{}, &SlotUnavailableError{SlotIDs: missing}
	}

	superseded, err := queryBookings(ctx, tx, `
			UPDATE "turf-booking".booking b
			SET status='FAILED', "updatedAt"=$3
			WHERE b."slotId" = ANY($1) AND b."userId"=$2 AND b.status='PENDING'
			RETURNING `+bookingColumns+`;
		`, slotIDs, reservation.UserID, reservation.At)

	if err != nil {
		return ReserveResult{}, fmt.Errorf("failed to supersede pending bookings: %w", err)
	}

	rows, err = tx.Query(ctx, `
			SELECT "slotId" FROM "turf-booking".booking
			WHERE "slotId" = ANY($1) AND status IN ('PENDING', 'CONFIRMED')
			ORDER BY "slotId";
		`, slotIDs)

	if err != nil {
		return ReserveResult{}, fmt.Errorf("failed to check slot availability: %w", err)
	}

	taken, err := pgx.CollectRows(rows, pgx.RowTo[string])

	if err != nil {
		return ReserveResult{}, fmt.Errorf("failed to check slot availability: %w", err)
	}

	if len(taken) > 0 {
		return ReserveResult{}, &SlotUnavailableError{SlotIDs: taken}
	}

	batch := &pgx.Batch{}

	for _, b := range reservation.Bookings {
		batch.Queue(`
			INSERT INTO "turf-booking".booking(id, "batchId", "userId", "turfId", "slotId", date, "startTime", "endTime",
				status, price, "createdAt", "updatedAt")
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
		`,
			b.ID,
			b.BatchID,
			b.UserID,
			b.TurfID,
			b.SlotID,
			b.Date.Time(),
			database.Time(b.StartTime),
			database.Time(b.EndTime),
			b.Status,
			b.Price,
			b.CreatedAt,
			b.UpdatedAt,
		)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if database.IsUniqueViolation(err) {
			return ReserveResult{}, &SlotUnavailableError{SlotIDs: slotIDs}
		}
		return ReserveResult{}, fmt.Errorf("failed to insert bookings: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		if database.IsUniqueViolation(err) {
			return ReserveResult{}, &SlotUnavailableError{SlotIDs: slotIDs}
		}
		return ReserveResult{}, fmt.Errorf("failed to commit reservation: %w", err)
	}

	return ReserveResult{Bookings: reservation.Bookings, Superseded: superseded}, nil
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	sql := `SELECT ` + bookingColumns + ` FROM "turf-booking".booking b WHERE b.id=$1;`

	booking, err := scanBooking(r.pool.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return booking, nil
}

func (r *Repository) ListBookings(ctx context.Context, filter Filter) ([]Booking, error) {
	var sb strings.Builder
	args := []any{}

	sb.WriteString(`SELECT ` + bookingColumns + ` FROM "turf-booking".booking b`)

	if filter.TurfAdminID != "" {
		sb.WriteString(` JOIN "turf-booking".turf t ON t.id = b."turfId"`)
	}

	where := []string{}
	add := func(clause string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if filter.UserID != "" {
		add(`b."userId"=$%d`, filter.UserID)
	}
	if filter.TurfAdminID != "" {
		add(`t."adminId"=$%d`, filter.TurfAdminID)
	}
	if filter.TurfID != "" {
		add(`b."turfId"=$%d`, filter.TurfID)
	}
	if filter.BatchID != "" {
		add(`b."batchId"=$%d`, filter.BatchID)
	}
	if filter.Status != "" {
		add(`b.status=$%d`, filter.Status)
	}
	if !filter.OnOrBefore.IsZero() {
		add(`b.date<=$%d`, filter.OnOrBefore.Time())
	}

	if len(where) > 0 {
		sb.WriteString(" WHERE " + strings.Join(where, " AND "))
	}

	sb.WriteString(` ORDER BY b.date, b."startTime", b.id;`)

	bookings, err := queryBookings(ctx, r.pool, sb.String(), args...)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	return bookings, nil
}

// ApplyTransition moves the bookings still in From to To. With AllOrNothing the update is
// rolled back unless every id matched.
func (r *Repository) ApplyTransition(ctx context.Context, transition Transition) ([]Booking, error) {
	tx, err := r.pool.Begin(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	updated, err := queryBookings(ctx, tx, `
			UPDATE "turf-booking".booking b
			SET status=$3, "cancellationCharge"=COALESCE($4, b."cancellationCharge"), "updatedAt"=$5
			WHERE b.id = ANY($1) AND b.status=$2
			RETURNING `+bookingColumns+`;
		`, transition.IDs, transition.From, transition.To, transition.Charge, transition.At)

	if err != nil {
		return nil, fmt.Errorf("failed to update bookings to %v: %w", transition.To, err)
	}

	if transition.AllOrNothing && len(updated) != len(transition.IDs) {
		return nil, fmt.Errorf("%w: %d of %d bookings are no longer %v", ErrInvalidTransition, len(transition.IDs)-len(updated), len(transition.IDs), transition.From)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transition: %w", err)
	}

	return updated, nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func queryBookings(ctx context.Context, q querier, sql string, args ...any) ([]Booking, error) {
	rows, err := q.Query(ctx, sql, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	bookings := []Booking{}

	for rows.Next() {
		booking, err := scanBooking(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}

func scanBooking(row pgx.Row) (Booking, error) {
	var booking Booking
	var date time.Time
	var start, end pgtype.Time

	err := row.Scan(
		&booking.ID,
		&booking.BatchID,
		&booking.UserID,
		&booking.TurfID,
		&booking.SlotID,
		&date,
		&start,
		&end,
		&booking.Status,
		&booking.Price,
		&booking.CancellationCharge,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err != nil {
		return Booking{}, err
	}

	booking.Date = clock.DateOf(date)
	booking.StartTime = database.TimeOfDay(start)
	booking.EndTime = database.TimeOfDay(end)

	return booking, nil
}

// difference returns the members of want that are missing from have.
func difference(want, have []string) []string {
	missing := []string{}
	for _, id := range want {
		if !slices.Contains(have, id) {
			missing = append(missing, id)
		}
	}
	return missing
}
