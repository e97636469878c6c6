// Package database owns the Postgres schema and the small conversions shared by the
// pgx repositories.
package database

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/hanksha/turf-booking-backend/clock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed setup.sql
var setupSQL string

const uniqueViolation = "23505"

const microsPerMinute = int64(60 * 1000 * 1000)

func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)

	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	return pool, nil
}

// Setup creates the schema, tables and indexes if they do not exist yet.
func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, setupSQL); err != nil {
		return fmt.Errorf("failed to initialize tables: %w", err)
	}
	return nil
}

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func Time(tod clock.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(tod) * microsPerMinute, Valid: true}
}

func TimeOfDay(t pgtype.Time) clock.TimeOfDay {
	return clock.TimeOfDay(t.Microseconds / microsPerMinute)
}
