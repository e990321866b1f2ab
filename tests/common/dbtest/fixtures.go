//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestHomestay(t *testing.T, pool *pgxpool.Pool, title string, pricePerNightCents int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		"INSERT INTO homestays (id, title, price_per_night_cents) VALUES ($1, $2, $3)",
		id, title, pricePerNightCents)
	require.NoError(t, err)
	return id
}

func CreateTestGuide(t *testing.T, pool *pgxpool.Pool, title string, pricePerNightCents int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		"INSERT INTO guides (id, title, price_per_night_cents) VALUES ($1, $2, $3)",
		id, title, pricePerNightCents)
	require.NoError(t, err)
	return id
}

// ResetDB truncates mutable state and reseeds the baseline listings.
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()

	if _, err := pool.Exec(ctx, "TRUNCATE bookings, booking_jobs, homestays, guides"); err != nil {
		return err
	}
	return SeedReferenceData(pool)
}

// SeedReferenceData inserts the baseline listings the e2e suites book against.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	seed := []struct {
		table string
		title string
		price int64
	}{
		{"homestays", "Netarhat Hilltop Homestay", 250000},
		{"homestays", "Betla Forest Lodge", 180000},
		{"guides", "Patratu Valley Trek Guide", 120000},
	}
	for _, s := range seed {
		if _, err := pool.Exec(ctx,
			"INSERT INTO "+s.table+" (title, price_per_night_cents) VALUES ($1, $2)",
			s.title, s.price); err != nil {
			return err
		}
	}
	return nil
}
