package repository

import (
	"context"
	"time"

	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/infra"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/infra/db"
)

// JobRepository writes booking lifecycle events into the booking_jobs outbox
// in the same transaction as the state change that caused them.
type JobRepository struct {
	db db.DBTX
}

func NewJobRepository(dbtx db.DBTX) *JobRepository {
	return &JobRepository{db: dbtx}
}

func (r *JobRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO booking_jobs (kind, topic, payload, run_at, status)
		VALUES ($1, $2, $3, $4, 'queued')`

	if _, err := tx.Exec(ctx, query, kind, topic, payload, runAt); err != nil {
		return infra.WrapRepoErr("failed to create booking job", err)
	}
	return nil
}
