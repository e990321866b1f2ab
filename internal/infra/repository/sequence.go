package repository

import (
	"context"

	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/infra"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/infra/db"
)

// SequenceRepository issues booking numbers from a database sequence: durable,
// strictly increasing and safe under concurrent callers. nextval is
// non-transactional, so an admission that aborts after allocation leaves a
// gap; uniqueness and monotonicity still hold.
type SequenceRepository struct {
	db db.DBTX
}

func NewSequenceRepository(dbtx db.DBTX) *SequenceRepository {
	return &SequenceRepository{db: dbtx}
}

func (r *SequenceRepository) NextBookingNumber(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT nextval('booking_number_seq')`).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to allocate booking number", err)
	}
	return n, nil
}
