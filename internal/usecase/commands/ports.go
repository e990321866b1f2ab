package commands

import (
	"context"
	"time"

	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/domain/booking"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/domain/listing"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/infra/db"

	"github.com/google/uuid"
)

// ConflictSnapshot identifies the booking that blocked an admission. Write-side
// snapshot, kept separate from the read-side view types.
type ConflictSnapshot struct {
	ID            uuid.UUID
	BookingNumber int64
	CheckIn       time.Time
	CheckOut      time.Time
}

type BookingRepository interface {
	AcquireListingLock(ctx context.Context, tx db.DBTX, listingType listing.Type, listingID uuid.UUID) error
	FindConflicting(ctx context.Context, tx db.DBTX, listingType listing.Type, listingID uuid.UUID, checkIn, checkOut time.Time, excludeID *uuid.UUID) (*ConflictSnapshot, error)
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error
}

// SequenceRepository is the durable counter behind booking numbers.
type SequenceRepository interface {
	NextBookingNumber(ctx context.Context) (int64, error)
}

// ListingStore resolves the display snapshot of the booked listing. Lookups
// are best-effort: the caller swallows failures and proceeds without a title.
type ListingStore interface {
	FindSnapshot(ctx context.Context, listingType listing.Type, id uuid.UUID) (*listing.Snapshot, error)
}

type JobRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

// TxManager scopes a function to one database transaction; the transaction
// rolls back when fn returns an error.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(tx db.DBTX) error) error
}
