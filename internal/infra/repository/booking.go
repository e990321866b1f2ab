package repository

import (
	"context"
	"time"

	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/domain/booking"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/domain/listing"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/infra"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/infra/db"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/pkg/pgconv"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

// AcquireListingLock serializes admission per listing for the rest of the
// transaction. Different listings hash to different keys and proceed in
// parallel; the exclusion constraint remains as backstop if the lock is
// ever bypassed.
func (r *BookingRepository) AcquireListingLock(ctx context.Context, tx db.DBTX, listingType listing.Type, listingID uuid.UUID) error {
	key := listingType.String() + "/" + listingID.String()
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key); err != nil {
		return infra.WrapRepoErr("failed to acquire listing lock", err)
	}
	return nil
}

// FindConflicting scans non-cancelled bookings of the listing for an
// open-interval overlap with [checkIn, checkOut). Returns (nil, nil) when the
// range is free; any single offender is sufficient to reject.
func (r *BookingRepository) FindConflicting(
	ctx context.Context,
	tx db.DBTX,
	listingType listing.Type,
	listingID uuid.UUID,
	checkIn, checkOut time.Time,
	excludeID *uuid.UUID,
) (*commands.ConflictSnapshot, error) {
	const query = `
		SELECT id, booking_number, check_in, check_out
		FROM bookings
		WHERE listing_type = $1
		  AND listing_id = $2
		  AND status <> 'cancelled'
		  AND check_in < $4
		  AND check_out > $3
		  AND ($5::uuid IS NULL OR id <> $5)
		LIMIT 1`

	var snap commands.ConflictSnapshot
	err := tx.QueryRow(ctx, query, listingType.String(), listingID, checkIn, checkOut, excludeID).
		Scan(&snap.ID, &snap.BookingNumber, &snap.CheckIn, &snap.CheckOut)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to scan for conflicting bookings", err)
	}

	return &snap, nil
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (
			id, booking_number, listing_type, listing_id, listing_title,
			check_in, check_out, adults, children, infants,
			guest_name, guest_email, guest_phone, special_requests,
			price_per_night_cents, nights, total_price_cents,
			status, payment_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19
		)
		RETURNING id`

	phone := b.Contact().Phone()
	var phonePtr *string
	if phone != "" {
		phonePtr = &phone
	}

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		b.ID(),
		b.BookingNumber(),
		b.ListingType().String(),
		b.ListingID(),
		pgconv.StringPtrToPgtype(b.ListingTitle()),
		b.Stay().CheckIn(),
		b.Stay().CheckOut(),
		b.Guests().Adults(),
		b.Guests().Children(),
		b.Guests().Infants(),
		b.Contact().Name(),
		b.Contact().Email(),
		pgconv.StringPtrToPgtype(phonePtr),
		pgconv.StringPtrToPgtype(b.SpecialRequests()),
		b.Pricing().PerNight().Cents(),
		b.Pricing().Nights(),
		b.Pricing().Total().Cents(),
		b.Status().String(),
		b.PaymentStatus().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

// FindByIDForUpdate loads the booking under a row lock so cancel and
// complete on the same record cannot race each other.
func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, booking_number, listing_type, listing_id, listing_title,
		       check_in, check_out, adults, children, infants,
		       guest_name, guest_email, guest_phone, special_requests,
		       price_per_night_cents, nights, total_price_cents,
		       status, payment_status, cancellation_reason, cancelled_at,
		       created_at, updated_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE`

	return r.scanBooking(ctx, tx, query, id)
}

func (r *BookingRepository) scanBooking(ctx context.Context, tx db.DBTX, query string, args ...any) (*booking.Booking, error) {
	var (
		id                 uuid.UUID
		bookingNumber      int64
		listingTypeStr     string
		listingID          uuid.UUID
		listingTitle       pgtype.Text
		checkIn, checkOut  time.Time
		adults             int
		children           int
		infants            int
		guestName          string
		guestEmail         string
		guestPhone         pgtype.Text
		specialRequests    pgtype.Text
		perNightCents      int64
		nights             int
		totalCents         int64
		statusStr          string
		paymentStatusStr   string
		cancellationReason pgtype.Text
		cancelledAt        pgtype.Timestamptz
		createdAt          time.Time
		updatedAt          time.Time
	)

	err := tx.QueryRow(ctx, query, args...).Scan(
		&id, &bookingNumber, &listingTypeStr, &listingID, &listingTitle,
		&checkIn, &checkOut, &adults, &children, &infants,
		&guestName, &guestEmail, &guestPhone, &specialRequests,
		&perNightCents, &nights, &totalCents,
		&statusStr, &paymentStatusStr, &cancellationReason, &cancelledAt,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	guests, err := booking.NewGuestCount(adults, children, infants)
	if err != nil {
		return nil, infra.WrapRepoErr("stored guest counts are invalid", err)
	}

	phone := ""
	if guestPhone.Valid {
		phone = guestPhone.String
	}
	contact, err := booking.NewGuestContact(guestName, guestEmail, phone)
	if err != nil {
		return nil, infra.WrapRepoErr("stored guest contact is invalid", err)
	}

	return booking.ReconstructBooking(
		id,
		bookingNumber,
		listing.Type(listingTypeStr),
		listingID,
		pgconv.StringPtrFromPgtype(listingTitle),
		booking.ReconstructStayRange(checkIn, checkOut),
		guests,
		contact,
		pgconv.StringPtrFromPgtype(specialRequests),
		booking.ReconstructPricing(perNightCents, nights, totalCents),
		booking.Status(statusStr),
		booking.PaymentStatus(paymentStatusStr),
		pgconv.StringPtrFromPgtype(cancellationReason),
		pgconv.TimePtrFromPgtype(cancelledAt),
		createdAt,
		updatedAt,
	), nil
}

// Update persists the mutable transition state. Immutable admission-time
// fields (number, listing, stay, guests, pricing) are deliberately excluded.
func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	const query = `
		UPDATE bookings
		SET status = $2,
		    payment_status = $3,
		    cancellation_reason = $4,
		    cancelled_at = $5,
		    updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		b.ID(),
		b.Status().String(),
		b.PaymentStatus().String(),
		pgconv.StringPtrToPgtype(b.CancellationReason()),
		pgconv.TimePtrToPgtype(b.CancelledAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}
