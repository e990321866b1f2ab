package readstore

import (
	"context"
	"time"

	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/infra"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/infra/db"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/pkg/pgconv"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT id, booking_number, listing_type, listing_id, listing_title,
		       check_in, check_out, adults, children, infants,
		       guest_name, guest_email, guest_phone, special_requests,
		       price_per_night_cents, nights, total_price_cents,
		       status, payment_status, cancellation_reason, cancelled_at,
		       created_at, updated_at
		FROM bookings
		WHERE id = $1`

	var (
		view               queries.BookingView
		listingTitle       pgtype.Text
		guestPhone         pgtype.Text
		specialRequests    pgtype.Text
		cancellationReason pgtype.Text
		cancelledAt        pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.BookingNumber, &view.ListingType, &view.ListingID, &listingTitle,
		&view.CheckIn, &view.CheckOut, &view.Adults, &view.Children, &view.Infants,
		&view.GuestName, &view.GuestEmail, &guestPhone, &specialRequests,
		&view.PricePerNightCents, &view.Nights, &view.TotalPriceCents,
		&view.Status, &view.PaymentStatus, &cancellationReason, &cancelledAt,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	view.ListingTitle = pgconv.StringPtrFromPgtype(listingTitle)
	view.GuestPhone = pgconv.StringPtrFromPgtype(guestPhone)
	view.SpecialRequests = pgconv.StringPtrFromPgtype(specialRequests)
	view.CancellationReason = pgconv.StringPtrFromPgtype(cancellationReason)
	view.CancelledAt = pgconv.TimePtrFromPgtype(cancelledAt)
	view.TotalGuests = view.Adults + view.Children + view.Infants

	return &view, nil
}

// FindPage returns one offset page plus the unfiltered-by-page total, taken
// from a window count so items and count come from the same snapshot.
func (r *BookingReadStore) FindPage(ctx context.Context, status *string, limit, offset int32) ([]*queries.BookingListItem, int64, error) {
	const query = `
		SELECT id, booking_number, listing_type, listing_id, listing_title,
		       check_in, check_out, adults + children + infants AS total_guests,
		       total_price_cents, status, created_at,
		       count(*) OVER () AS total_count
		FROM bookings
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, pgconv.StringPtrToPgtype(status), limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var (
		items []*queries.BookingListItem
		total int64
	)
	for rows.Next() {
		var (
			item         queries.BookingListItem
			listingTitle pgtype.Text
			createdAt    time.Time
		)
		if err := rows.Scan(
			&item.ID, &item.BookingNumber, &item.ListingType, &item.ListingID, &listingTitle,
			&item.CheckIn, &item.CheckOut, &item.TotalGuests,
			&item.TotalCents, &item.Status, &createdAt, &total,
		); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.ListingTitle = pgconv.StringPtrFromPgtype(listingTitle)
		item.CreatedAt = createdAt
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	// An empty page past the end still needs the real total.
	if len(items) == 0 {
		countQuery := `SELECT count(*) FROM bookings WHERE ($1::text IS NULL OR status = $1)`
		if err := r.db.QueryRow(ctx, countQuery, pgconv.StringPtrToPgtype(status)).Scan(&total); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to count bookings", err)
		}
	}

	return items, total, nil
}
