package booking

import (
	"errors"
	"time"

	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/domain/listing"

	"github.com/google/uuid"
)

// Transition guard errors. Cancel and complete fail with distinct,
// user-facing messages depending on the state they were refused from.
var (
	ErrAlreadyCancelled     = errors.New("booking is already cancelled")
	ErrCancelCompleted      = errors.New("cannot cancel a completed booking")
	ErrAlreadyConfirmed     = errors.New("booking is already confirmed")
	ErrConfirmNotPending    = errors.New("only a pending booking can be confirmed")
	ErrAlreadyCompleted     = errors.New("booking is already completed")
	ErrCompleteCancelled    = errors.New("cannot complete a cancelled booking")
	ErrCompleteNotConfirmed = errors.New("only a confirmed booking can be completed")
)

// Booking is the central aggregate. bookingNumber is assigned once at
// admission and never changes; listingTitle is a snapshot taken at booking
// time and is never refreshed, even if the listing is later renamed.
type Booking struct {
	id                 uuid.UUID
	bookingNumber      int64
	listingType        listing.Type
	listingID          uuid.UUID
	listingTitle       *string
	stay               StayRange
	guests             GuestCount
	contact            GuestContact
	specialRequests    *string
	pricing            Pricing
	status             Status
	paymentStatus      PaymentStatus
	cancellationReason *string
	cancelledAt        *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

// NewBooking assembles an admitted booking. Conflict checking and number
// allocation happen before this is called; a new booking always starts
// pending/pending.
func NewBooking(
	bookingNumber int64,
	listingType listing.Type,
	listingID uuid.UUID,
	listingTitle *string,
	stay StayRange,
	guests GuestCount,
	contact GuestContact,
	specialRequests *string,
	pricing Pricing,
) *Booking {
	return &Booking{
		id:              uuid.New(),
		bookingNumber:   bookingNumber,
		listingType:     listingType,
		listingID:       listingID,
		listingTitle:    listingTitle,
		stay:            stay,
		guests:          guests,
		contact:         contact,
		specialRequests: specialRequests,
		pricing:         pricing,
		status:          StatusPending,
		paymentStatus:   PaymentPending,
	}
}

func ReconstructBooking(
	id uuid.UUID,
	bookingNumber int64,
	listingType listing.Type,
	listingID uuid.UUID,
	listingTitle *string,
	stay StayRange,
	guests GuestCount,
	contact GuestContact,
	specialRequests *string,
	pricing Pricing,
	status Status,
	paymentStatus PaymentStatus,
	cancellationReason *string,
	cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                 id,
		bookingNumber:      bookingNumber,
		listingType:        listingType,
		listingID:          listingID,
		listingTitle:       listingTitle,
		stay:               stay,
		guests:             guests,
		contact:            contact,
		specialRequests:    specialRequests,
		pricing:            pricing,
		status:             status,
		paymentStatus:      paymentStatus,
		cancellationReason: cancellationReason,
		cancelledAt:        cancelledAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// Cancel transitions pending or confirmed into cancelled, recording the
// reason and timestamp. Cancellation frees the stay interval for future
// admissions.
func (b *Booking) Cancel(reason string, now time.Time) error {
	switch b.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrCancelCompleted
	}

	b.status = StatusCancelled
	b.cancellationReason = &reason
	b.cancelledAt = &now
	return nil
}

// Confirm transitions pending into confirmed.
func (b *Booking) Confirm() error {
	switch b.status {
	case StatusConfirmed:
		return ErrAlreadyConfirmed
	case StatusCancelled, StatusCompleted:
		return ErrConfirmNotPending
	}

	b.status = StatusConfirmed
	return nil
}

// Complete transitions confirmed into completed.
func (b *Booking) Complete() error {
	switch b.status {
	case StatusCompleted:
		return ErrAlreadyCompleted
	case StatusCancelled:
		return ErrCompleteCancelled
	case StatusPending:
		return ErrCompleteNotConfirmed
	}

	b.status = StatusCompleted
	return nil
}

// RefundAmount is the full stored total. There is no cancellation window or
// partial-refund policy; this system reports the amount owed, it never pays.
func (b *Booking) RefundAmount() Money {
	return b.pricing.Total()
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) BookingNumber() int64      { return b.bookingNumber }
func (b *Booking) ListingType() listing.Type { return b.listingType }
func (b *Booking) ListingID() uuid.UUID      { return b.listingID }
func (b *Booking) ListingTitle() *string     { return b.listingTitle }
func (b *Booking) Stay() StayRange           { return b.stay }
func (b *Booking) Guests() GuestCount        { return b.guests }
func (b *Booking) TotalGuests() int          { return b.guests.Total() }
func (b *Booking) Contact() GuestContact     { return b.contact }
func (b *Booking) SpecialRequests() *string  { return b.specialRequests }
func (b *Booking) Pricing() Pricing          { return b.pricing }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus {
	return b.paymentStatus
}
func (b *Booking) CancellationReason() *string { return b.cancellationReason }
func (b *Booking) CancelledAt() *time.Time     { return b.cancelledAt }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }
