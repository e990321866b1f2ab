package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/domain/booking"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/domain/listing"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/infra"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/infra/db"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/pkg/clock"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/pkg/errs"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/pkg/validator"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type GuestsInput struct {
	Adults   int `json:"adults" validate:"min=1"`
	Children int `json:"children" validate:"gte=0"`
	Infants  int `json:"infants" validate:"gte=0"`
}

type GuestDetailsInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

// CreateBookingInput carries raw request values. Dates arrive as strings so
// an unparseable date is reported as a field violation alongside the other
// field errors instead of aborting the whole request at the JSON layer.
type CreateBookingInput struct {
	ListingType        string            `json:"listingType" validate:"required,oneof=homestay guide"`
	ListingID          uuid.UUID         `json:"listingId" validate:"required"`
	CheckIn            string            `json:"checkIn" validate:"required"`
	CheckOut           string            `json:"checkOut" validate:"required"`
	Guests             GuestsInput       `json:"guests"`
	GuestDetails       GuestDetailsInput `json:"guestDetails"`
	SpecialRequests    *string           `json:"specialRequests,omitempty"`
	PricePerNightCents int64             `json:"pricePerNightCents" validate:"gte=0"`
}

type CancelBookingResult struct {
	ID                 uuid.UUID `json:"id"`
	BookingNumber      int64     `json:"bookingNumber"`
	Status             string    `json:"status"`
	CancellationReason string    `json:"cancellationReason"`
	CancelledAt        time.Time `json:"cancelledAt"`
	RefundAmountCents  int64     `json:"refundAmountCents"`
	RefundStatus       string    `json:"refundStatus"`
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, id uuid.UUID, reason string) (*CancelBookingResult, error)
	ConfirmBooking(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
	CompleteBooking(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookingRepo  BookingRepository
	sequenceRepo SequenceRepository
	listingStore ListingStore
	jobRepo      JobRepository
	bookingReads queries.BookingReadStore
	txManager    TxManager
	clock        clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	sequenceRepo SequenceRepository,
	listingStore ListingStore,
	jobRepo JobRepository,
	bookingReads queries.BookingReadStore,
	txManager TxManager,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:  bookingRepo,
		sequenceRepo: sequenceRepo,
		listingStore: listingStore,
		jobRepo:      jobRepo,
		bookingReads: bookingReads,
		txManager:    txManager,
		clock:        clk,
	}
}

// CreateBooking runs the admission sequence: two-phase validation, then a
// per-listing serialized conflict check and insert. Title resolution and
// number allocation run concurrently once the range is known to be free.
func (u *bookingCommandsImpl) CreateBooking(ctx context.Context, input CreateBookingInput) (*queries.BookingView, error) {
	// Phase one: collect every field-level violation before returning.
	violations := validator.Validate(input)
	checkIn, checkOut, dateViolations := parseStayDates(input)
	violations = append(violations, dateViolations...)
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	// Phase two: date-range sanity, reported individually.
	stay, err := booking.NewStayRange(checkIn, checkOut, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	listingType := listing.Type(input.ListingType)

	guests, err := booking.NewGuestCount(input.Guests.Adults, input.Guests.Children, input.Guests.Infants)
	if err != nil {
		return nil, &ValidationError{Violations: []validator.FieldViolation{{Field: "guests.adults", Message: err.Error()}}}
	}
	contact, err := booking.NewGuestContact(input.GuestDetails.Name, input.GuestDetails.Email, input.GuestDetails.Phone)
	if err != nil {
		return nil, &ValidationError{Violations: []validator.FieldViolation{{Field: "guestDetails", Message: err.Error()}}}
	}

	var bookingID uuid.UUID
	txErr := u.txManager.WithinTx(ctx, func(tx db.DBTX) error {
		if err := u.bookingRepo.AcquireListingLock(ctx, tx, listingType, input.ListingID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		conflict, err := u.bookingRepo.FindConflicting(ctx, tx, listingType, input.ListingID, stay.CheckIn(), stay.CheckOut(), nil)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if conflict != nil {
			return newConflictError(input.ListingType, input.ListingID, stay, conflict)
		}

		// No ordering dependency between the title snapshot and the booking
		// number; the snapshot lookup must never fail the admission, so its
		// error collapses to absence here.
		snapCh := make(chan *listing.Snapshot, 1)
		go func() {
			snap, lookupErr := u.listingStore.FindSnapshot(ctx, listingType, input.ListingID)
			if lookupErr != nil {
				slog.WarnContext(ctx, "listing title resolution failed",
					"listing_type", input.ListingType,
					"listing_id", input.ListingID,
					"error", lookupErr.Error())
				snapCh <- nil
				return
			}
			snapCh <- snap
		}()

		number, err := u.sequenceRepo.NextBookingNumber(ctx)
		snap := <-snapCh
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		var title *string
		perNightCents := input.PricePerNightCents
		if snap != nil {
			t := snap.Title
			title = &t
			if perNightCents == 0 {
				perNightCents = snap.PricePerNightCent
			}
		}

		entity := booking.NewBooking(
			number,
			listingType,
			input.ListingID,
			title,
			stay,
			guests,
			contact,
			trimmedPtr(input.SpecialRequests),
			booking.CalculatePricing(perNightCents, stay),
		)

		bookingID, err = u.bookingRepo.Create(ctx, tx, entity)
		if err != nil {
			// The exclusion constraint caught an overlap the scan missed.
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrBookingConflict)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := u.enqueueJob(ctx, tx, "booking_created", bookingID, number); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Read-after-write: serve the full view from the read store.
	view, err := u.bookingReads.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// CancelBooking guards the transition under a row lock, then reports the
// refund owed. The refund is the full stored total; nothing is executed.
func (u *bookingCommandsImpl) CancelBooking(ctx context.Context, id uuid.UUID, reason string) (*CancelBookingResult, error) {
	var result *CancelBookingResult
	txErr := u.txManager.WithinTx(ctx, func(tx db.DBTX) error {
		b, err := u.loadForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		now := u.clock.Now()
		if err := b.Cancel(reason, now); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		if err := u.bookingRepo.Update(ctx, tx, b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := u.enqueueJob(ctx, tx, "booking_cancelled", b.ID(), b.BookingNumber()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result = &CancelBookingResult{
			ID:                 b.ID(),
			BookingNumber:      b.BookingNumber(),
			Status:             b.Status().String(),
			CancellationReason: reason,
			CancelledAt:        now,
			RefundAmountCents:  b.RefundAmount().Cents(),
			RefundStatus:       booking.RefundStatusPending,
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return result, nil
}

func (u *bookingCommandsImpl) ConfirmBooking(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	return u.transition(ctx, id, func(b *booking.Booking) error { return b.Confirm() })
}

func (u *bookingCommandsImpl) CompleteBooking(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	return u.transition(ctx, id, func(b *booking.Booking) error { return b.Complete() })
}

func (u *bookingCommandsImpl) transition(ctx context.Context, id uuid.UUID, apply func(*booking.Booking) error) (*queries.BookingView, error) {
	txErr := u.txManager.WithinTx(ctx, func(tx db.DBTX) error {
		b, err := u.loadForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := apply(b); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		if err := u.bookingRepo.Update(ctx, tx, b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	view, err := u.bookingReads.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *bookingCommandsImpl) loadForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	b, err := u.bookingRepo.FindByIDForUpdate(ctx, tx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return b, nil
}

func (u *bookingCommandsImpl) enqueueJob(ctx context.Context, tx db.DBTX, topic string, bookingID uuid.UUID, bookingNumber int64) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id":     bookingID,
		"booking_number": bookingNumber,
		"type":           topic,
	})
	if err != nil {
		return err
	}
	return u.jobRepo.CreateJob(ctx, tx, "email", topic, payload, u.clock.Now())
}

func newConflictError(listingType string, listingID uuid.UUID, stay booking.StayRange, conflict *ConflictSnapshot) *ConflictError {
	return &ConflictError{
		ListingType:       listingType,
		ListingID:         listingID,
		RequestedCheckIn:  stay.CheckIn().UTC().Format(dayFormat),
		RequestedCheckOut: stay.CheckOut().UTC().Format(dayFormat),
		Conflicting: ConflictingBookingSummary{
			ID:            conflict.ID,
			BookingNumber: conflict.BookingNumber,
			CheckIn:       conflict.CheckIn.UTC().Format(dayFormat),
			CheckOut:      conflict.CheckOut.UTC().Format(dayFormat),
		},
	}
}

// parseStayDates reports unparseable dates as field violations so they batch
// with the other field errors. Range sanity is a later, separate phase.
func parseStayDates(input CreateBookingInput) (checkIn, checkOut time.Time, violations []validator.FieldViolation) {
	if input.CheckIn != "" {
		t, err := parseDate(input.CheckIn)
		if err != nil {
			violations = append(violations, validator.FieldViolation{Field: "checkIn", Message: "must be a valid date"})
		} else {
			checkIn = t
		}
	}
	if input.CheckOut != "" {
		t, err := parseDate(input.CheckOut)
		if err != nil {
			violations = append(violations, validator.FieldViolation{Field: "checkOut", Message: "must be a valid date"})
		} else {
			checkOut = t
		}
	}
	return checkIn, checkOut, violations
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(dayFormat, s)
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
