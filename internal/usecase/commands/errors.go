package commands

import (
	"fmt"

	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/pkg/errs"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange        = errs.New("invalid date range")
	ErrBookingConflict         = errs.New("booking conflict")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrInvalidTransition       = errs.New("invalid booking state transition")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// dayFormat is the calendar-day precision used whenever stay boundaries
// appear in error payloads.
const dayFormat = "2006-01-02"

// ValidationError carries every violated field of a creation request; it is
// never returned with a partial list.
type ValidationError struct {
	Violations []validator.FieldViolation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Violations))
}

// ConflictingBookingSummary identifies the offending booking with its stay
// boundaries truncated to the date component.
type ConflictingBookingSummary struct {
	ID            uuid.UUID `json:"id"`
	BookingNumber int64     `json:"bookingNumber"`
	CheckIn       string    `json:"checkIn"`
	CheckOut      string    `json:"checkOut"`
}

// ConflictError means the requested range is unavailable; retrying the same
// request cannot succeed until the offender is cancelled.
type ConflictError struct {
	ListingType       string                    `json:"listingType"`
	ListingID         uuid.UUID                 `json:"listingId"`
	RequestedCheckIn  string                    `json:"requestedCheckIn"`
	RequestedCheckOut string                    `json:"requestedCheckOut"`
	Conflicting       ConflictingBookingSummary `json:"conflictingBooking"`
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("requested dates %s to %s are not available for this listing", e.RequestedCheckIn, e.RequestedCheckOut)
}
