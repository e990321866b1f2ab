//go:build unit || e2e

package builder

import (
	"time"

	dombooking "github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/domain/booking"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/domain/listing"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	BookingNumber     int64
	ListingType       listing.Type
	ListingID         uuid.UUID
	ListingTitle      *string
	CheckIn           time.Time
	CheckOut          time.Time
	Now               time.Time
	Adults            int
	Children          int
	Infants           int
	GuestName         string
	GuestEmail        string
	GuestPhone        string
	SpecialRequests   *string
	PricePerNightCent int64
	Status            dombooking.Status
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	title := "Netarhat Hilltop Homestay"
	return &BookingBuilder{
		BookingNumber:     1001,
		ListingType:       listing.TypeHomestay,
		ListingID:         uuid.New(),
		ListingTitle:      &title,
		CheckIn:           now.AddDate(0, 0, 7),
		CheckOut:          now.AddDate(0, 0, 10),
		Now:               now,
		Adults:            2,
		Children:          1,
		Infants:           0,
		GuestName:         "Asha Kumari",
		GuestEmail:        "asha@example.com",
		GuestPhone:        "+91-9900112233",
		PricePerNightCent: 250000,
		Status:            dombooking.StatusPending,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	stay, err := dombooking.NewStayRange(b.CheckIn, b.CheckOut, b.Now)
	if err != nil {
		return nil, err
	}
	guests, err := dombooking.NewGuestCount(b.Adults, b.Children, b.Infants)
	if err != nil {
		return nil, err
	}
	contact, err := dombooking.NewGuestContact(b.GuestName, b.GuestEmail, b.GuestPhone)
	if err != nil {
		return nil, err
	}
	pricing := dombooking.CalculatePricing(b.PricePerNightCent, stay)
	booked := dombooking.NewBooking(
		b.BookingNumber, b.ListingType, b.ListingID, b.ListingTitle,
		stay, guests, contact, b.SpecialRequests, pricing,
	)
	return booked, nil
}

// BuildDomainWithStatus reconstructs a booking already in the given state,
// bypassing transition guards, for exercising the guards themselves.
func (b *BookingBuilder) BuildDomainWithStatus(status dombooking.Status) *dombooking.Booking {
	stay := dombooking.ReconstructStayRange(b.CheckIn, b.CheckOut)
	guests, _ := dombooking.NewGuestCount(b.Adults, b.Children, b.Infants)
	contact, _ := dombooking.NewGuestContact(b.GuestName, b.GuestEmail, b.GuestPhone)
	pricing := dombooking.CalculatePricing(b.PricePerNightCent, stay)
	payment := dombooking.PaymentPending
	if status == dombooking.StatusCancelled {
		payment = dombooking.PaymentRefunded
	}
	return dombooking.ReconstructBooking(
		uuid.New(), b.BookingNumber, b.ListingType, b.ListingID, b.ListingTitle,
		stay, guests, contact, b.SpecialRequests, pricing,
		status, payment, nil, nil, b.Now, b.Now,
	)
}

func (b *BookingBuilder) BuildInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ListingType: string(b.ListingType),
		ListingID:   b.ListingID,
		CheckIn:     b.CheckIn.Format(time.RFC3339),
		CheckOut:    b.CheckOut.Format(time.RFC3339),
		Guests: commands.GuestsInput{
			Adults:   b.Adults,
			Children: b.Children,
			Infants:  b.Infants,
		},
		GuestDetails: commands.GuestDetailsInput{
			Name:  b.GuestName,
			Email: b.GuestEmail,
			Phone: b.GuestPhone,
		},
		PricePerNightCents: b.PricePerNightCent,
	}
}
