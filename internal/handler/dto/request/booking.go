package request

import (
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

// CreateBookingRequest deliberately keeps weak JSON types (string dates, no
// binding:"required" tags): field-level validation is the usecase's job so
// that all violations come back together instead of one bind error at a time.
type CreateBookingRequest struct {
	ListingType        string        `json:"listingType"`
	ListingID          uuid.UUID     `json:"listingId"`
	CheckIn            string        `json:"checkIn"`
	CheckOut           string        `json:"checkOut"`
	Guests             GuestsPayload `json:"guests"`
	GuestDetails       GuestDetails  `json:"guestDetails"`
	SpecialRequests    *string       `json:"specialRequests,omitempty"`
	PricePerNightCents int64         `json:"pricePerNightCents"`
}

type GuestsPayload struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

type GuestDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ListingType: r.ListingType,
		ListingID:   r.ListingID,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		Guests: commands.GuestsInput{
			Adults:   r.Guests.Adults,
			Children: r.Guests.Children,
			Infants:  r.Guests.Infants,
		},
		GuestDetails: commands.GuestDetailsInput{
			Name:  r.GuestDetails.Name,
			Email: r.GuestDetails.Email,
			Phone: r.GuestDetails.Phone,
		},
		SpecialRequests:    r.SpecialRequests,
		PricePerNightCents: r.PricePerNightCents,
	}
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}
