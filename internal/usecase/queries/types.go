package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID                 uuid.UUID  `json:"id"`
	BookingNumber      int64      `json:"bookingNumber"`
	ListingType        string     `json:"listingType"`
	ListingID          uuid.UUID  `json:"listingId"`
	ListingTitle       *string    `json:"listingTitle,omitempty"`
	CheckIn            time.Time  `json:"checkIn"`
	CheckOut           time.Time  `json:"checkOut"`
	Adults             int        `json:"adults"`
	Children           int        `json:"children"`
	Infants            int        `json:"infants"`
	TotalGuests        int        `json:"totalGuests"`
	GuestName          string     `json:"guestName"`
	GuestEmail         string     `json:"guestEmail"`
	GuestPhone         *string    `json:"guestPhone,omitempty"`
	SpecialRequests    *string    `json:"specialRequests,omitempty"`
	PricePerNightCents int64      `json:"pricePerNightCents"`
	Nights             int        `json:"nights"`
	TotalPriceCents    int64      `json:"totalPriceCents"`
	Status             string     `json:"status"`
	PaymentStatus      string     `json:"paymentStatus"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	BookingNumber int64     `json:"bookingNumber"`
	ListingType   string    `json:"listingType"`
	ListingID     uuid.UUID `json:"listingId"`
	ListingTitle  *string   `json:"listingTitle,omitempty"`
	CheckIn       time.Time `json:"checkIn"`
	CheckOut      time.Time `json:"checkOut"`
	TotalGuests   int       `json:"totalGuests"`
	TotalCents    int64     `json:"totalPriceCents"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BookingPage carries offset pagination with a total count, which the
// exposed list contract requires.
type BookingPage struct {
	Items      []*BookingListItem `json:"items"`
	TotalCount int64              `json:"totalCount"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
}

type ListFilter struct {
	Status *string
}

type ListingView struct {
	ID                 uuid.UUID `json:"id"`
	ListingType        string    `json:"listingType"`
	Title              string    `json:"title"`
	PricePerNightCents int64     `json:"pricePerNightCents"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
