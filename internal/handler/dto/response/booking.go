package response

import (
	"time"

	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/usecase/commands"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
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

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

type BookingListItemResponse struct {
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

type BookingListResponse struct {
	Items      []*BookingListItemResponse `json:"items"`
	TotalCount int64                      `json:"totalCount"`
	Page       int                        `json:"page"`
	PageSize   int                        `json:"pageSize"`
}

func FromBookingPage(page *queries.BookingPage) *BookingListResponse {
	items := make([]*BookingListItemResponse, len(page.Items))
	for i, item := range page.Items {
		var resp BookingListItemResponse
		_ = copier.Copy(&resp, item)
		items[i] = &resp
	}
	return &BookingListResponse{
		Items:      items,
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}
}

type CancelBookingResponse struct {
	ID                 uuid.UUID `json:"id"`
	BookingNumber      int64     `json:"bookingNumber"`
	Status             string    `json:"status"`
	CancellationReason string    `json:"cancellationReason"`
	CancelledAt        time.Time `json:"cancelledAt"`
	RefundAmountCents  int64     `json:"refundAmountCents"`
	RefundStatus       string    `json:"refundStatus"`
}

func FromCancelResult(result *commands.CancelBookingResult) *CancelBookingResponse {
	var resp CancelBookingResponse
	_ = copier.Copy(&resp, result)
	return &resp
}

type ListingResponse struct {
	ID                 uuid.UUID `json:"id"`
	ListingType        string    `json:"listingType"`
	Title              string    `json:"title"`
	PricePerNightCents int64     `json:"pricePerNightCents"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func FromListingView(view *queries.ListingView) *ListingResponse {
	var resp ListingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
