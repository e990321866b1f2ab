//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/handler/dto/response"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/tests/common/dbtest"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/tests/common/httptest"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) bookingBody(listingID uuid.UUID, checkInDays, checkOutDays int) map[string]any {
	now := time.Now().UTC()
	return map[string]any{
		"listingType": "homestay",
		"listingId":   listingID.String(),
		"checkIn":     now.AddDate(0, 0, checkInDays).Format(time.RFC3339),
		"checkOut":    now.AddDate(0, 0, checkOutDays).Format(time.RFC3339),
		"guests": map[string]any{
			"adults":   2,
			"children": 1,
		},
		"guestDetails": map[string]any{
			"name":  "Asha Kumari",
			"email": "asha@example.com",
			"phone": "+91-9900112233",
		},
		"pricePerNightCents": 250000,
	}
}

func (s *BookingSuite) createBooking(listingID uuid.UUID, checkInDays, checkOutDays int) response.BookingResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, s.bookingBody(listingID, checkInDays, checkOutDays))

	var created response.BookingResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
	return created
}

// =============================================================================
// TestCreateBooking
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("admits a booking and resolves the listing title", func() {
		listingID := dbtest.CreateTestHomestay(s.T(), s.DB, "Hundru Falls Homestay", 200000)

		created := s.createBooking(listingID, 7, 10)

		s.GreaterOrEqual(created.BookingNumber, int64(1001))
		s.Equal("pending", created.Status)
		s.Equal("pending", created.PaymentStatus)
		s.Equal(3, created.Nights)
		s.Equal(int64(250000*3), created.TotalPriceCents)
		s.Equal(4, created.TotalGuests)
		s.Require().NotNil(created.ListingTitle)
		s.Equal("Hundru Falls Homestay", *created.ListingTitle)
	})

	s.Run("admits a booking for a listing that does not exist, without a title", func() {
		created := s.createBooking(uuid.New(), 7, 10)

		s.Equal("pending", created.Status)
		s.Nil(created.ListingTitle)
	})

	s.Run("booking numbers strictly increase", func() {
		listingID := dbtest.CreateTestHomestay(s.T(), s.DB, "Dassam Falls Stay", 150000)

		first := s.createBooking(listingID, 7, 10)
		second := s.createBooking(listingID, 10, 12)
		third := s.createBooking(listingID, 12, 14)

		s.Greater(second.BookingNumber, first.BookingNumber)
		s.Greater(third.BookingNumber, second.BookingNumber)
	})

	s.Run("returns every field violation at once", func() {
		body := map[string]any{
			"listingType": "castle",
			"checkIn":     "not-a-date",
			"guests":      map[string]any{"adults": 0},
			"guestDetails": map[string]any{
				"name":  "",
				"email": "not-an-email",
			},
		}

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, body)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Validation failed")

		for _, field := range []string{"listingType", "checkIn", "guests.adults", "guestDetails.name", "guestDetails.email"} {
			s.Contains(w.Body.String(), field)
		}
	})

	s.Run("rejects a past check-in as a range error, not a field violation", func() {
		listingID := dbtest.CreateTestHomestay(s.T(), s.DB, "Past Stay", 100000)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, s.bookingBody(listingID, -3, 2))
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "check-in must be in the future")
	})
}

// =============================================================================
// TestBookingConflicts
// =============================================================================

func (s *BookingSuite) TestBookingConflicts() {
	s.Run("overlapping range is rejected with the offender summary", func() {
		listingID := dbtest.CreateTestHomestay(s.T(), s.DB, "Conflict Homestay", 200000)
		first := s.createBooking(listingID, 10, 15)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, s.bookingBody(listingID, 12, 17))
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "not available")
		s.Contains(w.Body.String(), fmt.Sprintf("%d", first.BookingNumber))
	})

	s.Run("touching endpoints do not conflict", func() {
		listingID := dbtest.CreateTestHomestay(s.T(), s.DB, "Boundary Homestay", 200000)
		s.createBooking(listingID, 10, 15)

		before := s.createBooking(listingID, 7, 10)
		after := s.createBooking(listingID, 15, 18)

		s.Equal("pending", before.Status)
		s.Equal("pending", after.Status)
	})

	s.Run("the same range on a different listing is independent", func() {
		a := dbtest.CreateTestHomestay(s.T(), s.DB, "Homestay A", 200000)
		b := dbtest.CreateTestHomestay(s.T(), s.DB, "Homestay B", 200000)

		s.createBooking(a, 10, 15)
		s.createBooking(b, 10, 15)
	})

	s.Run("concurrent admissions for one range admit exactly one", func() {
		listingID := dbtest.CreateTestHomestay(s.T(), s.DB, "Raceway Homestay", 200000)
		body := s.bookingBody(listingID, 20, 25)

		const attempts = 10
		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, body)
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		var admitted, conflicted int
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				admitted++
			case http.StatusConflict:
				conflicted++
			}
		}
		s.Equal(1, admitted, "exactly one concurrent admission must win")
		s.Equal(attempts-1, conflicted)
	})
}

// =============================================================================
// TestBookingLifecycle
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("cancel reports the full refund and frees the interval", func() {
		listingID := dbtest.CreateTestHomestay(s.T(), s.DB, "Refund Homestay", 200000)
		created := s.createBooking(listingID, 10, 15)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			bookingsURL+"/"+created.ID.String()+"/cancel", map[string]any{"reason": "change of plans"})

		var cancelled response.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &cancelled)
		s.Equal("cancelled", cancelled.Status)
		s.Equal(created.TotalPriceCents, cancelled.RefundAmountCents)
		s.Equal("pending", cancelled.RefundStatus)

		// the interval is available again
		s.createBooking(listingID, 10, 15)
	})

	s.Run("cancelling twice is already cancelled", func() {
		listingID := dbtest.CreateTestHomestay(s.T(), s.DB, "Twice Homestay", 200000)
		created := s.createBooking(listingID, 10, 15)
		url := bookingsURL + "/" + created.ID.String() + "/cancel"

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, map[string]any{"reason": "first"})
		require.Equal(s.T(), http.StatusOK, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, map[string]any{"reason": "second"})
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "booking is already cancelled")
	})

	s.Run("confirm then complete then refuse cancellation", func() {
		listingID := dbtest.CreateTestHomestay(s.T(), s.DB, "Lifecycle Homestay", 200000)
		created := s.createBooking(listingID, 10, 15)
		base := bookingsURL + "/" + created.ID.String()

		var confirmed response.BookingResponse
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, base+"/confirm", nil)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &confirmed)
		s.Equal("confirmed", confirmed.Status)

		var completed response.BookingResponse
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, base+"/complete", nil)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &completed)
		s.Equal("completed", completed.Status)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, base+"/cancel", map[string]any{"reason": "too late"})
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "cannot cancel a completed booking")
	})

	s.Run("completing a pending booking is refused", func() {
		listingID := dbtest.CreateTestHomestay(s.T(), s.DB, "Pending Homestay", 200000)
		created := s.createBooking(listingID, 10, 15)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			bookingsURL+"/"+created.ID.String()+"/complete", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "only a confirmed booking can be completed")
	})
}

// =============================================================================
// TestGetAndListBookings
// =============================================================================

func (s *BookingSuite) TestGetAndListBookings() {
	s.Run("get by id returns the stored view", func() {
		listingID := dbtest.CreateTestHomestay(s.T(), s.DB, "Lookup Homestay", 200000)
		created := s.createBooking(listingID, 10, 15)

		var fetched response.BookingResponse
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &fetched)

		diff := cmp.Diff(created, fetched, cmpopts.EquateApproxTime(time.Second))
		s.Empty(diff, "created and fetched views should match")
	})

	s.Run("unknown id is 404", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/"+uuid.NewString(), nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})

	s.Run("list filters by status and reports the total", func() {
		listingID := dbtest.CreateTestHomestay(s.T(), s.DB, "List Homestay", 200000)
		first := s.createBooking(listingID, 10, 12)
		s.createBooking(listingID, 12, 14)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			bookingsURL+"/"+first.ID.String()+"/cancel", map[string]any{"reason": "filter me out"})
		require.Equal(s.T(), http.StatusOK, w.Code)

		var page response.BookingListResponse
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"?status=pending", nil)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &page)
		s.Equal(int64(1), page.TotalCount)
		s.Require().Len(page.Items, 1)
		s.Equal("pending", page.Items[0].Status)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"?status=bogus", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid status filter")
	})

	s.Run("pagination clamps and pages", func() {
		listingID := dbtest.CreateTestHomestay(s.T(), s.DB, "Paging Homestay", 200000)
		for i := range 5 {
			s.createBooking(listingID, 10+i*2, 11+i*2)
		}

		var page response.BookingListResponse
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"?page=2&pageSize=2", nil)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &page)
		s.Equal(int64(5), page.TotalCount)
		s.Len(page.Items, 2)
		s.Equal(2, page.Page)
		s.Equal(2, page.PageSize)
	})
}
