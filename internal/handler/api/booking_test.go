//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/domain/booking"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/handler/api"
	resdto "github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/handler/dto/response"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/pkg/errs"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/pkg/validator"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/usecase/commands"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/usecase/queries"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/tests/common/builder"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/tests/common/httptest"
	commandsmock "github.com/aditya27you/sih-2025-jharkhand-tourism-backend/tests/mock/commands"
	queriesmock "github.com/aditya27you/sih-2025-jharkhand-tourism-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/bookings", s.handler.CreateBooking)
	s.router.GET("/api/bookings", s.handler.ListBookings)
	s.router.GET("/api/bookings/:id", s.handler.GetBooking)
	s.router.POST("/api/bookings/:id/cancel", s.handler.CancelBooking)
	s.router.POST("/api/bookings/:id/confirm", s.handler.ConfirmBooking)
	s.router.POST("/api/bookings/:id/complete", s.handler.CompleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// CreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/api/bookings"
	b := builder.NewBookingBuilder()

	reqBody := map[string]any{
		"listingType": string(b.ListingType),
		"listingId":   b.ListingID.String(),
		"checkIn":     b.CheckIn.Format(time.RFC3339),
		"checkOut":    b.CheckOut.Format(time.RFC3339),
		"guests": map[string]any{
			"adults":   b.Adults,
			"children": b.Children,
		},
		"guestDetails": map[string]any{
			"name":  b.GuestName,
			"email": b.GuestEmail,
			"phone": b.GuestPhone,
		},
		"pricePerNightCents": b.PricePerNightCent,
	}

	s.Run("created", func() {
		view := &queries.BookingView{ID: uuid.New(), BookingNumber: 1042, Status: "pending"}
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal(int64(1042), resp.BookingNumber)
	})

	s.Run("validation errors return 400 with full violation list", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil, &commands.ValidationError{
			Violations: []validator.FieldViolation{
				{Field: "listingType", Message: "is required"},
				{Field: "guests.adults", Message: "must be at least 1"},
			},
		})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Validation failed")
		s.Contains(w.Body.String(), "guests.adults")
	})

	s.Run("date range error returns 400 with the specific message", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(
			nil, errs.Mark(booking.ErrCheckInNotFuture, commands.ErrInvalidDateRange),
		)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "check-in must be in the future")
	})

	s.Run("conflict returns 409 with offender detail", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil, &commands.ConflictError{
			ListingType:       "homestay",
			ListingID:         b.ListingID,
			RequestedCheckIn:  "2026-03-08",
			RequestedCheckOut: "2026-03-11",
			Conflicting: commands.ConflictingBookingSummary{
				ID:            uuid.New(),
				BookingNumber: 1005,
				CheckIn:       "2026-03-07",
				CheckOut:      "2026-03-11",
			},
		})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "not available")
		s.Contains(w.Body.String(), "2026-03-07")
	})

	s.Run("backstop conflict without detail returns 409", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(
			nil, errs.Mark(errors.New("exclusion violation"), commands.ErrBookingConflict),
		)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "not available")
	})

	s.Run("infrastructure failure returns 500", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(
			nil, errs.Mark(errors.New("connection refused"), commands.ErrDatabaseOperationFailed),
		)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// GetBooking / ListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	id := uuid.New()

	s.Run("found", func() {
		view := &queries.BookingView{ID: id, BookingNumber: 1042}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+id.String(), nil)

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(id, resp.ID)
	})

	s.Run("not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrBookingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})

	s.Run("malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid booking ID")
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("passes filter and pagination through", func() {
		status := "pending"
		page := &queries.BookingPage{
			Items:      []*queries.BookingListItem{{ID: uuid.New(), BookingNumber: 1042, Status: status}},
			TotalCount: 7,
			Page:       2,
			PageSize:   5,
		}
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ListFilter{Status: &status}, 2, 5).Return(page, nil).Do(
			func(_ any, filter queries.ListFilter, _, _ int) {
				s.Require().NotNil(filter.Status)
				s.Equal("pending", *filter.Status)
			},
		)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings?status=pending&page=2&pageSize=5", nil)

		var resp resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(int64(7), resp.TotalCount)
		s.Len(resp.Items, 1)
	})

	s.Run("invalid status filter returns 400", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrInvalidStatusFilter)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings?status=bogus", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid status filter")
	})
}

// ================================================================================
// CancelBooking / ConfirmBooking / CompleteBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	id := uuid.New()
	url := "/api/bookings/" + id.String() + "/cancel"
	reqBody := map[string]any{"reason": "change of plans"}

	s.Run("cancelled with refund report", func() {
		result := &commands.CancelBookingResult{
			ID:                 id,
			BookingNumber:      1042,
			Status:             "cancelled",
			CancellationReason: "change of plans",
			CancelledAt:        time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC),
			RefundAmountCents:  750000,
			RefundStatus:       "pending",
		}
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id, "change of plans").Return(result, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var resp resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(int64(750000), resp.RefundAmountCents)
		s.Equal("pending", resp.RefundStatus)
	})

	s.Run("missing reason returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "reason is required")
	})

	s.Run("not found returns 404", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id, "change of plans").Return(nil, commands.ErrBookingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})

	s.Run("already cancelled is distinct from completed", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id, "change of plans").Return(
			nil, errs.Mark(booking.ErrAlreadyCancelled, commands.ErrInvalidTransition),
		)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "booking is already cancelled")

		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id, "change of plans").Return(
			nil, errs.Mark(booking.ErrCancelCompleted, commands.ErrInvalidTransition),
		)
		w = httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "cannot cancel a completed booking")
	})
}

func (s *BookingHandlerTestSuite) TestConfirmBooking() {
	id := uuid.New()
	url := "/api/bookings/" + id.String() + "/confirm"

	s.Run("confirmed", func() {
		view := &queries.BookingView{ID: id, Status: "confirmed"}
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), id).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("confirmed", resp.Status)
	})

	s.Run("non-pending returns 409", func() {
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), id).Return(
			nil, errs.Mark(booking.ErrConfirmNotPending, commands.ErrInvalidTransition),
		)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "only a pending booking can be confirmed")
	})
}

func (s *BookingHandlerTestSuite) TestCompleteBooking() {
	id := uuid.New()
	url := "/api/bookings/" + id.String() + "/complete"

	s.Run("completed", func() {
		view := &queries.BookingView{ID: id, Status: "completed"}
		s.mockCommands.EXPECT().CompleteBooking(gomock.Any(), id).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("completed", resp.Status)
	})

	s.Run("cancelled booking returns 409", func() {
		s.mockCommands.EXPECT().CompleteBooking(gomock.Any(), id).Return(
			nil, errs.Mark(booking.ErrCompleteCancelled, commands.ErrInvalidTransition),
		)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "cannot complete a cancelled booking")
	})
}
