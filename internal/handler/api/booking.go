package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/domain/booking"
	reqdto "github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/handler/dto/request"
	resdto "github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/handler/dto/response"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/handler/httperr"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/usecase/commands"
	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Admit a new booking for a homestay or guide listing
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), req.ToInput())
	if err != nil {
		h.abortCreateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

func (h *BookingHandler) abortCreateError(c *gin.Context, err error) {
	var validationErr *commands.ValidationError
	if errors.As(err, &validationErr) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", validationErr.Violations)
		return
	}

	var conflictErr *commands.ConflictError
	if errors.As(err, &conflictErr) {
		httperr.AbortWithError(c, http.StatusConflict, err, "Requested dates are not available", conflictErr)
		return
	}

	switch {
	case errors.Is(err, commands.ErrInvalidDateRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, dateRangeMessage(err), nil)
	case errors.Is(err, commands.ErrBookingConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Requested dates are not available", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List bookings with optional status filter and offset pagination
// @Tags bookings
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, confirmed, cancelled, completed)
// @Param page query int false "Page number (1-based)"
// @Param pageSize query int false "Page size (max 100)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	var filter queries.ListFilter
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	result, err := h.bookingQueries.List(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidStatusFilter) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status filter", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingPage(result))
}

// @Summary Cancel booking
// @Description Cancel a pending or confirmed booking and report the refund owed
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest true "Cancellation reason"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req reqdto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Cancellation reason is required", nil)
		return
	}

	result, err := h.bookingCommands.CancelBooking(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.abortTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}

// @Summary Confirm booking
// @Description Confirm a pending booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/confirm [post]
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	view, err := h.bookingCommands.ConfirmBooking(c.Request.Context(), id)
	if err != nil {
		h.abortTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Complete booking
// @Description Mark a confirmed booking as completed
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/complete [post]
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	view, err := h.bookingCommands.CompleteBooking(c.Request.Context(), id)
	if err != nil {
		h.abortTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) bookingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *BookingHandler) abortTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, commands.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, transitionMessage(err), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// transitionMessage surfaces the specific guard that refused the transition;
// "already cancelled" and "cannot cancel a completed booking" are distinct
// user-facing messages by contract.
func transitionMessage(err error) string {
	for _, guard := range []error{
		booking.ErrAlreadyCancelled,
		booking.ErrCancelCompleted,
		booking.ErrAlreadyConfirmed,
		booking.ErrConfirmNotPending,
		booking.ErrAlreadyCompleted,
		booking.ErrCompleteCancelled,
		booking.ErrCompleteNotConfirmed,
	} {
		if errors.Is(err, guard) {
			return guard.Error()
		}
	}
	return "invalid booking state transition"
}

func dateRangeMessage(err error) string {
	switch {
	case errors.Is(err, booking.ErrCheckInNotFuture):
		return booking.ErrCheckInNotFuture.Error()
	case errors.Is(err, booking.ErrCheckOutNotAfter):
		return booking.ErrCheckOutNotAfter.Error()
	default:
		return "invalid date range"
	}
}
