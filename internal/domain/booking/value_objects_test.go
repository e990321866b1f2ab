//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/aditya27you/sih-2025-jharkhand-tourism-backend/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var anchor = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return anchor.AddDate(0, 0, offset)
}

func TestNewStayRange(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		errIs    error
	}{
		{name: "valid future range", checkIn: day(1), checkOut: day(4)},
		{name: "single night", checkIn: day(1), checkOut: day(2)},
		{name: "check-in in the past", checkIn: day(-1), checkOut: day(2), errIs: booking.ErrCheckInNotFuture},
		{name: "check-in exactly now", checkIn: anchor, checkOut: day(2), errIs: booking.ErrCheckInNotFuture},
		{name: "check-out before check-in", checkIn: day(4), checkOut: day(1), errIs: booking.ErrCheckOutNotAfter},
		{name: "zero-length stay", checkIn: day(3), checkOut: day(3), errIs: booking.ErrCheckOutNotAfter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stay, err := booking.NewStayRange(tc.checkIn, tc.checkOut, anchor)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.checkIn, stay.CheckIn())
			assert.Equal(t, tc.checkOut, stay.CheckOut())
		})
	}
}

func TestStayRangeOverlaps(t *testing.T) {
	base := booking.ReconstructStayRange(day(10), day(15))

	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{name: "identical range", checkIn: day(10), checkOut: day(15), want: true},
		{name: "contained range", checkIn: day(11), checkOut: day(13), want: true},
		{name: "containing range", checkIn: day(9), checkOut: day(16), want: true},
		{name: "overlaps left edge", checkIn: day(8), checkOut: day(11), want: true},
		{name: "overlaps right edge", checkIn: day(14), checkOut: day(17), want: true},
		{name: "single shared night", checkIn: day(14), checkOut: day(15), want: true},
		{name: "checkout touches checkin", checkIn: day(5), checkOut: day(10), want: false},
		{name: "checkin touches checkout", checkIn: day(15), checkOut: day(20), want: false},
		{name: "fully before", checkIn: day(1), checkOut: day(5), want: false},
		{name: "fully after", checkIn: day(20), checkOut: day(25), want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other := booking.ReconstructStayRange(tc.checkIn, tc.checkOut)
			assert.Equal(t, tc.want, base.Overlaps(other))
			assert.Equal(t, tc.want, other.Overlaps(base))
		})
	}
}

func TestStayRangeNights(t *testing.T) {
	assert.Equal(t, 1, booking.ReconstructStayRange(day(1), day(2)).Nights())
	assert.Equal(t, 5, booking.ReconstructStayRange(day(10), day(15)).Nights())
	assert.Equal(t, 31, booking.ReconstructStayRange(day(0), day(31)).Nights())

	// Partial days round up so a stay never prices at zero nights.
	evening := day(1).Add(8 * time.Hour)
	nextMorning := day(2).Add(-2 * time.Hour)
	assert.Equal(t, 1, booking.ReconstructStayRange(evening, nextMorning).Nights())
	assert.Equal(t, 4, booking.ReconstructStayRange(day(1), day(4).Add(time.Hour)).Nights())
}

func TestNewGuestCount(t *testing.T) {
	cases := []struct {
		name                      string
		adults, children, infants int
		errIs                     error
		wantTotal                 int
	}{
		{name: "adults only", adults: 2, wantTotal: 2},
		{name: "full party", adults: 2, children: 3, infants: 1, wantTotal: 6},
		{name: "no adults", adults: 0, children: 2, errIs: booking.ErrNoAdults},
		{name: "negative children", adults: 1, children: -1, errIs: booking.ErrNegativeGuestCount},
		{name: "negative infants", adults: 1, infants: -2, errIs: booking.ErrNegativeGuestCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := booking.NewGuestCount(tc.adults, tc.children, tc.infants)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTotal, g.Total())
		})
	}
}

func TestNewGuestContact(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		c, err := booking.NewGuestContact("  Asha Kumari ", " asha@example.com ", "")
		require.NoError(t, err)
		assert.Equal(t, "Asha Kumari", c.Name())
		assert.Equal(t, "asha@example.com", c.Email())
	})

	t.Run("name required", func(t *testing.T) {
		_, err := booking.NewGuestContact("   ", "asha@example.com", "")
		assert.ErrorIs(t, err, booking.ErrEmptyGuestName)
	})

	t.Run("email required", func(t *testing.T) {
		_, err := booking.NewGuestContact("Asha", "", "")
		assert.ErrorIs(t, err, booking.ErrEmptyGuestEmail)
	})
}

func TestCalculatePricing(t *testing.T) {
	stay := booking.ReconstructStayRange(day(1), day(4))
	p := booking.CalculatePricing(150000, stay)

	assert.Equal(t, int64(150000), p.PerNight().Cents())
	assert.Equal(t, 3, p.Nights())
	assert.Equal(t, int64(450000), p.Total().Cents())
	assert.False(t, p.Total().IsZero())

	// A same-day stay charges one night, never zero.
	short := booking.CalculatePricing(150000, booking.ReconstructStayRange(day(1).Add(20*time.Hour), day(2).Add(10*time.Hour)))
	assert.Equal(t, 1, short.Nights())
	assert.Equal(t, int64(150000), short.Total().Cents())
	assert.True(t, booking.NewMoney(0).IsZero())
}
