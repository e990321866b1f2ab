package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrCheckInNotFuture   = errors.New("check-in must be in the future")
	ErrCheckOutNotAfter   = errors.New("check-out must be after check-in")
	ErrNoAdults           = errors.New("at least one adult is required")
	ErrNegativeGuestCount = errors.New("guest counts cannot be negative")
	ErrEmptyGuestName     = errors.New("guest name cannot be empty")
	ErrEmptyGuestEmail    = errors.New("guest email cannot be empty")
)

// StayRange is a half-open [checkIn, checkOut) interval. Two stays where one
// checks out the day the other checks in do not overlap.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut, now time.Time) (StayRange, error) {
	if !checkIn.After(now) {
		return StayRange{}, ErrCheckInNotFuture
	}
	if !checkOut.After(checkIn) {
		return StayRange{}, ErrCheckOutNotAfter
	}
	return StayRange{checkIn: checkIn, checkOut: checkOut}, nil
}

// ReconstructStayRange rebuilds a stored range without the creation-time
// checks; past check-ins are legal on persisted bookings.
func ReconstructStayRange(checkIn, checkOut time.Time) StayRange {
	return StayRange{checkIn: checkIn, checkOut: checkOut}
}

func (s StayRange) CheckIn() time.Time {
	return s.checkIn
}

func (s StayRange) CheckOut() time.Time {
	return s.checkOut
}

// Overlaps applies the open-interval test: [a,b) and [c,d) conflict
// iff a < d && b > c.
func (s StayRange) Overlaps(other StayRange) bool {
	return s.checkIn.Before(other.checkOut) && s.checkOut.After(other.checkIn)
}

// Nights counts the days a stay occupies, rounding a partial final day up.
// A sub-24h stay still blocks the interval, so it prices as one night.
func (s StayRange) Nights() int {
	d := s.checkOut.Sub(s.checkIn)
	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		nights++
	}
	return nights
}

// GuestCount holds per-category headcounts; adults is the only required one.
type GuestCount struct {
	adults   int
	children int
	infants  int
}

func NewGuestCount(adults, children, infants int) (GuestCount, error) {
	if children < 0 || infants < 0 {
		return GuestCount{}, ErrNegativeGuestCount
	}
	if adults < 1 {
		return GuestCount{}, ErrNoAdults
	}
	return GuestCount{adults: adults, children: children, infants: infants}, nil
}

func (g GuestCount) Adults() int   { return g.adults }
func (g GuestCount) Children() int { return g.children }
func (g GuestCount) Infants() int  { return g.infants }

func (g GuestCount) Total() int {
	return g.adults + g.children + g.infants
}

// GuestContact is the booker's contact details; name and email are mandatory.
type GuestContact struct {
	name  string
	email string
	phone string
}

func NewGuestContact(name, email, phone string) (GuestContact, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return GuestContact{}, ErrEmptyGuestName
	}
	if email == "" {
		return GuestContact{}, ErrEmptyGuestEmail
	}
	return GuestContact{name: name, email: email, phone: strings.TrimSpace(phone)}, nil
}

func (c GuestContact) Name() string  { return c.name }
func (c GuestContact) Email() string { return c.email }
func (c GuestContact) Phone() string { return c.phone }

// Money is an amount in the smallest currency unit (paise).
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}
