package listing

import (
	"errors"

	"github.com/google/uuid"
)

var ErrUnknownType = errors.New("unknown listing type")

// Type identifies which marketplace store a booking refers to.
type Type string

const (
	TypeHomestay Type = "homestay"
	TypeGuide    Type = "guide"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeHomestay, TypeGuide:
		return true
	default:
		return false
	}
}

func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrUnknownType
	}
	return t, nil
}

// Snapshot is the read-only view of a listing the booking core consumes:
// a display title and the nightly rate stored on the listing.
type Snapshot struct {
	ID                uuid.UUID
	Type              Type
	Title             string
	PricePerNightCent int64
}
