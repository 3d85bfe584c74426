package domain

import "github.com/google/uuid"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// BookingType selects which kind of reservation a draft carries.
type BookingType string

const (
	BookingTypeHotel  BookingType = "hotel"
	BookingTypeFlight BookingType = "flight"
)

// BookingDraft is the client-side form state for a new booking. TotalPrice
// is intentionally absent: it is derived from the selected hotel or flight
// when the draft is submitted.
type BookingDraft struct {
	UserID        uuid.UUID
	DestinationID uuid.UUID
	Type          BookingType
	HotelID       *uuid.UUID
	FlightID      *uuid.UUID
}

// Booking references exactly one of HotelID or FlightID; the create path
// rejects anything else. TotalPrice is derived from the selected hotel or
// flight at submission time and is never independently editable.
type Booking struct {
	ID            uuid.UUID     `json:"bookingId"`
	UserID        uuid.UUID     `json:"userId"`
	DestinationID uuid.UUID     `json:"destinationId"`
	HotelID       *uuid.UUID    `json:"hotelId"`
	FlightID      *uuid.UUID    `json:"flightId"`
	TotalPrice    float64       `json:"totalPrice"`
	Status        BookingStatus `json:"status"`
}
