// Package validate holds the client-side checks that run before any
// request is attempted. A failure here never reaches the network layer.
package validate

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/voyagedesk/voyagedesk/internal/domain"
)

// Error is a validation failure tied to the form field that caused it.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func fail(field, message string) error {
	return &Error{Field: field, Message: message}
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

const minPasswordLength = 6

func Email(email string) error {
	if !emailPattern.MatchString(email) {
		return fail("email", "A valid email address is required")
	}
	return nil
}

func Password(password string) error {
	if len(password) < minPasswordLength {
		return fail("password", fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	}
	return nil
}

func Credentials(c domain.Credentials) error {
	if strings.TrimSpace(c.Username) == "" {
		return fail("username", "Username is required")
	}
	if c.Password == "" {
		return fail("password", "Password is required")
	}
	return nil
}

// Registration checks a new-account form. confirm is the repeated
// password field; mismatches are reported against it.
func Registration(r domain.Registration, confirm string) error {
	if strings.TrimSpace(r.Username) == "" {
		return fail("username", "Username is required")
	}
	if err := Email(r.Email); err != nil {
		return err
	}
	if err := Password(r.Password); err != nil {
		return err
	}
	if r.Password != confirm {
		return fail("confirmPassword", "Passwords do not match")
	}
	return nil
}

func Destination(d domain.Destination) error {
	if strings.TrimSpace(d.Name) == "" {
		return fail("name", "Destination name is required")
	}
	if strings.TrimSpace(d.Country) == "" {
		return fail("country", "Country is required")
	}
	return nil
}

func Hotel(h domain.Hotel) error {
	if strings.TrimSpace(h.Name) == "" {
		return fail("name", "Hotel name is required")
	}
	if h.DestinationID == uuid.Nil {
		return fail("destinationId", "Destination is required")
	}
	if h.PricePerNight <= 0 {
		return fail("pricePerNight", "Price per night must be greater than zero")
	}
	if h.Rating < 0 || h.Rating > 5 {
		return fail("rating", "Rating must be between 0 and 5")
	}
	if halves := h.Rating * 2; halves != math.Trunc(halves) {
		return fail("rating", "Rating must be in steps of 0.5")
	}
	return nil
}

func Flight(f domain.Flight) error {
	if strings.TrimSpace(f.Airline) == "" {
		return fail("airline", "Airline is required")
	}
	if f.DepartureDestinationID == uuid.Nil {
		return fail("departureDestinationId", "Departure destination is required")
	}
	if f.ArrivalDestinationID == uuid.Nil {
		return fail("arrivalDestinationId", "Arrival destination is required")
	}
	if f.ArrivalDestinationID == f.DepartureDestinationID {
		return fail("arrivalDestinationId", "Arrival destination must differ from departure")
	}
	if f.DepartureTime.IsZero() || f.ArrivalTime.IsZero() {
		return fail("departureTime", "Departure and arrival times are required")
	}
	if !f.ArrivalTime.After(f.DepartureTime) {
		return fail("arrivalTime", "Arrival time must be after departure time")
	}
	if f.Price <= 0 {
		return fail("price", "Price must be greater than zero")
	}
	return nil
}

// BookingDraft enforces the hotel/flight exclusive-or on the create path:
// exactly one of the two references must be set, never both, never neither.
func BookingDraft(d domain.BookingDraft) error {
	if d.UserID == uuid.Nil {
		return fail("userId", "User is required")
	}
	if d.DestinationID == uuid.Nil {
		return fail("destinationId", "Destination is required")
	}
	switch d.Type {
	case domain.BookingTypeHotel:
		if d.HotelID == nil {
			return fail("hotelId", "A hotel must be selected for a hotel booking")
		}
		if d.FlightID != nil {
			return fail("flightId", "A hotel booking cannot reference a flight")
		}
	case domain.BookingTypeFlight:
		if d.FlightID == nil {
			return fail("flightId", "A flight must be selected for a flight booking")
		}
		if d.HotelID != nil {
			return fail("hotelId", "A flight booking cannot reference a hotel")
		}
	default:
		return fail("bookingType", "Booking type must be hotel or flight")
	}
	return nil
}

func Budget(b domain.Budget) error {
	if b.Amount <= 0 {
		return fail("amount", "Invalid amount")
	}
	if b.StartDate.IsZero() || b.EndDate.IsZero() || b.StartDate.After(b.EndDate) {
		return fail("endDate", "Invalid date range")
	}
	return nil
}

func ProfileUpdate(p domain.ProfileUpdate) error {
	if err := Email(p.Email); err != nil {
		return err
	}
	if strings.TrimSpace(p.FullName) == "" {
		return fail("fullName", "Full name is required")
	}
	return nil
}
