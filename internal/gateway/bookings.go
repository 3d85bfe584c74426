package gateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/voyagedesk/voyagedesk/internal/apiclient"
	"github.com/voyagedesk/voyagedesk/internal/domain"
)

type Bookings struct {
	client *apiclient.Client
}

func NewBookings(client *apiclient.Client) *Bookings {
	return &Bookings{client: client}
}

// BookingCreate is the submitted payload for a new booking. Exactly one
// of HotelID/FlightID is non-nil; the other is serialized as an explicit
// null, which the backend contract requires. TotalPrice arrives already
// derived from the selected hotel or flight.
type BookingCreate struct {
	UserID        uuid.UUID  `json:"userId"`
	DestinationID uuid.UUID  `json:"destinationId"`
	HotelID       *uuid.UUID `json:"hotelId"`
	FlightID      *uuid.UUID `json:"flightId"`
	TotalPrice    float64    `json:"totalPrice"`
}

func (g *Bookings) List(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	if err := g.client.Get(ctx, "/api/bookings", &out, "Failed to fetch bookings"); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Bookings) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	var out []domain.Booking
	if err := g.client.Get(ctx, "/api/bookings/user/"+userID.String(), &out, "Failed to fetch bookings for user"); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Bookings) Get(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	var out domain.Booking
	if err := g.client.Get(ctx, "/api/bookings/"+id.String(), &out, "Failed to fetch booking"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *Bookings) Create(ctx context.Context, create BookingCreate) (*domain.Booking, error) {
	var out domain.Booking
	if err := g.client.Post(ctx, "/api/bookings", create, &out, "Failed to create booking"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *Bookings) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (*domain.Booking, error) {
	payload := struct {
		Status domain.BookingStatus `json:"status"`
	}{Status: status}

	var out domain.Booking
	if err := g.client.Put(ctx, "/api/bookings/"+id.String(), payload, &out, "Failed to update booking"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *Bookings) Delete(ctx context.Context, id uuid.UUID) error {
	return g.client.Delete(ctx, "/api/bookings/"+id.String(), "Failed to delete booking")
}
