package gateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/voyagedesk/voyagedesk/internal/apiclient"
	"github.com/voyagedesk/voyagedesk/internal/domain"
)

type Hotels struct {
	client *apiclient.Client
}

func NewHotels(client *apiclient.Client) *Hotels {
	return &Hotels{client: client}
}

// hotelPayload is the wire form of a hotel. The backend stores amenities
// as one comma-joined string; the domain carries them as a list, so the
// join and split live here and nowhere else.
type hotelPayload struct {
	ID            uuid.UUID `json:"hotelId"`
	Name          string    `json:"name"`
	DestinationID uuid.UUID `json:"destinationId"`
	PricePerNight float64   `json:"pricePerNight"`
	Rating        float64   `json:"rating"`
	Amenities     string    `json:"amenities"`
}

func toHotelPayload(h domain.Hotel) hotelPayload {
	return hotelPayload{
		ID:            h.ID,
		Name:          h.Name,
		DestinationID: h.DestinationID,
		PricePerNight: h.PricePerNight,
		Rating:        h.Rating,
		Amenities:     h.Amenities.Wire(),
	}
}

func (p hotelPayload) toDomain() domain.Hotel {
	return domain.Hotel{
		ID:            p.ID,
		Name:          p.Name,
		DestinationID: p.DestinationID,
		PricePerNight: p.PricePerNight,
		Rating:        p.Rating,
		Amenities:     domain.ParseAmenities(p.Amenities),
	}
}

func hotelsToDomain(payloads []hotelPayload) []domain.Hotel {
	out := make([]domain.Hotel, len(payloads))
	for i, p := range payloads {
		out[i] = p.toDomain()
	}
	return out
}

func (g *Hotels) List(ctx context.Context) ([]domain.Hotel, error) {
	var out []hotelPayload
	if err := g.client.Get(ctx, "/api/hotels", &out, "Failed to fetch hotels"); err != nil {
		return nil, err
	}
	return hotelsToDomain(out), nil
}

func (g *Hotels) ListByDestination(ctx context.Context, destinationID uuid.UUID) ([]domain.Hotel, error) {
	var out []hotelPayload
	if err := g.client.Get(ctx, "/api/hotels/destination/"+destinationID.String(), &out, "Failed to fetch hotels for destination"); err != nil {
		return nil, err
	}
	return hotelsToDomain(out), nil
}

func (g *Hotels) Get(ctx context.Context, id uuid.UUID) (*domain.Hotel, error) {
	var out hotelPayload
	if err := g.client.Get(ctx, "/api/hotels/"+id.String(), &out, "Failed to fetch hotel"); err != nil {
		return nil, err
	}
	hotel := out.toDomain()
	return &hotel, nil
}

func (g *Hotels) Create(ctx context.Context, hotel domain.Hotel) (*domain.Hotel, error) {
	var out hotelPayload
	if err := g.client.Post(ctx, "/api/hotels", toHotelPayload(hotel), &out, "Failed to create hotel"); err != nil {
		return nil, err
	}
	created := out.toDomain()
	return &created, nil
}

func (g *Hotels) Update(ctx context.Context, id uuid.UUID, hotel domain.Hotel) (*domain.Hotel, error) {
	var out hotelPayload
	if err := g.client.Put(ctx, "/api/hotels/"+id.String(), toHotelPayload(hotel), &out, "Failed to update hotel"); err != nil {
		return nil, err
	}
	updated := out.toDomain()
	return &updated, nil
}

func (g *Hotels) Delete(ctx context.Context, id uuid.UUID) error {
	return g.client.Delete(ctx, "/api/hotels/"+id.String(), "Failed to delete hotel")
}
