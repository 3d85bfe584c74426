package gateway

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/voyagedesk/voyagedesk/internal/apiclient"
	"github.com/voyagedesk/voyagedesk/internal/domain"
)

type Flights struct {
	client *apiclient.Client
}

func NewFlights(client *apiclient.Client) *Flights {
	return &Flights{client: client}
}

func (g *Flights) List(ctx context.Context) ([]domain.Flight, error) {
	var out []domain.Flight
	if err := g.client.Get(ctx, "/api/flights", &out, "Failed to fetch flights"); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Flights) ListByDestination(ctx context.Context, destinationID uuid.UUID) ([]domain.Flight, error) {
	var out []domain.Flight
	if err := g.client.Get(ctx, "/api/flights/destination/"+destinationID.String(), &out, "Failed to fetch flights for destination"); err != nil {
		return nil, err
	}
	return out, nil
}

// Search queries flights by departure, arrival and travel date.
func (g *Flights) Search(ctx context.Context, departureID, arrivalID uuid.UUID, date time.Time) ([]domain.Flight, error) {
	query := url.Values{}
	query.Set("departureId", departureID.String())
	query.Set("arrivalId", arrivalID.String())
	query.Set("date", date.Format("2006-01-02"))

	var out []domain.Flight
	if err := g.client.Get(ctx, "/api/flights/search?"+query.Encode(), &out, "Failed to search flights"); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Flights) Get(ctx context.Context, id uuid.UUID) (*domain.Flight, error) {
	var out domain.Flight
	if err := g.client.Get(ctx, "/api/flights/"+id.String(), &out, "Failed to fetch flight"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *Flights) Create(ctx context.Context, flight domain.Flight) (*domain.Flight, error) {
	var out domain.Flight
	if err := g.client.Post(ctx, "/api/flights", flight, &out, "Failed to create flight"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *Flights) Update(ctx context.Context, id uuid.UUID, flight domain.Flight) (*domain.Flight, error) {
	var out domain.Flight
	if err := g.client.Put(ctx, "/api/flights/"+id.String(), flight, &out, "Failed to update flight"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *Flights) Delete(ctx context.Context, id uuid.UUID) error {
	return g.client.Delete(ctx, "/api/flights/"+id.String(), "Failed to delete flight")
}
