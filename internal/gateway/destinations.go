package gateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/voyagedesk/voyagedesk/internal/apiclient"
	"github.com/voyagedesk/voyagedesk/internal/domain"
)

type Destinations struct {
	client *apiclient.Client
}

func NewDestinations(client *apiclient.Client) *Destinations {
	return &Destinations{client: client}
}

func (g *Destinations) List(ctx context.Context) ([]domain.Destination, error) {
	var out []domain.Destination
	if err := g.client.Get(ctx, "/api/destinations", &out, "Failed to fetch destinations"); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Destinations) Get(ctx context.Context, id uuid.UUID) (*domain.Destination, error) {
	var out domain.Destination
	if err := g.client.Get(ctx, "/api/destinations/"+id.String(), &out, "Failed to fetch destination"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *Destinations) Create(ctx context.Context, dest domain.Destination) (*domain.Destination, error) {
	var out domain.Destination
	if err := g.client.Post(ctx, "/api/destinations", dest, &out, "Failed to create destination"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *Destinations) Update(ctx context.Context, id uuid.UUID, dest domain.Destination) (*domain.Destination, error) {
	var out domain.Destination
	if err := g.client.Put(ctx, "/api/destinations/"+id.String(), dest, &out, "Failed to update destination"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *Destinations) Delete(ctx context.Context, id uuid.UUID) error {
	return g.client.Delete(ctx, "/api/destinations/"+id.String(), "Failed to delete destination")
}
