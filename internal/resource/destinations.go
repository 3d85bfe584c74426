package resource

import (
	"context"

	"github.com/google/uuid"

	"github.com/voyagedesk/voyagedesk/internal/domain"
	"github.com/voyagedesk/voyagedesk/internal/validate"
)

// DestinationGateway is the slice of the backend the destination
// controllers consume.
type DestinationGateway interface {
	List(ctx context.Context) ([]domain.Destination, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Destination, error)
	Create(ctx context.Context, dest domain.Destination) (*domain.Destination, error)
	Update(ctx context.Context, id uuid.UUID, dest domain.Destination) (*domain.Destination, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Destinations struct {
	gw DestinationGateway

	List     *Query[[]domain.Destination]
	Detail   *Query[*domain.Destination]
	Mutation *Mutation[*domain.Destination]
}

func NewDestinations(gw DestinationGateway) *Destinations {
	return &Destinations{
		gw:       gw,
		List:     NewQuery[[]domain.Destination](),
		Detail:   NewQuery(WithValidate(requireID[*domain.Destination](func(d *domain.Destination) uuid.UUID { return d.ID }))),
		Mutation: NewMutation[*domain.Destination](),
	}
}

func (r *Destinations) FetchList(ctx context.Context) ([]domain.Destination, error) {
	return r.List.Fetch(ctx, r.gw.List)
}

func (r *Destinations) FetchByID(ctx context.Context, id uuid.UUID) (*domain.Destination, error) {
	return r.Detail.Fetch(ctx, func(ctx context.Context) (*domain.Destination, error) {
		return r.gw.Get(ctx, id)
	})
}

// Create validates locally first; a validation failure is returned
// directly to the form and never engages the mutation state machine.
func (r *Destinations) Create(ctx context.Context, dest domain.Destination) (*domain.Destination, error) {
	if err := validate.Destination(dest); err != nil {
		return nil, err
	}
	return r.Mutation.Run(ctx, func(ctx context.Context) (*domain.Destination, error) {
		return r.gw.Create(ctx, dest)
	})
}

func (r *Destinations) Update(ctx context.Context, id uuid.UUID, dest domain.Destination) (*domain.Destination, error) {
	if err := validate.Destination(dest); err != nil {
		return nil, err
	}
	return r.Mutation.Run(ctx, func(ctx context.Context) (*domain.Destination, error) {
		return r.gw.Update(ctx, id, dest)
	})
}

func (r *Destinations) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.Mutation.Run(ctx, func(ctx context.Context) (*domain.Destination, error) {
		return nil, r.gw.Delete(ctx, id)
	})
	return err
}
