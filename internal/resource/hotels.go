package resource

import (
	"context"

	"github.com/google/uuid"

	"github.com/voyagedesk/voyagedesk/internal/domain"
	"github.com/voyagedesk/voyagedesk/internal/validate"
)

type HotelGateway interface {
	List(ctx context.Context) ([]domain.Hotel, error)
	ListByDestination(ctx context.Context, destinationID uuid.UUID) ([]domain.Hotel, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Hotel, error)
	Create(ctx context.Context, hotel domain.Hotel) (*domain.Hotel, error)
	Update(ctx context.Context, id uuid.UUID, hotel domain.Hotel) (*domain.Hotel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Hotels struct {
	gw HotelGateway

	List     *Query[[]domain.Hotel]
	Detail   *Query[*domain.Hotel]
	Mutation *Mutation[*domain.Hotel]
}

func NewHotels(gw HotelGateway) *Hotels {
	return &Hotels{
		gw:       gw,
		List:     NewQuery[[]domain.Hotel](),
		Detail:   NewQuery(WithValidate(requireID[*domain.Hotel](func(h *domain.Hotel) uuid.UUID { return h.ID }))),
		Mutation: NewMutation[*domain.Hotel](),
	}
}

func (r *Hotels) FetchList(ctx context.Context) ([]domain.Hotel, error) {
	return r.List.Fetch(ctx, r.gw.List)
}

func (r *Hotels) FetchByDestination(ctx context.Context, destinationID uuid.UUID) ([]domain.Hotel, error) {
	return r.List.Fetch(ctx, func(ctx context.Context) ([]domain.Hotel, error) {
		return r.gw.ListByDestination(ctx, destinationID)
	})
}

func (r *Hotels) FetchByID(ctx context.Context, id uuid.UUID) (*domain.Hotel, error) {
	return r.Detail.Fetch(ctx, func(ctx context.Context) (*domain.Hotel, error) {
		return r.gw.Get(ctx, id)
	})
}

func (r *Hotels) Create(ctx context.Context, hotel domain.Hotel) (*domain.Hotel, error) {
	if err := validate.Hotel(hotel); err != nil {
		return nil, err
	}
	return r.Mutation.Run(ctx, func(ctx context.Context) (*domain.Hotel, error) {
		return r.gw.Create(ctx, hotel)
	})
}

func (r *Hotels) Update(ctx context.Context, id uuid.UUID, hotel domain.Hotel) (*domain.Hotel, error) {
	if err := validate.Hotel(hotel); err != nil {
		return nil, err
	}
	return r.Mutation.Run(ctx, func(ctx context.Context) (*domain.Hotel, error) {
		return r.gw.Update(ctx, id, hotel)
	})
}

func (r *Hotels) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.Mutation.Run(ctx, func(ctx context.Context) (*domain.Hotel, error) {
		return nil, r.gw.Delete(ctx, id)
	})
	return err
}
