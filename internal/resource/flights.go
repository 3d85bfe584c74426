package resource

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/voyagedesk/voyagedesk/internal/domain"
	"github.com/voyagedesk/voyagedesk/internal/validate"
)

type FlightGateway interface {
	List(ctx context.Context) ([]domain.Flight, error)
	ListByDestination(ctx context.Context, destinationID uuid.UUID) ([]domain.Flight, error)
	Search(ctx context.Context, departureID, arrivalID uuid.UUID, date time.Time) ([]domain.Flight, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Flight, error)
	Create(ctx context.Context, flight domain.Flight) (*domain.Flight, error)
	Update(ctx context.Context, id uuid.UUID, flight domain.Flight) (*domain.Flight, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Flights struct {
	gw FlightGateway

	List     *Query[[]domain.Flight]
	Detail   *Query[*domain.Flight]
	Mutation *Mutation[*domain.Flight]
}

func NewFlights(gw FlightGateway) *Flights {
	return &Flights{
		gw:       gw,
		List:     NewQuery[[]domain.Flight](),
		Detail:   NewQuery(WithValidate(requireID[*domain.Flight](func(f *domain.Flight) uuid.UUID { return f.ID }))),
		Mutation: NewMutation[*domain.Flight](),
	}
}

func (r *Flights) FetchList(ctx context.Context) ([]domain.Flight, error) {
	return r.List.Fetch(ctx, r.gw.List)
}

func (r *Flights) FetchByDestination(ctx context.Context, destinationID uuid.UUID) ([]domain.Flight, error) {
	return r.List.Fetch(ctx, func(ctx context.Context) ([]domain.Flight, error) {
		return r.gw.ListByDestination(ctx, destinationID)
	})
}

// Search refreshes the list state with flights matching the criteria.
func (r *Flights) Search(ctx context.Context, departureID, arrivalID uuid.UUID, date time.Time) ([]domain.Flight, error) {
	return r.List.Fetch(ctx, func(ctx context.Context) ([]domain.Flight, error) {
		return r.gw.Search(ctx, departureID, arrivalID, date)
	})
}

func (r *Flights) FetchByID(ctx context.Context, id uuid.UUID) (*domain.Flight, error) {
	return r.Detail.Fetch(ctx, func(ctx context.Context) (*domain.Flight, error) {
		return r.gw.Get(ctx, id)
	})
}

func (r *Flights) Create(ctx context.Context, flight domain.Flight) (*domain.Flight, error) {
	if err := validate.Flight(flight); err != nil {
		return nil, err
	}
	return r.Mutation.Run(ctx, func(ctx context.Context) (*domain.Flight, error) {
		return r.gw.Create(ctx, flight)
	})
}

func (r *Flights) Update(ctx context.Context, id uuid.UUID, flight domain.Flight) (*domain.Flight, error) {
	if err := validate.Flight(flight); err != nil {
		return nil, err
	}
	return r.Mutation.Run(ctx, func(ctx context.Context) (*domain.Flight, error) {
		return r.gw.Update(ctx, id, flight)
	})
}

func (r *Flights) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.Mutation.Run(ctx, func(ctx context.Context) (*domain.Flight, error) {
		return nil, r.gw.Delete(ctx, id)
	})
	return err
}
