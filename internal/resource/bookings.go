package resource

import (
	"context"

	"github.com/google/uuid"

	"github.com/voyagedesk/voyagedesk/internal/domain"
	"github.com/voyagedesk/voyagedesk/internal/gateway"
	"github.com/voyagedesk/voyagedesk/internal/validate"
)

type BookingGateway interface {
	List(ctx context.Context) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	Create(ctx context.Context, create gateway.BookingCreate) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (*domain.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// priceSource resolves the unit price of the hotel or flight a booking
// draft references, so the submitted total is derived at submission time
// rather than trusted from the form.
type priceSource interface {
	HotelPrice(ctx context.Context, id uuid.UUID) (float64, error)
	FlightPrice(ctx context.Context, id uuid.UUID) (float64, error)
}

type Bookings struct {
	gw     BookingGateway
	prices priceSource

	List     *Query[[]domain.Booking]
	Detail   *Query[*domain.Booking]
	Mutation *Mutation[*domain.Booking]
}

func NewBookings(gw BookingGateway, prices priceSource) *Bookings {
	return &Bookings{
		gw:       gw,
		prices:   prices,
		List:     NewQuery[[]domain.Booking](),
		Detail:   NewQuery(WithValidate(requireID[*domain.Booking](func(b *domain.Booking) uuid.UUID { return b.ID }))),
		Mutation: NewMutation[*domain.Booking](),
	}
}

func (r *Bookings) FetchList(ctx context.Context) ([]domain.Booking, error) {
	return r.List.Fetch(ctx, r.gw.List)
}

func (r *Bookings) FetchByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	return r.List.Fetch(ctx, func(ctx context.Context) ([]domain.Booking, error) {
		return r.gw.ListByUser(ctx, userID)
	})
}

func (r *Bookings) FetchByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return r.Detail.Fetch(ctx, func(ctx context.Context) (*domain.Booking, error) {
		return r.gw.Get(ctx, id)
	})
}

// Create validates the draft's hotel/flight exclusive-or, derives the
// total from the referenced hotel or flight, and submits. The price
// lookup happens inside the mutation so its failure surfaces the same
// way any other request failure does.
func (r *Bookings) Create(ctx context.Context, draft domain.BookingDraft) (*domain.Booking, error) {
	if err := validate.BookingDraft(draft); err != nil {
		return nil, err
	}
	return r.Mutation.Run(ctx, func(ctx context.Context) (*domain.Booking, error) {
		total, err := r.totalFor(ctx, draft)
		if err != nil {
			return nil, err
		}
		return r.gw.Create(ctx, gateway.BookingCreate{
			UserID:        draft.UserID,
			DestinationID: draft.DestinationID,
			HotelID:       draft.HotelID,
			FlightID:      draft.FlightID,
			TotalPrice:    total,
		})
	})
}

func (r *Bookings) totalFor(ctx context.Context, draft domain.BookingDraft) (float64, error) {
	if draft.Type == domain.BookingTypeHotel {
		return r.prices.HotelPrice(ctx, *draft.HotelID)
	}
	return r.prices.FlightPrice(ctx, *draft.FlightID)
}

func (r *Bookings) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (*domain.Booking, error) {
	return r.Mutation.Run(ctx, func(ctx context.Context) (*domain.Booking, error) {
		return r.gw.UpdateStatus(ctx, id, status)
	})
}

func (r *Bookings) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.Mutation.Run(ctx, func(ctx context.Context) (*domain.Booking, error) {
		return nil, r.gw.Delete(ctx, id)
	})
	return err
}

// Prices adapts the hotel and flight gateways into a priceSource.
type Prices struct {
	Hotels  HotelGateway
	Flights FlightGateway
}

func (p Prices) HotelPrice(ctx context.Context, id uuid.UUID) (float64, error) {
	hotel, err := p.Hotels.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return hotel.PricePerNight, nil
}

func (p Prices) FlightPrice(ctx context.Context, id uuid.UUID) (float64, error) {
	flight, err := p.Flights.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return flight.Price, nil
}
