package resource

import (
	"context"

	"github.com/google/uuid"

	"github.com/voyagedesk/voyagedesk/internal/domain"
	"github.com/voyagedesk/voyagedesk/internal/gateway"
	"github.com/voyagedesk/voyagedesk/internal/validate"
)

type UserGateway interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, update gateway.UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Users struct {
	gw UserGateway

	List     *Query[[]domain.User]
	Detail   *Query[*domain.User]
	Mutation *Mutation[*domain.User]
}

func NewUsers(gw UserGateway) *Users {
	return &Users{
		gw:       gw,
		List:     NewQuery[[]domain.User](),
		Detail:   NewQuery(WithValidate(requireID[*domain.User](func(u *domain.User) uuid.UUID { return u.ID }))),
		Mutation: NewMutation[*domain.User](),
	}
}

func (r *Users) FetchList(ctx context.Context) ([]domain.User, error) {
	return r.List.Fetch(ctx, r.gw.List)
}

func (r *Users) FetchByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.Detail.Fetch(ctx, func(ctx context.Context) (*domain.User, error) {
		return r.gw.Get(ctx, id)
	})
}

func (r *Users) Update(ctx context.Context, id uuid.UUID, update gateway.UserUpdate) (*domain.User, error) {
	if err := validate.Email(update.Email); err != nil {
		return nil, err
	}
	if !update.Role.Valid() {
		return nil, &validate.Error{Field: "role", Message: "Role must be Admin or User"}
	}
	return r.Mutation.Run(ctx, func(ctx context.Context) (*domain.User, error) {
		return r.gw.Update(ctx, id, update)
	})
}

func (r *Users) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.Mutation.Run(ctx, func(ctx context.Context) (*domain.User, error) {
		return nil, r.gw.Delete(ctx, id)
	})
	return err
}
