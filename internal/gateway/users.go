package gateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/voyagedesk/voyagedesk/internal/apiclient"
	"github.com/voyagedesk/voyagedesk/internal/domain"
)

// Users is the admin-facing account gateway. There is no create here:
// accounts come into existence through registration, and passwords are
// write-only on that path.
type Users struct {
	client *apiclient.Client
}

func NewUsers(client *apiclient.Client) *Users {
	return &Users{client: client}
}

func (g *Users) List(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := g.client.Get(ctx, "/api/User", &out, "Failed to fetch users"); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Users) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var out domain.User
	if err := g.client.Get(ctx, "/api/User/"+id.String(), &out, "Failed to fetch user"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserUpdate carries the admin-editable account fields. Username is
// immutable and therefore absent.
type UserUpdate struct {
	Email    string      `json:"email"`
	FullName string      `json:"fullName"`
	Role     domain.Role `json:"role"`
}

func (g *Users) Update(ctx context.Context, id uuid.UUID, update UserUpdate) (*domain.User, error) {
	var out domain.User
	if err := g.client.Put(ctx, "/api/User/"+id.String(), update, &out, "Failed to update user"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *Users) Delete(ctx context.Context, id uuid.UUID) error {
	return g.client.Delete(ctx, "/api/User/"+id.String(), "Failed to delete user")
}
