// Package gateway talks to the booking backend's REST endpoints, one
// gateway per resource. Gateways carry the per-operation fallback error
// messages and translate between domain records and the wire contract;
// request lifecycle state lives one layer up, in the resource package.
package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/voyagedesk/voyagedesk/internal/apiclient"
	"github.com/voyagedesk/voyagedesk/internal/domain"
)

type Auth struct {
	client *apiclient.Client
}

func NewAuth(client *apiclient.Client) *Auth {
	return &Auth{client: client}
}

// loginResponse is the backend's login payload. Expiry may be absent;
// the session layer falls back to the token's exp claim.
type loginResponse struct {
	Token    string      `json:"token"`
	UserID   uuid.UUID   `json:"userId"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
	Expiry   time.Time   `json:"expiry"`
}

func (g *Auth) Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	var resp loginResponse
	if err := g.client.Post(ctx, "/api/User/login", creds, &resp, "Login failed"); err != nil {
		return nil, err
	}
	return &domain.Session{
		UserID:   resp.UserID,
		Username: resp.Username,
		Role:     resp.Role,
		Token:    resp.Token,
		Expiry:   resp.Expiry,
	}, nil
}

func (g *Auth) Register(ctx context.Context, reg domain.Registration) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := g.client.Post(ctx, "/api/User/register", reg, &resp, "Registration failed"); err != nil {
		return "", err
	}
	if resp.Message == "" {
		resp.Message = "User registered successfully"
	}
	return resp.Message, nil
}

func (g *Auth) Profile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	var user domain.User
	if err := g.client.Get(ctx, "/api/User/"+userID.String(), &user, "Failed to fetch user profile"); err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *Auth) UpdateProfile(ctx context.Context, userID uuid.UUID, update domain.ProfileUpdate) (*domain.User, error) {
	var user domain.User
	if err := g.client.Put(ctx, "/api/User/"+userID.String(), update, &user, "Failed to update profile"); err != nil {
		return nil, err
	}
	return &user, nil
}
