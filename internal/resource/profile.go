package resource

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/voyagedesk/voyagedesk/internal/domain"
	"github.com/voyagedesk/voyagedesk/internal/validate"
)

// ProfileGateway is the slice of the auth endpoints the profile view
// needs.
type ProfileGateway interface {
	Profile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, update domain.ProfileUpdate) (*domain.User, error)
}

// identityRefresher lets a successful profile update refresh the session
// store's persisted display identity.
type identityRefresher interface {
	RefreshIdentity(username string) error
}

type Profile struct {
	gw      ProfileGateway
	session identityRefresher

	Detail   *Query[*domain.User]
	Mutation *Mutation[*domain.User]
}

func NewProfile(gw ProfileGateway, session identityRefresher) *Profile {
	return &Profile{
		gw:       gw,
		session:  session,
		Detail:   NewQuery(WithValidate(requireID[*domain.User](func(u *domain.User) uuid.UUID { return u.ID }))),
		Mutation: NewMutation[*domain.User](),
	}
}

func (r *Profile) Fetch(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return r.Detail.Fetch(ctx, func(ctx context.Context) (*domain.User, error) {
		return r.gw.Profile(ctx, userID)
	})
}

func (r *Profile) Update(ctx context.Context, userID uuid.UUID, update domain.ProfileUpdate) (*domain.User, error) {
	if err := validate.ProfileUpdate(update); err != nil {
		return nil, err
	}
	user, err := r.Mutation.Run(ctx, func(ctx context.Context) (*domain.User, error) {
		return r.gw.UpdateProfile(ctx, userID, update)
	})
	if err != nil {
		return nil, err
	}
	if r.session != nil {
		// Best effort: the backend already accepted the update, so a
		// failure here only leaves a stale display name until the next
		// login. Surface it in the log rather than failing the update.
		if err := r.session.RefreshIdentity(user.Username); err != nil {
			log.Printf("refresh session identity: %v", err)
		}
	}
	return user, nil
}
