// Package session is the single source of truth for "who is logged in".
// The record survives restarts through the storage layer and is always
// written or cleared as a whole; no partial session is ever persisted.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/voyagedesk/voyagedesk/internal/domain"
	"github.com/voyagedesk/voyagedesk/internal/storage"
	"github.com/voyagedesk/voyagedesk/internal/validate"
)

var ErrSessionIncomplete = errors.New("login response did not include a complete session")

// Authenticator is the slice of the backend the store needs. The REST
// gateway implements it.
type Authenticator interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error)
	Register(ctx context.Context, reg domain.Registration) (string, error)
}

// Listener observes session changes. It receives the new session after a
// login and nil after a teardown; the router layer uses the nil signal to
// navigate back to the login view without a full reload.
type Listener func(*domain.Session)

type Store struct {
	state storage.Store
	auth  Authenticator
	now   func() time.Time

	mu        sync.Mutex
	notifyMu  sync.Mutex
	listeners []Listener
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source, for expiry tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(state storage.Store, auth Authenticator, opts ...Option) *Store {
	s := &Store{state: state, auth: auth, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange registers a listener for session transitions.
func (s *Store) OnChange(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Store) notify(sess *domain.Session) {
	s.mu.Lock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	// Serialized so listeners never see transitions out of order.
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	for _, fn := range listeners {
		fn(sess)
	}
}

// persistedIdentity is the JSON layout of the "user" storage key.
type persistedIdentity struct {
	UserID   string      `json:"userId"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
	Expiry   time.Time   `json:"expiry"`
}

func (p persistedIdentity) toSession(token string) (*domain.Session, error) {
	id, err := uuid.Parse(p.UserID)
	if err != nil {
		return nil, err
	}
	return &domain.Session{
		UserID:   id,
		Username: p.Username,
		Role:     p.Role,
		Token:    token,
		Expiry:   p.Expiry,
	}, nil
}

// Login authenticates against the backend and persists the resulting
// session atomically. When the backend omits an explicit expiry the
// token's exp claim fills it in.
func (s *Store) Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	if err := validate.Credentials(creds); err != nil {
		return nil, err
	}

	sess, err := s.auth.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	if sess != nil && sess.Expiry.IsZero() {
		if exp, ok := tokenExpiry(sess.Token); ok {
			sess.Expiry = exp
		}
	}
	if !sess.Complete() {
		return nil, ErrSessionIncomplete
	}

	if err := s.persist(sess); err != nil {
		return nil, err
	}
	s.notify(sess)
	return sess, nil
}

// Register forwards a new-account request. It never creates a session;
// the backend requires a subsequent explicit login.
func (s *Store) Register(ctx context.Context, reg domain.Registration, confirmPassword string) (string, error) {
	if err := validate.Registration(reg, confirmPassword); err != nil {
		return "", err
	}
	return s.auth.Register(ctx, reg)
}

func (s *Store) persist(sess *domain.Session) error {
	identity, err := json.Marshal(persistedIdentity{
		UserID:   sess.UserID.String(),
		Username: sess.Username,
		Role:     sess.Role,
		Expiry:   sess.Expiry,
	})
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SetMany(map[string]string{
		storage.KeyToken: sess.Token,
		storage.KeyUser:  string(identity),
	})
}

// Logout clears the persisted session. It always succeeds and is
// idempotent: tearing down an already-absent session notifies nobody.
func (s *Store) Logout() {
	s.mu.Lock()
	_, hadToken := s.state.Get(storage.KeyToken)
	_, hadUser := s.state.Get(storage.KeyUser)
	if hadToken || hadUser {
		_ = s.state.Delete(storage.KeyToken, storage.KeyUser)
	}
	s.mu.Unlock()

	if hadToken || hadUser {
		s.notify(nil)
	}
}

// Current reads the persisted session. A record whose expiry has passed
// is treated as absent and torn down on the spot (lazy enforcement), as
// is any record that is only partially present.
func (s *Store) Current() *domain.Session {
	sess := s.read()
	if sess == nil {
		return nil
	}
	if sess.ExpiredAt(s.now()) {
		s.Logout()
		return nil
	}
	return sess
}

func (s *Store) read() *domain.Session {
	s.mu.Lock()
	token, okToken := s.state.Get(storage.KeyToken)
	rawUser, okUser := s.state.Get(storage.KeyUser)
	s.mu.Unlock()

	if !okToken || !okUser {
		if okToken || okUser {
			s.Logout()
		}
		return nil
	}

	var identity persistedIdentity
	if err := json.Unmarshal([]byte(rawUser), &identity); err != nil {
		s.Logout()
		return nil
	}
	sess, err := identity.toSession(token)
	if err != nil || !sess.Complete() {
		s.Logout()
		return nil
	}
	return sess
}

// Token returns the bearer credential for the current session, enforcing
// expiry the same way Current does. The HTTP adapter uses this as its
// token source.
func (s *Store) Token() string {
	sess := s.Current()
	if sess == nil {
		return ""
	}
	return sess.Token
}

func (s *Store) IsAuthenticated() bool {
	return s.Current() != nil
}

func (s *Store) HasRole(role domain.Role) bool {
	sess := s.Current()
	return sess != nil && sess.Role == role
}

func (s *Store) IsAdmin() bool {
	return s.HasRole(domain.RoleAdmin)
}

// RefreshIdentity updates the persisted display identity after a profile
// change, keeping credential and expiry untouched.
func (s *Store) RefreshIdentity(username string) error {
	sess := s.Current()
	if sess == nil {
		return nil
	}
	sess.Username = username
	return s.persist(sess)
}
