package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/voyagedesk/voyagedesk/internal/domain"
	"github.com/voyagedesk/voyagedesk/internal/storage"
	"github.com/voyagedesk/voyagedesk/internal/validate"
)

type fakeAuth struct {
	sess       *domain.Session
	loginErr   error
	message    string
	loginCalls int
}

func (f *fakeAuth) Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	// Return a copy so the store's mutations don't leak back.
	sess := *f.sess
	return &sess, nil
}

func (f *fakeAuth) Register(ctx context.Context, reg domain.Registration) (string, error) {
	return f.message, nil
}

func testSession() *domain.Session {
	return &domain.Session{
		UserID:   uuid.New(),
		Username: "traveler",
		Role:     domain.RoleUser,
		Token:    "opaque-token",
		Expiry:   time.Now().Add(30 * time.Minute),
	}
}

func TestLoginPersistsWholeSession(t *testing.T) {
	state := storage.NewMemStore()
	auth := &fakeAuth{sess: testSession()}
	store := NewStore(state, auth)

	var notified []*domain.Session
	store.OnChange(func(s *domain.Session) { notified = append(notified, s) })

	sess, err := store.Login(context.Background(), domain.Credentials{Username: "traveler", Password: "travel123!"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.Username != "traveler" {
		t.Fatalf("Username = %q", sess.Username)
	}

	if _, ok := state.Get(storage.KeyToken); !ok {
		t.Fatal("token not persisted")
	}
	if _, ok := state.Get(storage.KeyUser); !ok {
		t.Fatal("identity not persisted")
	}
	if len(notified) != 1 || notified[0] == nil {
		t.Fatalf("notified = %v, want one non-nil session", notified)
	}
}

func TestLoginValidationSkipsBackend(t *testing.T) {
	auth := &fakeAuth{sess: testSession()}
	store := NewStore(storage.NewMemStore(), auth)

	_, err := store.Login(context.Background(), domain.Credentials{Username: "", Password: "x"})
	var vErr *validate.Error
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if auth.loginCalls != 0 {
		t.Fatalf("backend called %d times for invalid form", auth.loginCalls)
	}
}

func TestLoginFallsBackToTokenExpiry(t *testing.T) {
	exp := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "traveler",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	sess := testSession()
	sess.Token = signed
	sess.Expiry = time.Time{}
	store := NewStore(storage.NewMemStore(), &fakeAuth{sess: sess})

	got, err := store.Login(context.Background(), domain.Credentials{Username: "traveler", Password: "travel123!"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !got.Expiry.Equal(exp) {
		t.Fatalf("Expiry = %v, want %v from exp claim", got.Expiry, exp)
	}
}

func TestLoginIncompleteSessionRejected(t *testing.T) {
	sess := testSession()
	sess.Username = ""
	state := storage.NewMemStore()
	store := NewStore(state, &fakeAuth{sess: sess})

	_, err := store.Login(context.Background(), domain.Credentials{Username: "traveler", Password: "travel123!"})
	if !errors.Is(err, ErrSessionIncomplete) {
		t.Fatalf("err = %v, want ErrSessionIncomplete", err)
	}
	if _, ok := state.Get(storage.KeyToken); ok {
		t.Fatal("incomplete session must not be persisted")
	}
}

func TestCurrentEnforcesExpiryLazily(t *testing.T) {
	now := time.Now()
	clock := &now
	state := storage.NewMemStore()
	sess := testSession()
	sess.Expiry = now.Add(10 * time.Minute)
	store := NewStore(state, &fakeAuth{sess: sess}, WithClock(func() time.Time { return *clock }))

	if _, err := store.Login(context.Background(), domain.Credentials{Username: "traveler", Password: "travel123!"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if store.Current() == nil {
		t.Fatal("session should be live before expiry")
	}

	var tornDown bool
	store.OnChange(func(s *domain.Session) {
		if s == nil {
			tornDown = true
		}
	})

	later := now.Add(11 * time.Minute)
	clock = &later
	if store.Current() != nil {
		t.Fatal("expired session should read as absent")
	}
	if !tornDown {
		t.Fatal("expired session should be torn down on read")
	}
	if _, ok := state.Get(storage.KeyToken); ok {
		t.Fatal("expired session should be cleared from storage")
	}
}

func TestPartialRecordTreatedAsAbsent(t *testing.T) {
	state := storage.NewMemStore()
	store := NewStore(state, &fakeAuth{sess: testSession()})

	// Only the token survives; the identity half is missing.
	if err := state.Set(storage.KeyToken, "orphan"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if store.Current() != nil {
		t.Fatal("partial record should read as absent")
	}
	if _, ok := state.Get(storage.KeyToken); ok {
		t.Fatal("partial record should be torn down")
	}
}

func TestCorruptIdentityTreatedAsAbsent(t *testing.T) {
	state := storage.NewMemStore()
	store := NewStore(state, &fakeAuth{sess: testSession()})

	if err := state.SetMany(map[string]string{
		storage.KeyToken: "opaque-token",
		storage.KeyUser:  "{not json",
	}); err != nil {
		t.Fatalf("SetMany: %v", err)
	}
	if store.Current() != nil {
		t.Fatal("corrupt identity should read as absent")
	}
}

func TestLogoutIdempotent(t *testing.T) {
	state := storage.NewMemStore()
	store := NewStore(state, &fakeAuth{sess: testSession()})

	if _, err := store.Login(context.Background(), domain.Credentials{Username: "traveler", Password: "travel123!"}); err != nil {
		t.Fatalf("Login: %v", err)
	}

	var teardowns int
	store.OnChange(func(s *domain.Session) {
		if s == nil {
			teardowns++
		}
	})

	store.Logout()
	store.Logout()

	if teardowns != 1 {
		t.Fatalf("teardown notified %d times, want 1", teardowns)
	}
	if store.IsAuthenticated() {
		t.Fatal("still authenticated after logout")
	}
}

func TestRoleChecks(t *testing.T) {
	sess := testSession()
	sess.Role = domain.RoleAdmin
	store := NewStore(storage.NewMemStore(), &fakeAuth{sess: sess})

	if store.IsAdmin() {
		t.Fatal("anonymous store should not be admin")
	}
	if _, err := store.Login(context.Background(), domain.Credentials{Username: "admin", Password: "travel123!"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !store.IsAuthenticated() || !store.IsAdmin() || !store.HasRole(domain.RoleAdmin) {
		t.Fatal("admin session should satisfy all role checks")
	}
	if store.HasRole(domain.RoleUser) {
		t.Fatal("admin session should not report the User role")
	}
}

func TestTokenReadsThroughExpiry(t *testing.T) {
	now := time.Now()
	clock := &now
	sess := testSession()
	sess.Expiry = now.Add(time.Minute)
	store := NewStore(storage.NewMemStore(), &fakeAuth{sess: sess}, WithClock(func() time.Time { return *clock }))

	if _, err := store.Login(context.Background(), domain.Credentials{Username: "traveler", Password: "travel123!"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if store.Token() == "" {
		t.Fatal("token should be available while live")
	}

	later := now.Add(2 * time.Minute)
	clock = &later
	if store.Token() != "" {
		t.Fatal("expired session should yield no token")
	}
}

func TestRefreshIdentity(t *testing.T) {
	store := NewStore(storage.NewMemStore(), &fakeAuth{sess: testSession()})
	if _, err := store.Login(context.Background(), domain.Credentials{Username: "traveler", Password: "travel123!"}); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := store.RefreshIdentity("renamed"); err != nil {
		t.Fatalf("RefreshIdentity: %v", err)
	}
	sess := store.Current()
	if sess == nil || sess.Username != "renamed" {
		t.Fatalf("session after refresh = %+v", sess)
	}
}

func TestRegisterNeverCreatesSession(t *testing.T) {
	state := storage.NewMemStore()
	store := NewStore(state, &fakeAuth{sess: testSession(), message: "User registered successfully"})

	msg, err := store.Register(context.Background(), domain.Registration{
		Username: "newbie",
		Email:    "newbie@example.com",
		FullName: "New Traveler",
		Password: "travel123",
	}, "travel123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if msg != "User registered successfully" {
		t.Fatalf("message = %q", msg)
	}
	if store.IsAuthenticated() {
		t.Fatal("registration must not create a session")
	}
}
