package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/voyagedesk/voyagedesk/internal/authz"
	"github.com/voyagedesk/voyagedesk/internal/config"
)

func testAppConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		APIBaseURL:     "http://localhost:7060",
		RequestTimeout: 30 * time.Second,
		StateFile:      filepath.Join(t.TempDir(), "state.json"),
	}
}

func TestNewAppWiring(t *testing.T) {
	a, err := newApp(testAppConfig(t))
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}

	if a.sessions == nil || a.gate == nil || a.client == nil {
		t.Fatal("core collaborators not wired")
	}
	if a.destinations == nil || a.hotels == nil || a.flights == nil ||
		a.bookings == nil || a.users == nil || a.profile == nil || a.budgets == nil {
		t.Fatal("resource controllers not wired")
	}
	if a.dashboard == nil || a.dashboard.Bookings != a.bookings {
		t.Fatal("dashboard not wired to the shared controllers")
	}

	// A fresh state file means no session: the gate must bounce
	// protected routes and the store must supply no bearer token.
	if a.sessions.IsAuthenticated() {
		t.Fatal("fresh app should be anonymous")
	}
	if got := a.gate.Admit(authz.DashboardRoute); got != authz.RedirectLogin {
		t.Fatalf("Admit(dashboard) = %v, want RedirectLogin", got)
	}
	if got := a.gate.Admit(authz.LoginRoute); got != authz.Allow {
		t.Fatalf("Admit(login) = %v, want Allow", got)
	}
	if a.sessions.Token() != "" {
		t.Fatal("anonymous store should yield no token")
	}
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	a, err := newApp(testAppConfig(t))
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	if err := a.run(context.Background(), "teleport", nil); err == nil {
		t.Fatal("unknown command should error")
	}
}
