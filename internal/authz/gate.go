// Package authz decides route admission before a protected view renders.
// The decision table is fixed: public-only routes bounce authenticated
// users to the dashboard, protected routes bounce anonymous users to the
// login view, and admin routes additionally bounce non-admins to the
// dashboard.
package authz

import "strings"

// RouteClass groups navigation targets by the session state they demand.
type RouteClass int

const (
	// PublicOnly routes (login, register) are for anonymous visitors.
	PublicOnly RouteClass = iota
	// Authenticated routes require any logged-in account.
	Authenticated
	// AdminOnly routes require the Admin role.
	AdminOnly
)

// Decision is the gate's verdict for one navigation attempt.
type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectDashboard
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect:" + LoginRoute
	case RedirectDashboard:
		return "redirect:" + DashboardRoute
	}
	return "unknown"
}

// Fixed redirect targets; the gate never remembers an intended
// destination.
const (
	LoginRoute     = "/auth/login"
	DashboardRoute = "/dashboard"
)

// SessionReader is the slice of the session store the gate consumes. It
// is read fresh on every evaluation; decisions are never cached.
type SessionReader interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

type Gate struct {
	sessions SessionReader
	routes   map[string]RouteClass
}

func NewGate(sessions SessionReader) *Gate {
	return &Gate{sessions: sessions, routes: defaultRoutes()}
}

func defaultRoutes() map[string]RouteClass {
	return map[string]RouteClass{
		LoginRoute:       PublicOnly,
		"/auth/register": PublicOnly,
		DashboardRoute:   Authenticated,
		"/bookings":      Authenticated,
		"/flights":       Authenticated,
		"/hotels":        Authenticated,
		"/profile":       Authenticated,
		"/budget":        Authenticated,
		"/destinations":  AdminOnly,
		"/users":         AdminOnly,
	}
}

// Classify maps a route to its class. Unknown routes are treated as
// authenticated-required, the safe default.
func (g *Gate) Classify(route string) RouteClass {
	route = normalize(route)
	if class, ok := g.routes[route]; ok {
		return class
	}
	return Authenticated
}

// Admit evaluates the decision table for a navigation target, reading
// the session state at call time.
func (g *Gate) Admit(route string) Decision {
	return Decide(g.Classify(route), g.sessions.IsAuthenticated(), g.sessions.IsAdmin())
}

// Decide is the pure decision function behind Admit.
func Decide(class RouteClass, authenticated, admin bool) Decision {
	switch class {
	case PublicOnly:
		if authenticated {
			return RedirectDashboard
		}
		return Allow
	case AdminOnly:
		if !authenticated {
			return RedirectLogin
		}
		if !admin {
			return RedirectDashboard
		}
		return Allow
	default:
		if !authenticated {
			return RedirectLogin
		}
		return Allow
	}
}

func normalize(route string) string {
	if route == "" || route == "/" {
		return DashboardRoute
	}
	if len(route) > 1 {
		route = strings.TrimRight(route, "/")
	}
	return route
}
