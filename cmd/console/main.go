// Command console is a terminal front end for the booking backend. It
// keeps a persisted session between invocations, enforces the same
// route-gating rules as the web admin, and exposes the resource
// controllers as subcommands.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/voyagedesk/voyagedesk/internal/apiclient"
	"github.com/voyagedesk/voyagedesk/internal/authz"
	"github.com/voyagedesk/voyagedesk/internal/config"
	"github.com/voyagedesk/voyagedesk/internal/domain"
	"github.com/voyagedesk/voyagedesk/internal/gateway"
	"github.com/voyagedesk/voyagedesk/internal/logging"
	"github.com/voyagedesk/voyagedesk/internal/resource"
	"github.com/voyagedesk/voyagedesk/internal/session"
	"github.com/voyagedesk/voyagedesk/internal/storage"
)

const usage = `usage: console <command> [args]

commands:
  login <username> <password>          authenticate and persist the session
  register <username> <email> <name> <password> <confirm>
  logout                               clear the persisted session
  whoami                               show the current session
  watch                                live countdown until auto-logout
  open <route>                         evaluate route admission
  profile [email] [full name]          show, or update, the account profile
  budget                               show the travel budget
  dashboard                            combined resource summary
  list <destinations|hotels|flights|bookings|users>
  health                               probe the backend
`

type app struct {
	sessions *session.Store
	gate     *authz.Gate
	client   *apiclient.Client

	destinations *resource.Destinations
	hotels       *resource.Hotels
	flights      *resource.Flights
	bookings     *resource.Bookings
	users        *resource.Users
	profile      *resource.Profile
	budgets      *resource.Budgets
	dashboard    *resource.Dashboard
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()

	closeLogs, err := logging.Setup(cfg.LogstashTCPAddr)
	if err != nil {
		log.Fatalf("logging setup: %v", err)
	}
	defer closeLogs()

	a, err := newApp(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := a.run(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp(cfg config.Config) (*app, error) {
	path := cfg.StateFile
	if path == "" {
		var err error
		path, err = storage.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	state, err := storage.NewFileStore(path)
	if err != nil {
		return nil, err
	}

	// The client needs the session store for its token, and the session
	// store needs the client to log in. The closures break the cycle:
	// they capture the variable, which is assigned right below.
	var sessions *session.Store
	client := apiclient.New(cfg.APIBaseURL,
		apiclient.WithTimeout(cfg.RequestTimeout),
		apiclient.WithTokenSource(func() string {
			if sessions == nil {
				return ""
			}
			return sessions.Token()
		}),
		apiclient.WithUnauthorizedHook(func() {
			if sessions != nil {
				sessions.Logout()
			}
		}),
	)
	auth := gateway.NewAuth(client)
	sessions = session.NewStore(state, auth)

	hotelGW := gateway.NewHotels(client)
	flightGW := gateway.NewFlights(client)

	destinations := resource.NewDestinations(gateway.NewDestinations(client))
	hotels := resource.NewHotels(hotelGW)
	flights := resource.NewFlights(flightGW)
	bookings := resource.NewBookings(gateway.NewBookings(client), resource.Prices{Hotels: hotelGW, Flights: flightGW})

	return &app{
		sessions:     sessions,
		gate:         authz.NewGate(sessions),
		client:       client,
		destinations: destinations,
		hotels:       hotels,
		flights:      flights,
		bookings:     bookings,
		users:        resource.NewUsers(gateway.NewUsers(client)),
		profile:      resource.NewProfile(auth, sessions),
		budgets:      resource.NewBudgets(gateway.NewBudgets(client)),
		dashboard: &resource.Dashboard{
			Destinations: destinations,
			Hotels:       hotels,
			Flights:      flights,
			Bookings:     bookings,
		},
	}, nil
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "register":
		return a.register(ctx, args)
	case "logout":
		a.sessions.Logout()
		fmt.Println("logged out")
		return nil
	case "whoami":
		return a.whoami()
	case "watch":
		return a.watch()
	case "open":
		return a.open(args)
	case "profile":
		return a.showProfile(ctx, args)
	case "budget":
		return a.showBudget(ctx)
	case "dashboard":
		return a.showDashboard(ctx)
	case "list":
		return a.list(ctx, args)
	case "health":
		if err := a.client.Health(ctx); err != nil {
			return err
		}
		fmt.Println("backend is healthy")
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: console login <username> <password>")
	}
	sess, err := a.sessions.Login(ctx, domain.Credentials{Username: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s), session expires %s\n",
		sess.Username, sess.Role, sess.Expiry.Local().Format("15:04:05"))
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	if len(args) != 5 {
		return fmt.Errorf("usage: console register <username> <email> <name> <password> <confirm>")
	}
	msg, err := a.sessions.Register(ctx, domain.Registration{
		Username: args[0],
		Email:    args[1],
		FullName: args[2],
		Password: args[3],
	}, args[4])
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

func (a *app) whoami() error {
	sess := a.sessions.Current()
	if sess == nil {
		fmt.Println("not logged in")
		return nil
	}
	fmt.Printf("%s (%s)\nuser id: %s\nexpires: %s (%s remaining)\n",
		sess.Username, sess.Role, sess.UserID,
		sess.Expiry.Local().Format("15:04:05"),
		session.FormatCountdown(sess.Remaining(time.Now())))
	return nil
}

// watch blocks, printing the countdown every second until the session
// expires or is torn down elsewhere.
func (a *app) watch() error {
	if a.sessions.Current() == nil {
		return fmt.Errorf("not logged in")
	}

	done := make(chan struct{})
	a.sessions.OnChange(func(sess *domain.Session) {
		if sess == nil {
			close(done)
		}
	})

	monitor := session.NewMonitor(a.sessions, session.WithCountdownFunc(func(countdown string) {
		fmt.Printf("\rsession expires in %s ", countdown)
	}))
	monitor.Start()
	defer monitor.Stop()

	<-done
	fmt.Println("\nsession ended, logged out")
	return nil
}

func (a *app) open(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: console open <route>")
	}
	decision := a.gate.Admit(args[0])
	fmt.Println(decision)
	return nil
}

func (a *app) showProfile(ctx context.Context, args []string) error {
	sess := a.sessions.Current()
	if sess == nil {
		return fmt.Errorf("not logged in")
	}

	var user *domain.User
	var err error
	switch len(args) {
	case 0:
		user, err = a.profile.Fetch(ctx, sess.UserID)
	case 2:
		user, err = a.profile.Update(ctx, sess.UserID, domain.ProfileUpdate{
			Email:    args[0],
			FullName: args[1],
		})
	default:
		return fmt.Errorf("usage: console profile [email] [full name]")
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s\n%s\n%s\n", user.Username, user.FullName, user.Email)
	return nil
}

func (a *app) showBudget(ctx context.Context) error {
	sess := a.sessions.Current()
	if sess == nil {
		return fmt.Errorf("not logged in")
	}
	budget, err := a.budgets.FetchForUser(ctx, sess.UserID)
	if err != nil {
		return err
	}
	fmt.Printf("%.2f from %s to %s\n",
		budget.Amount,
		budget.StartDate.Format("2006-01-02"),
		budget.EndDate.Format("2006-01-02"))
	return nil
}

func (a *app) showDashboard(ctx context.Context) error {
	summary, err := a.dashboard.Load(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("destinations: %d\nhotels: %d\nflights: %d\nbookings: %d\n",
		len(summary.Destinations), len(summary.Hotels), len(summary.Flights), len(summary.Bookings))
	return nil
}

func (a *app) list(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: console list <destinations|hotels|flights|bookings|users>")
	}
	switch args[0] {
	case "destinations":
		out, err := a.destinations.FetchList(ctx)
		if err != nil {
			return err
		}
		for _, d := range out {
			fmt.Printf("%s  %s, %s\n", d.ID, d.Name, d.Country)
		}
	case "hotels":
		out, err := a.hotels.FetchList(ctx)
		if err != nil {
			return err
		}
		for _, h := range out {
			fmt.Printf("%s  %s  %.2f/night  %.1f*  [%s]\n",
				h.ID, h.Name, h.PricePerNight, h.Rating, h.Amenities.Wire())
		}
	case "flights":
		out, err := a.flights.FetchList(ctx)
		if err != nil {
			return err
		}
		for _, f := range out {
			fmt.Printf("%s  %s  %s -> %s  %.2f\n",
				f.ID, f.Airline,
				f.DepartureTime.Local().Format("Jan 2 15:04"),
				f.ArrivalTime.Local().Format("Jan 2 15:04"),
				f.Price)
		}
	case "bookings":
		out, err := a.fetchBookings(ctx)
		if err != nil {
			return err
		}
		for _, b := range out {
			fmt.Printf("%s  %s  %.2f  %s\n", b.ID, bookingKind(b), b.TotalPrice, b.Status)
		}
	case "users":
		out, err := a.users.FetchList(ctx)
		if err != nil {
			return err
		}
		for _, u := range out {
			fmt.Printf("%s  %s  %s  %s\n", u.ID, u.Username, u.Email, u.Role)
		}
	default:
		return fmt.Errorf("unknown resource %q", args[0])
	}
	return nil
}

// fetchBookings scopes the listing to the caller's own bookings unless
// the session holds the Admin role.
func (a *app) fetchBookings(ctx context.Context) ([]domain.Booking, error) {
	sess := a.sessions.Current()
	if sess == nil {
		return nil, fmt.Errorf("not logged in")
	}
	if sess.Role == domain.RoleAdmin {
		return a.bookings.FetchList(ctx)
	}
	return a.bookings.FetchByUser(ctx, sess.UserID)
}

func bookingKind(b domain.Booking) string {
	if b.HotelID != nil && *b.HotelID != uuid.Nil {
		return "hotel"
	}
	return "flight"
}
