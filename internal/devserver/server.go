// Package devserver is an in-memory reference implementation of the
// booking backend's REST contract. It exists so the console client can
// be developed and contract-tested without the real backend; it keeps
// nothing across restarts and is not a production server.
package devserver

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/voyagedesk/voyagedesk/internal/config"
	"github.com/voyagedesk/voyagedesk/internal/domain"
	"github.com/voyagedesk/voyagedesk/internal/util"
)

const contextUserKey = "devserver.user"

func New(cfg config.Config, store *Store) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	allowCredentials := true
	for _, origin := range cfg.AllowOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderAuthorization,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderOrigin,
		},
		AllowCredentials: allowCredentials,
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"ok": true})
	})

	jwtMgr := util.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL)
	h := &handler{store: store, jwt: jwtMgr}

	api := e.Group("/api")
	api.POST("/User/login", h.login)
	api.POST("/User/register", h.register)

	authed := api.Group("", requireAuth(jwtMgr, store))
	authed.GET("/User/:id", h.getUser)
	authed.PUT("/User/:id", h.updateUser)

	admin := api.Group("", requireAuth(jwtMgr, store), requireAdmin)
	admin.GET("/User", h.listUsers)
	admin.DELETE("/User/:id", h.deleteUser)
	admin.POST("/destinations", h.createDestination)
	admin.PUT("/destinations/:id", h.updateDestination)
	admin.DELETE("/destinations/:id", h.deleteDestination)

	authed.GET("/destinations", h.listDestinations)
	authed.GET("/destinations/:id", h.getDestination)

	authed.GET("/hotels", h.listHotels)
	authed.GET("/hotels/:id", h.getHotel)
	authed.GET("/hotels/destination/:id", h.listHotelsByDestination)
	authed.POST("/hotels", h.createHotel)
	authed.PUT("/hotels/:id", h.updateHotel)
	authed.DELETE("/hotels/:id", h.deleteHotel)

	authed.GET("/flights", h.listFlights)
	authed.GET("/flights/search", h.searchFlights)
	authed.GET("/flights/:id", h.getFlight)
	authed.GET("/flights/destination/:id", h.listFlightsByDestination)
	authed.POST("/flights", h.createFlight)
	authed.PUT("/flights/:id", h.updateFlight)
	authed.DELETE("/flights/:id", h.deleteFlight)

	authed.GET("/bookings", h.listBookings)
	authed.GET("/bookings/:id", h.getBooking)
	authed.GET("/bookings/user/:id", h.listBookingsByUser)
	authed.POST("/bookings", h.createBooking)
	authed.PUT("/bookings/:id", h.updateBooking)
	authed.DELETE("/bookings/:id", h.deleteBooking)

	authed.GET("/budget/user/:id", h.getBudget)
	authed.PUT("/budget/user/:id", h.upsertBudget)

	return e
}

func requireAuth(jwtMgr *util.JWTManager, store *Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if strings.TrimSpace(header) == "" {
				return c.JSON(http.StatusUnauthorized, util.Error("missing authorization header"))
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, util.Error("invalid authorization header"))
			}
			claims, err := jwtMgr.Parse(strings.TrimSpace(parts[1]))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, util.Error("invalid or expired token"))
			}
			acct, ok := store.AccountByID(claims.UserID)
			if !ok {
				return c.JSON(http.StatusUnauthorized, util.Error("account no longer exists"))
			}
			c.Set(contextUserKey, acct.User)
			return next(c)
		}
	}
}

func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := currentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
		}
		if user.Role != domain.RoleAdmin {
			return c.JSON(http.StatusForbidden, util.Error("admin privileges required"))
		}
		return next(c)
	}
}

func currentUser(c echo.Context) (domain.User, bool) {
	user, ok := c.Get(contextUserKey).(domain.User)
	return user, ok
}
