package devserver

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/voyagedesk/voyagedesk/internal/domain"
	"github.com/voyagedesk/voyagedesk/internal/util"
	"github.com/voyagedesk/voyagedesk/internal/validate"
)

type handler struct {
	store *Store
	jwt   *util.JWTManager
}

func (h *handler) login(c echo.Context) error {
	var creds domain.Credentials
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	acct, ok := h.store.AccountByUsername(creds.Username)
	if !ok || !util.VerifyPassword(creds.Password, acct.salt, acct.hash) {
		return c.JSON(http.StatusUnauthorized, util.Error("invalid username or password"))
	}
	token, expiry, err := h.jwt.Generate(acct.ID, acct.Username, acct.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to issue token"))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"token":    token,
		"userId":   acct.ID,
		"username": acct.Username,
		"role":     acct.Role,
		"expiry":   expiry.Format(time.RFC3339),
	})
}

func (h *handler) register(c echo.Context) error {
	var reg domain.Registration
	if err := c.Bind(&reg); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if err := validate.Registration(reg, reg.Password); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	hash, salt, err := util.DerivePassword(reg.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to store credentials"))
	}
	user := domain.User{
		ID:       uuid.New(),
		Username: reg.Username,
		Email:    reg.Email,
		FullName: reg.FullName,
		Role:     domain.RoleUser,
	}
	if !h.store.AddAccount(user, hash, salt) {
		return c.JSON(http.StatusConflict, util.Error("username is already taken"))
	}
	return c.JSON(http.StatusCreated, util.Message("User registered successfully"))
}

func (h *handler) getUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid user id"))
	}
	caller, _ := currentUser(c)
	if caller.Role != domain.RoleAdmin && caller.ID != id {
		return c.JSON(http.StatusForbidden, util.Error("cannot view another account"))
	}
	acct, ok := h.store.AccountByID(id)
	if !ok {
		return c.JSON(http.StatusNotFound, util.Error("user not found"))
	}
	return c.JSON(http.StatusOK, acct.User)
}

func (h *handler) updateUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid user id"))
	}
	caller, _ := currentUser(c)
	if caller.Role != domain.RoleAdmin && caller.ID != id {
		return c.JSON(http.StatusForbidden, util.Error("cannot update another account"))
	}

	var req struct {
		Email    string      `json:"email"`
		FullName string      `json:"fullName"`
		Role     domain.Role `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if err := validate.Email(req.Email); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	user, ok := h.store.UpdateUser(id, func(u *domain.User) {
		u.Email = req.Email
		u.FullName = req.FullName
		// Only an admin may change a role; username is immutable.
		if caller.Role == domain.RoleAdmin && req.Role.Valid() {
			u.Role = req.Role
		}
	})
	if !ok {
		return c.JSON(http.StatusNotFound, util.Error("user not found"))
	}
	return c.JSON(http.StatusOK, user)
}

func (h *handler) listUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Users())
}

func (h *handler) deleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid user id"))
	}
	if !h.store.DeleteUser(id) {
		return c.JSON(http.StatusNotFound, util.Error("user not found"))
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *handler) listDestinations(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Destinations())
}

func (h *handler) getDestination(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid destination id"))
	}
	dest, ok := h.store.DestinationByID(id)
	if !ok {
		return c.JSON(http.StatusNotFound, util.Error("destination not found"))
	}
	return c.JSON(http.StatusOK, dest)
}

func (h *handler) createDestination(c echo.Context) error {
	var dest domain.Destination
	if err := c.Bind(&dest); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if err := validate.Destination(dest); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	return c.JSON(http.StatusCreated, h.store.AddDestination(dest))
}

func (h *handler) updateDestination(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid destination id"))
	}
	var dest domain.Destination
	if err := c.Bind(&dest); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if err := validate.Destination(dest); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	updated, ok := h.store.UpdateDestination(id, dest)
	if !ok {
		return c.JSON(http.StatusNotFound, util.Error("destination not found"))
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *handler) deleteDestination(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid destination id"))
	}
	if !h.store.DeleteDestination(id) {
		return c.JSON(http.StatusNotFound, util.Error("destination not found"))
	}
	return c.NoContent(http.StatusNoContent)
}

// hotelDTO is the wire shape of a hotel: amenities travel as one
// comma-joined string, matching the production backend's schema.
type hotelDTO struct {
	ID            uuid.UUID `json:"hotelId"`
	Name          string    `json:"name"`
	DestinationID uuid.UUID `json:"destinationId"`
	PricePerNight float64   `json:"pricePerNight"`
	Rating        float64   `json:"rating"`
	Amenities     string    `json:"amenities"`
}

func toHotelDTO(h domain.Hotel) hotelDTO {
	return hotelDTO{
		ID:            h.ID,
		Name:          h.Name,
		DestinationID: h.DestinationID,
		PricePerNight: h.PricePerNight,
		Rating:        h.Rating,
		Amenities:     h.Amenities.Wire(),
	}
}

func (d hotelDTO) toDomain() domain.Hotel {
	return domain.Hotel{
		ID:            d.ID,
		Name:          d.Name,
		DestinationID: d.DestinationID,
		PricePerNight: d.PricePerNight,
		Rating:        d.Rating,
		Amenities:     domain.ParseAmenities(d.Amenities),
	}
}

func toHotelDTOs(hotels []domain.Hotel) []hotelDTO {
	out := make([]hotelDTO, len(hotels))
	for i, h := range hotels {
		out[i] = toHotelDTO(h)
	}
	return out
}

func (h *handler) listHotels(c echo.Context) error {
	return c.JSON(http.StatusOK, toHotelDTOs(h.store.Hotels()))
}

func (h *handler) listHotelsByDestination(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid destination id"))
	}
	return c.JSON(http.StatusOK, toHotelDTOs(h.store.HotelsByDestination(id)))
}

func (h *handler) getHotel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid hotel id"))
	}
	hotel, ok := h.store.HotelByID(id)
	if !ok {
		return c.JSON(http.StatusNotFound, util.Error("hotel not found"))
	}
	return c.JSON(http.StatusOK, toHotelDTO(hotel))
}

func (h *handler) createHotel(c echo.Context) error {
	var dto hotelDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	hotel := dto.toDomain()
	if err := validate.Hotel(hotel); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	if _, ok := h.store.DestinationByID(hotel.DestinationID); !ok {
		return c.JSON(http.StatusBadRequest, util.Error("destination does not exist"))
	}
	return c.JSON(http.StatusCreated, toHotelDTO(h.store.AddHotel(hotel)))
}

func (h *handler) updateHotel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid hotel id"))
	}
	var dto hotelDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	hotel := dto.toDomain()
	if err := validate.Hotel(hotel); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	updated, ok := h.store.UpdateHotel(id, hotel)
	if !ok {
		return c.JSON(http.StatusNotFound, util.Error("hotel not found"))
	}
	return c.JSON(http.StatusOK, toHotelDTO(updated))
}

func (h *handler) deleteHotel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid hotel id"))
	}
	if !h.store.DeleteHotel(id) {
		return c.JSON(http.StatusNotFound, util.Error("hotel not found"))
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *handler) listFlights(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Flights())
}

func (h *handler) listFlightsByDestination(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid destination id"))
	}
	flights := h.store.FlightsWhere(func(f domain.Flight) bool {
		return f.DepartureDestinationID == id || f.ArrivalDestinationID == id
	})
	return c.JSON(http.StatusOK, flights)
}

func (h *handler) searchFlights(c echo.Context) error {
	departureID, err := uuid.Parse(c.QueryParam("departureId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid departure id"))
	}
	arrivalID, err := uuid.Parse(c.QueryParam("arrivalId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid arrival id"))
	}
	date, err := time.Parse("2006-01-02", c.QueryParam("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid date"))
	}
	flights := h.store.FlightsWhere(func(f domain.Flight) bool {
		return f.DepartureDestinationID == departureID &&
			f.ArrivalDestinationID == arrivalID &&
			f.DepartureTime.Format("2006-01-02") == date.Format("2006-01-02")
	})
	return c.JSON(http.StatusOK, flights)
}

func (h *handler) getFlight(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid flight id"))
	}
	flight, ok := h.store.FlightByID(id)
	if !ok {
		return c.JSON(http.StatusNotFound, util.Error("flight not found"))
	}
	return c.JSON(http.StatusOK, flight)
}

func (h *handler) createFlight(c echo.Context) error {
	var flight domain.Flight
	if err := c.Bind(&flight); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if err := validate.Flight(flight); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	return c.JSON(http.StatusCreated, h.store.AddFlight(flight))
}

func (h *handler) updateFlight(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid flight id"))
	}
	var flight domain.Flight
	if err := c.Bind(&flight); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if err := validate.Flight(flight); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	updated, ok := h.store.UpdateFlight(id, flight)
	if !ok {
		return c.JSON(http.StatusNotFound, util.Error("flight not found"))
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *handler) deleteFlight(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid flight id"))
	}
	if !h.store.DeleteFlight(id) {
		return c.JSON(http.StatusNotFound, util.Error("flight not found"))
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *handler) listBookings(c echo.Context) error {
	caller, _ := currentUser(c)
	if caller.Role == domain.RoleAdmin {
		return c.JSON(http.StatusOK, h.store.Bookings())
	}
	return c.JSON(http.StatusOK, h.store.BookingsByUser(caller.ID))
}

func (h *handler) listBookingsByUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid user id"))
	}
	caller, _ := currentUser(c)
	if caller.Role != domain.RoleAdmin && caller.ID != id {
		return c.JSON(http.StatusForbidden, util.Error("cannot view another user's bookings"))
	}
	return c.JSON(http.StatusOK, h.store.BookingsByUser(id))
}

func (h *handler) getBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid booking id"))
	}
	booking, ok := h.store.BookingByID(id)
	if !ok {
		return c.JSON(http.StatusNotFound, util.Error("booking not found"))
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *handler) createBooking(c echo.Context) error {
	var req struct {
		UserID        uuid.UUID  `json:"userId"`
		DestinationID uuid.UUID  `json:"destinationId"`
		HotelID       *uuid.UUID `json:"hotelId"`
		FlightID      *uuid.UUID `json:"flightId"`
		TotalPrice    float64    `json:"totalPrice"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if (req.HotelID == nil) == (req.FlightID == nil) {
		return c.JSON(http.StatusBadRequest, util.Error("a booking must reference exactly one of hotel or flight"))
	}

	// The server re-derives the total; the client's figure is advisory.
	total := req.TotalPrice
	if req.HotelID != nil {
		hotel, ok := h.store.HotelByID(*req.HotelID)
		if !ok {
			return c.JSON(http.StatusBadRequest, util.Error("hotel does not exist"))
		}
		total = hotel.PricePerNight
	} else {
		flight, ok := h.store.FlightByID(*req.FlightID)
		if !ok {
			return c.JSON(http.StatusBadRequest, util.Error("flight does not exist"))
		}
		total = flight.Price
	}

	booking := h.store.AddBooking(domain.Booking{
		UserID:        req.UserID,
		DestinationID: req.DestinationID,
		HotelID:       req.HotelID,
		FlightID:      req.FlightID,
		TotalPrice:    total,
		Status:        domain.BookingStatusPending,
	})
	return c.JSON(http.StatusCreated, booking)
}

func (h *handler) updateBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid booking id"))
	}
	var req struct {
		Status domain.BookingStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if !req.Status.Valid() {
		return c.JSON(http.StatusBadRequest, util.Error("invalid booking status"))
	}
	booking, ok := h.store.UpdateBookingStatus(id, req.Status)
	if !ok {
		return c.JSON(http.StatusNotFound, util.Error("booking not found"))
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *handler) deleteBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid booking id"))
	}
	if !h.store.DeleteBooking(id) {
		return c.JSON(http.StatusNotFound, util.Error("booking not found"))
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *handler) getBudget(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid user id"))
	}
	caller, _ := currentUser(c)
	if caller.Role != domain.RoleAdmin && caller.ID != id {
		return c.JSON(http.StatusForbidden, util.Error("cannot view another user's budget"))
	}
	budget, ok := h.store.BudgetByUser(id)
	if !ok {
		return c.JSON(http.StatusNotFound, util.Error("no budget set"))
	}
	return c.JSON(http.StatusOK, budget)
}

func (h *handler) upsertBudget(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid user id"))
	}
	caller, _ := currentUser(c)
	if caller.Role != domain.RoleAdmin && caller.ID != id {
		return c.JSON(http.StatusForbidden, util.Error("cannot edit another user's budget"))
	}
	var budget domain.Budget
	if err := c.Bind(&budget); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	budget.UserID = id
	if err := validate.Budget(budget); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	return c.JSON(http.StatusOK, h.store.UpsertBudget(budget))
}
