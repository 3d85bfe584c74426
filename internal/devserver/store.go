package devserver

import (
	"sync"

	"github.com/google/uuid"

	"github.com/voyagedesk/voyagedesk/internal/domain"
	"github.com/voyagedesk/voyagedesk/internal/util"
)

// account pairs the public user record with its credential material.
// Hashes never leave the store.
type account struct {
	domain.User
	hash []byte
	salt []byte
}

// Store is the dev server's in-memory dataset. Slices keep insertion
// order so listings are stable between requests.
type Store struct {
	mu           sync.Mutex
	accounts     []account
	destinations []domain.Destination
	hotels       []domain.Hotel
	flights      []domain.Flight
	bookings     []domain.Booking
	budgets      []domain.Budget
}

func NewStore() *Store {
	return &Store{}
}

// Seed loads the sample dataset the console is developed against,
// including an admin and a regular account (password "travel123!").
func (s *Store) Seed() error {
	hash, salt, err := util.DerivePassword("travel123!")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	admin := account{
		User: domain.User{
			ID:       uuid.New(),
			Username: "admin",
			Email:    "admin@voyagedesk.test",
			FullName: "Site Administrator",
			Role:     domain.RoleAdmin,
		},
		hash: hash, salt: salt,
	}
	traveler := account{
		User: domain.User{
			ID:       uuid.New(),
			Username: "traveler",
			Email:    "traveler@voyagedesk.test",
			FullName: "Taylor Traveler",
			Role:     domain.RoleUser,
		},
		hash: hash, salt: salt,
	}
	s.accounts = append(s.accounts, admin, traveler)

	paris := domain.Destination{ID: uuid.New(), Name: "Paris", Country: "France"}
	tokyo := domain.Destination{ID: uuid.New(), Name: "Tokyo", Country: "Japan"}
	lima := domain.Destination{ID: uuid.New(), Name: "Lima", Country: "Peru"}
	s.destinations = append(s.destinations, paris, tokyo, lima)

	s.hotels = append(s.hotels,
		domain.Hotel{ID: uuid.New(), Name: "Hotel Lumiere", DestinationID: paris.ID, PricePerNight: 180, Rating: 4.5, Amenities: domain.Amenities{"WiFi", "Breakfast"}},
		domain.Hotel{ID: uuid.New(), Name: "Shinjuku Stay", DestinationID: tokyo.ID, PricePerNight: 140, Rating: 4, Amenities: domain.Amenities{"WiFi", "Onsen"}},
	)
	return nil
}

func (s *Store) AccountByUsername(username string) (account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.Username == username {
			return a, true
		}
	}
	return account{}, false
}

func (s *Store) AccountByID(id uuid.UUID) (account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return account{}, false
}

func (s *Store) AddAccount(user domain.User, hash, salt []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.Username == user.Username {
			return false
		}
	}
	s.accounts = append(s.accounts, account{User: user, hash: hash, salt: salt})
	return true
}

func (s *Store) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, len(s.accounts))
	for i, a := range s.accounts {
		out[i] = a.User
	}
	return out
}

func (s *Store) UpdateUser(id uuid.UUID, mutate func(*domain.User)) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			mutate(&s.accounts[i].User)
			return s.accounts[i].User, true
		}
	}
	return domain.User{}, false
}

func (s *Store) DeleteUser(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Destinations() []domain.Destination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Destination(nil), s.destinations...)
}

func (s *Store) DestinationByID(id uuid.UUID) (domain.Destination, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.destinations {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Destination{}, false
}

func (s *Store) AddDestination(d domain.Destination) domain.Destination {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = uuid.New()
	s.destinations = append(s.destinations, d)
	return d
}

func (s *Store) UpdateDestination(id uuid.UUID, d domain.Destination) (domain.Destination, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.destinations {
		if s.destinations[i].ID == id {
			d.ID = id
			s.destinations[i] = d
			return d, true
		}
	}
	return domain.Destination{}, false
}

func (s *Store) DeleteDestination(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.destinations {
		if s.destinations[i].ID == id {
			s.destinations = append(s.destinations[:i], s.destinations[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Hotels() []domain.Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Hotel(nil), s.hotels...)
}

func (s *Store) HotelsByDestination(destinationID uuid.UUID) []domain.Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Hotel
	for _, h := range s.hotels {
		if h.DestinationID == destinationID {
			out = append(out, h)
		}
	}
	return out
}

func (s *Store) HotelByID(id uuid.UUID) (domain.Hotel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.hotels {
		if h.ID == id {
			return h, true
		}
	}
	return domain.Hotel{}, false
}

func (s *Store) AddHotel(h domain.Hotel) domain.Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()
	h.ID = uuid.New()
	s.hotels = append(s.hotels, h)
	return h
}

func (s *Store) UpdateHotel(id uuid.UUID, h domain.Hotel) (domain.Hotel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.hotels {
		if s.hotels[i].ID == id {
			h.ID = id
			s.hotels[i] = h
			return h, true
		}
	}
	return domain.Hotel{}, false
}

func (s *Store) DeleteHotel(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.hotels {
		if s.hotels[i].ID == id {
			s.hotels = append(s.hotels[:i], s.hotels[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Flights() []domain.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Flight(nil), s.flights...)
}

func (s *Store) FlightsWhere(keep func(domain.Flight) bool) []domain.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Flight
	for _, f := range s.flights {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

func (s *Store) FlightByID(id uuid.UUID) (domain.Flight, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.flights {
		if f.ID == id {
			return f, true
		}
	}
	return domain.Flight{}, false
}

func (s *Store) AddFlight(f domain.Flight) domain.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()
	f.ID = uuid.New()
	s.flights = append(s.flights, f)
	return f
}

func (s *Store) UpdateFlight(id uuid.UUID, f domain.Flight) (domain.Flight, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.flights {
		if s.flights[i].ID == id {
			f.ID = id
			s.flights[i] = f
			return f, true
		}
	}
	return domain.Flight{}, false
}

func (s *Store) DeleteFlight(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.flights {
		if s.flights[i].ID == id {
			s.flights = append(s.flights[:i], s.flights[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Bookings() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Booking(nil), s.bookings...)
}

func (s *Store) BookingsByUser(userID uuid.UUID) []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

func (s *Store) BookingByID(id uuid.UUID) (domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Booking{}, false
}

func (s *Store) AddBooking(b domain.Booking) domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = uuid.New()
	s.bookings = append(s.bookings, b)
	return b
}

func (s *Store) UpdateBookingStatus(id uuid.UUID, status domain.BookingStatus) (domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
			return s.bookings[i], true
		}
	}
	return domain.Booking{}, false
}

func (s *Store) DeleteBooking(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) BudgetByUser(userID uuid.UUID) (domain.Budget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.budgets {
		if b.UserID == userID {
			return b, true
		}
	}
	return domain.Budget{}, false
}

func (s *Store) UpsertBudget(b domain.Budget) domain.Budget {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.budgets {
		if s.budgets[i].UserID == b.UserID {
			b.ID = s.budgets[i].ID
			s.budgets[i] = b
			return b
		}
	}
	b.ID = uuid.New()
	s.budgets = append(s.budgets, b)
	return b
}
