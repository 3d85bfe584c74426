package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/voyagedesk/voyagedesk/internal/apiclient"
	"github.com/voyagedesk/voyagedesk/internal/domain"
)

func TestHotelsAmenitiesJoinOnSubmit(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/hotels" || r.Method != http.MethodPost {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"hotelId":   uuid.NewString(),
			"name":      "Hotel Lumiere",
			"amenities": "WiFi, Pool",
		})
	}))
	defer srv.Close()

	gw := NewHotels(apiclient.New(srv.URL))
	hotel := domain.Hotel{
		Name:          "Hotel Lumiere",
		DestinationID: uuid.New(),
		PricePerNight: 180,
		Rating:        4.5,
		Amenities:     domain.Amenities{"WiFi", "Pool"},
	}
	created, err := gw.Create(context.Background(), hotel)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if gotBody["amenities"] != "WiFi, Pool" {
		t.Fatalf("submitted amenities = %v, want comma-joined string", gotBody["amenities"])
	}
	if !reflect.DeepEqual(created.Amenities, domain.Amenities{"WiFi", "Pool"}) {
		t.Fatalf("decoded amenities = %v, want split list", created.Amenities)
	}
}

func TestHotelsAmenitiesSplitOnFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"hotelId": uuid.NewString(), "name": "A", "amenities": "WiFi,  Breakfast , "},
			{"hotelId": uuid.NewString(), "name": "B", "amenities": ""},
		})
	}))
	defer srv.Close()

	gw := NewHotels(apiclient.New(srv.URL))
	hotels, err := gw.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(hotels) != 2 {
		t.Fatalf("len = %d", len(hotels))
	}
	if !reflect.DeepEqual(hotels[0].Amenities, domain.Amenities{"WiFi", "Breakfast"}) {
		t.Fatalf("amenities = %v", hotels[0].Amenities)
	}
	if hotels[1].Amenities != nil {
		t.Fatalf("empty amenities = %v, want nil", hotels[1].Amenities)
	}
}

func TestBookingCreateSerializesExplicitNull(t *testing.T) {
	var raw map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Errorf("decode body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{"bookingId": uuid.NewString(), "status": "Pending"})
	}))
	defer srv.Close()

	gw := NewBookings(apiclient.New(srv.URL))
	hotelID := uuid.New()
	_, err := gw.Create(context.Background(), BookingCreate{
		UserID:        uuid.New(),
		DestinationID: uuid.New(),
		HotelID:       &hotelID,
		TotalPrice:    180,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if string(raw["flightId"]) != "null" {
		t.Fatalf("flightId = %s, want explicit null", raw["flightId"])
	}
	var gotHotel string
	if err := json.Unmarshal(raw["hotelId"], &gotHotel); err != nil || gotHotel != hotelID.String() {
		t.Fatalf("hotelId = %s", raw["hotelId"])
	}
}

func TestFlightsSearchQuery(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/flights/search" {
			t.Errorf("path = %s", r.URL.Path)
		}
		gotQuery = map[string]string{
			"departureId": r.URL.Query().Get("departureId"),
			"arrivalId":   r.URL.Query().Get("arrivalId"),
			"date":        r.URL.Query().Get("date"),
		}
		json.NewEncoder(w).Encode([]domain.Flight{})
	}))
	defer srv.Close()

	gw := NewFlights(apiclient.New(srv.URL))
	departure := uuid.New()
	arrival := uuid.New()
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	if _, err := gw.Search(context.Background(), departure, arrival, date); err != nil {
		t.Fatalf("Search: %v", err)
	}

	if gotQuery["departureId"] != departure.String() {
		t.Fatalf("departureId = %q", gotQuery["departureId"])
	}
	if gotQuery["arrivalId"] != arrival.String() {
		t.Fatalf("arrivalId = %q", gotQuery["arrivalId"])
	}
	if gotQuery["date"] != "2026-09-14" {
		t.Fatalf("date = %q", gotQuery["date"])
	}
}

func TestAuthRegisterDefaultsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	gw := NewAuth(apiclient.New(srv.URL))
	msg, err := gw.Register(context.Background(), domain.Registration{
		Username: "newbie",
		Email:    "newbie@example.com",
		Password: "travel123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if msg != "User registered successfully" {
		t.Fatalf("message = %q", msg)
	}
}

func TestAuthLoginMapsResponse(t *testing.T) {
	userID := uuid.New()
	expiry := time.Now().Add(30 * time.Minute).UTC().Truncate(time.Second)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/User/login" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token":    "signed-token",
			"userId":   userID.String(),
			"username": "admin",
			"role":     "Admin",
			"expiry":   expiry.Format(time.RFC3339),
		})
	}))
	defer srv.Close()

	gw := NewAuth(apiclient.New(srv.URL))
	sess, err := gw.Login(context.Background(), domain.Credentials{Username: "admin", Password: "travel123!"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.UserID != userID || sess.Username != "admin" || sess.Role != domain.RoleAdmin {
		t.Fatalf("session = %+v", sess)
	}
	if sess.Token != "signed-token" {
		t.Fatalf("token = %q", sess.Token)
	}
	if !sess.Expiry.Equal(expiry) {
		t.Fatalf("expiry = %v, want %v", sess.Expiry, expiry)
	}
}
