package domain

import (
	"time"

	"github.com/google/uuid"
)

type Flight struct {
	ID                     uuid.UUID `json:"flightId"`
	Airline                string    `json:"airline"`
	DepartureDestinationID uuid.UUID `json:"departureDestinationId"`
	ArrivalDestinationID   uuid.UUID `json:"arrivalDestinationId"`
	DepartureTime          time.Time `json:"departureTime"`
	ArrivalTime            time.Time `json:"arrivalTime"`
	Price                  float64   `json:"price"`
}
