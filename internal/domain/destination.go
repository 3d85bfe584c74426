package domain

import "github.com/google/uuid"

type Destination struct {
	ID          uuid.UUID `json:"destinationId"`
	Name        string    `json:"name"`
	Country     string    `json:"country"`
	Description *string   `json:"description,omitempty"`
}
