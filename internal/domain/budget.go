package domain

import (
	"time"

	"github.com/google/uuid"
)

// Budget is a per-user travel budget window.
type Budget struct {
	ID        uuid.UUID `json:"budgetId"`
	UserID    uuid.UUID `json:"userId"`
	Amount    float64   `json:"amount"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}
