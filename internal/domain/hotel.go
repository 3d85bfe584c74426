package domain

import (
	"strings"

	"github.com/google/uuid"
)

type Hotel struct {
	ID            uuid.UUID `json:"hotelId"`
	Name          string    `json:"name"`
	DestinationID uuid.UUID `json:"destinationId"`
	PricePerNight float64   `json:"pricePerNight"`
	Rating        float64   `json:"rating"`
	Amenities     Amenities `json:"-"`
}

// Amenities is an ordered list of free-text amenity labels. The backend
// stores them as a single comma-joined string; the split/join happens at
// the wire boundary only, never inside the domain.
type Amenities []string

// ParseAmenities splits the backend's comma-joined representation,
// trimming whitespace and dropping empty entries.
func ParseAmenities(wire string) Amenities {
	if strings.TrimSpace(wire) == "" {
		return nil
	}
	parts := strings.Split(wire, ",")
	out := make(Amenities, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Wire returns the comma-joined form the backend contract requires.
func (a Amenities) Wire() string {
	return strings.Join(a, ", ")
}

// Add appends a label, preserving the order of existing entries.
func (a Amenities) Add(label string) Amenities {
	label = strings.TrimSpace(label)
	if label == "" {
		return a
	}
	return append(a, label)
}

// Remove deletes the first entry matching the label, comparing
// case-insensitively after trimming. Remaining entries keep their order.
func (a Amenities) Remove(label string) Amenities {
	want := strings.ToLower(strings.TrimSpace(label))
	for i, existing := range a {
		if strings.ToLower(strings.TrimSpace(existing)) == want {
			out := make(Amenities, 0, len(a)-1)
			out = append(out, a[:i]...)
			return append(out, a[i+1:]...)
		}
	}
	return a
}

// Contains reports whether a label is present, using the same matching
// rules as Remove.
func (a Amenities) Contains(label string) bool {
	want := strings.ToLower(strings.TrimSpace(label))
	for _, existing := range a {
		if strings.ToLower(strings.TrimSpace(existing)) == want {
			return true
		}
	}
	return false
}
