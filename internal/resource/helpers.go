package resource

import (
	"github.com/google/uuid"

	"github.com/voyagedesk/voyagedesk/internal/apiclient"
)

// requireID rejects a fetched record whose identifier is missing: the
// response parsed as JSON but is not the expected kind of payload.
// Gateways never return a nil record on success, so the accessor is safe.
func requireID[T any](id func(T) uuid.UUID) func(T) error {
	return func(v T) error {
		if id(v) == uuid.Nil {
			return &apiclient.APIError{Message: apiclient.InvalidFormatErrorMessage}
		}
		return nil
	}
}
