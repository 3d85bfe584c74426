package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is the client's record of the authenticated identity. It is
// persisted as a whole record: either every field is populated or the
// session does not exist at all.
type Session struct {
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username"`
	Role     Role      `json:"role"`
	Token    string    `json:"-"`
	Expiry   time.Time `json:"expiry"`
}

// Complete reports whether every field required for a usable session is set.
func (s *Session) Complete() bool {
	return s != nil &&
		s.UserID != uuid.Nil &&
		s.Username != "" &&
		s.Role.Valid() &&
		s.Token != "" &&
		!s.Expiry.IsZero()
}

// ExpiredAt reports whether the session has outlived its expiry at the
// given instant. Local enforcement is a UX optimization, not a security
// boundary; the backend remains the source of truth for token validity.
func (s *Session) ExpiredAt(now time.Time) bool {
	return s == nil || !s.Expiry.After(now)
}

// Remaining returns the session lifetime left at the given instant,
// clamped at zero.
func (s *Session) Remaining(now time.Time) time.Duration {
	if s == nil {
		return 0
	}
	d := s.Expiry.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
