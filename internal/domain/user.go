package domain

import "github.com/google/uuid"

// User is an account record as the backend returns it. Password is
// write-only: it appears in outbound payloads and is never round-tripped.
type User struct {
	ID       uuid.UUID `json:"userId"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	FullName string    `json:"fullName"`
	Role     Role      `json:"role"`
}

// Credentials is a login request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is a new-account request. Registration never yields a
// session directly; the caller logs in afterwards.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

// ProfileUpdate carries the fields an account holder may change about
// themselves. Username is immutable after creation.
type ProfileUpdate struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}
