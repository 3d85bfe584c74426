package domain

// Role is the coarse authorization level the backend assigns to an account.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}
