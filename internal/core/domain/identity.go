package domain

import "time"

// User is a record in the operator's user directory.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// Identity is the resolved actor held by an authenticated session. It is
// taken verbatim from a matching directory record at login, or synthesized
// with RoleUser when no record matches. It is never mutated within a
// session.
type Identity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// IdentityOf converts a directory record into the session identity.
func IdentityOf(u User) Identity {
	return Identity{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Verified:  u.Verified,
		CreatedAt: u.CreatedAt,
	}
}
