package models

import "time"

// Roles assignable to a portal account.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a credential record as persisted in users.json. Password holds
// the bcrypt hash, never the plaintext.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Identity is the authenticated view of a user, carried by a live
// session. It never includes the password hash.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Identity strips a User down to the fields safe to hand to a session.
func (u User) Identity() Identity {
	return Identity{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
