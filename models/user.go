package models

import "time"

// Role values assignable to a user account. Authorization middleware compares
// the role stored in the request context against these constants.
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Login is the unique user login identifier used during authentication.
	Login string `json:"login"`

	// Name is the display name of the user. Non-sensitive, may be shown in UI.
	Name string `json:"name"`

	// Role is the authority granted to the user, one of RoleAdmin or RoleStaff.
	// Users registered without an explicit role default to RoleStaff.
	Role string `json:"role"`

	// Password carries the plaintext password on register/login requests only.
	// It is never persisted and never serialized in responses.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	// It is not exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Sanitized returns a copy of the user safe for inclusion in API responses:
// the plaintext password and the stored hash are cleared.
func (u User) Sanitized() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}
