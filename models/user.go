package models

import "time"

// Role is the authorization role assigned to a user account.
type Role string

// Roles known to the authorization layer. New accounts default to RoleUser.
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique address the account is keyed by.
	// Used during authentication.
	Email string `json:"email"`

	// Password holds the bcrypt digest of the user's password.
	// It is never serialized into responses; repository lookups exclude the
	// column unless explicitly requested for credential verification.
	Password string `json:"-"`

	// Role determines which protected routes the user may access.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Sanitized returns a copy of the user with the password digest stripped.
// Handlers call it before writing a user into a response body.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
