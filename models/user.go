package models

import "time"

// Role is a tag describing what a user account is allowed to do.
// Only RoleAdmin exists today; the type is kept separate from string so
// new roles can be added without reshaping callers.
type Role string

const (
	// RoleAdmin grants full access to the catalog management endpoints.
	RoleAdmin Role = "admin"
)

// String returns the role as a plain string.
// Implements the fmt.Stringer interface.
func (r Role) String() string {
	return string(r)
}

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique user identifier used during authentication.
	// Compared with case-sensitive equality and immutable after creation.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a salted one-way hash, never plaintext.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// Role defines the user's access level.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// Profile is the minimal public view of a user returned to clients
// after a successful login. It never carries credential material.
type Profile struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// PublicProfile returns the client-facing projection of the user.
func (u User) PublicProfile() Profile {
	return Profile{
		ID:    u.UserID,
		Email: u.Email,
		Role:  u.Role,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
