package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the public display name, shown next to posts and comments.
	Username string `json:"username"`

	// Email is the unique login key used during authentication.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized to JSON.
	PasswordHash string `json:"-"`

	// Role is the permission class of the account (USER or AUTHOR).
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Summary returns the public projection of the user embedded into
// post and comment responses.
func (u User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Username: u.Username}
}

// UserSummary is the public author projection: id and username only.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// UserInfo is the account projection returned by register and login.
type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
