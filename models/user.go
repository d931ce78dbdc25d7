package models

import "time"

// User represents one authenticable principal stored by the credential store.
// The password is only ever kept in its hashed form.
type User struct {
	// Username is the unique, non-empty identifier of the user.
	// It is used as the subject of issued tokens.
	Username string `json:"username"`

	// PasswordHash is the salted one-way hash of the user's password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user record was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
