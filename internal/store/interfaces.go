package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store: a durable mapping from username to
// password hash.
//
// "Not found" is a normal result, never an error. Every backend failure is
// returned wrapped in [ErrStorageUnavailable].
type UserRepository interface {
	// FindByUsername returns the stored password hash and true, or "", false
	// when no user with that name exists.
	FindByUsername(ctx context.Context, username string) (string, bool, error)

	// Seed inserts the user only if the username is not taken yet and
	// reports whether a row was created.
	Seed(ctx context.Context, username, passwordHash string) (bool, error)

	// ListUsernames returns all usernames ordered alphabetically.
	ListUsernames(ctx context.Context) ([]string, error)
}

// ErrorClassificator decides whether a failed database operation is
// transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
