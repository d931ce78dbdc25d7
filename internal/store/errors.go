package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStorageUnavailable wraps every connection, I/O or driver failure of
	// the backing store. It is never returned for a missing user.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrEmptyUsername is returned by Seed when the username is empty.
	ErrEmptyUsername = errors.New("username must not be empty")

	// ErrUnsupportedDriver is returned by NewStorages for an unknown
	// database driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
