package utils

import "errors"

var (
	// ErrInvalidJWTParams is returned by GenerateJWTToken when a required
	// parameter is empty or the duration is not positive.
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")

	// ErrEmptySubject is returned for a validly signed token without sub.
	ErrEmptySubject = errors.New("empty subject error")

	// ErrInvalidAuthorizationHeader is returned when the Authorization header
	// is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)
