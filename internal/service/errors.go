package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for an unknown username and
	// for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrTokenCreationFailed = errors.New("token creation failed")
)
