// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the auth service HTTP API.
//
// [ServerAdapter] hides the transport from callers such as cmd/authctl. The
// package ships an HTTP/REST implementation built on resty
// ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

// ServerAdapter defines communication with the auth service.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently held, or "".
	Token() string

	// Health reports the service health status ("ok" or "unavailable").
	Health(ctx context.Context) (string, error)

	// Login exchanges credentials for a token and stores it via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	// ListUsers returns all usernames. Requires a token.
	ListUsers(ctx context.Context) ([]string, error)

	// Version returns the service build version.
	Version(ctx context.Context) (string, error)
}
