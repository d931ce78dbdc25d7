// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages shared by the auth service
// handlers and middleware.
//
// Keeping them in one place keeps the wording of every error body identical,
// which matters for login: callers must not be able to tell failure causes
// apart by the response text.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the decoded request fails
	// validation (e.g. an empty username or password).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUnauthorized is the only detail a rejected caller ever sees: wrong
	// password, unknown user, missing or invalid token.
	MsgUnauthorized = "unauthorized"

	// MsgVerifyEndpoint is the body of the public GET /verify endpoint.
	MsgVerifyEndpoint = "public verify endpoint"
)
