// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [GetStructuredConfig]. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidAppConfigs is returned when token, hashing or bootstrap
	// settings are missing or out of range.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidStorageConfigs is returned when the database driver is
	// unsupported or the DSN is empty.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs is returned when the HTTP address or timeouts
	// are missing.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInsecureSecret is returned in strict mode when no token signing
	// secret was configured and the built-in default would be used.
	ErrInsecureSecret = errors.New("token sign key is not configured")
)
