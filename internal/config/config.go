// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-auth-service application. It is populated by merging values from
// environment variables, command-line flags, an optional JSON file, the
// legacy environment variable names and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds security and bootstrap settings: the token signing secret,
	// token parameters, password hashing parameters and the default
	// administrator credentials.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the credential store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security
// and the initial bootstrap of the credential store.
type App struct {
	// TokenSignKey is the process-wide HMAC secret used to sign and verify
	// tokens. When unset, DefaultTokenSignKey is used.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration controls how long a newly issued token remains valid.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashCost is the bcrypt cost factor used for password hashing.
	HashCost int `env:"HASH_COST"`

	// HashWorkers limits how many password hash operations run at once.
	HashWorkers int `env:"HASH_WORKERS"`

	// StrictSecret turns the use of DefaultTokenSignKey into a startup error.
	StrictSecret bool `env:"STRICT_SECRET"`

	// DefaultAdminUser is the username seeded at startup if it is absent.
	DefaultAdminUser string `env:"DEFAULT_ADMIN_USER"`

	// DefaultAdminPassword is the password of the seeded administrator.
	DefaultAdminPassword string `env:"DEFAULT_ADMIN_PASSWORD"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the relational database connection settings.
type DB struct {
	// Driver selects the backend: DriverSQLite or DriverPostgres.
	Driver string `env:"DRIVER"`

	// DSN is the file path (sqlite3) or connection URI (postgres).
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the HTTP server.
type Server struct {
	// HTTPAddress is the address the HTTP server listens on.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the processing time of a single request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// UsesDefaultSecret reports whether tokens are signed with the insecure
// built-in secret.
func (a App) UsesDefaultSecret() bool {
	return a.TokenSignKey == DefaultTokenSignKey
}

// UsesDefaultAdminPassword reports whether the seeded administrator gets the
// built-in password.
func (a App) UsesDefaultAdminPassword() bool {
	return a.DefaultAdminPassword == DefaultAdminPassword
}

// GetStructuredConfig builds the application configuration from the process
// environment and command-line arguments.
//
// Sources are merged with decreasing priority: environment variables,
// command-line flags, JSON file, legacy environment variables, defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withLegacyEnv().
		withDefaults().
		build()
}
