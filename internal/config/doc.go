// Package config loads the go-auth-service configuration.
//
// Values come from environment variables (caarlos0/env), command-line flags,
// an optional JSON file and the legacy variable names JWT_SECRET, DB_PATH,
// DEFAULT_ADMIN_USER and DEFAULT_ADMIN_PASS. The sources are merged with
// dario.cat/mergo, built-in defaults fill the rest, and the result is
// validated before it is returned.
//
// The defaults include an insecure token signing secret and administrator
// password. They keep a fresh install usable, but operators must override
// them; APP_STRICT_SECRET=true refuses to start with the default secret.
package config
