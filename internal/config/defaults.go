package config

import (
	"runtime"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// Built-in defaults. DefaultTokenSignKey and DefaultAdminPassword are
// insecure and must be overridden in any real deployment.
const (
	DefaultTokenSignKey    = "changeme"
	DefaultTokenIssuer     = "go-auth-service"
	DefaultTokenDuration   = time.Hour
	DefaultHashCost        = bcrypt.DefaultCost
	DefaultAdminUser       = "admin"
	DefaultAdminPassword   = "admin123"
	DefaultLogLevel        = "debug"
	DefaultDBDSN           = "/data/sqlite.db"
	DefaultHTTPAddress     = ":8000"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:         DefaultTokenSignKey,
			TokenIssuer:          DefaultTokenIssuer,
			TokenDuration:        DefaultTokenDuration,
			HashCost:             DefaultHashCost,
			HashWorkers:          runtime.NumCPU(),
			DefaultAdminUser:     DefaultAdminUser,
			DefaultAdminPassword: DefaultAdminPassword,
			LogLevel:             DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    DefaultDBDSN,
			},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}
