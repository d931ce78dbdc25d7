// Package migrations embeds the SQL schema of the credential store and
// applies it with goose. The same migration files serve sqlite3 and postgres.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations to db using the goose dialect that
// matches driver ("sqlite3" or "postgres").
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dialect, err := dialectFor(driver)
	if err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	provider, err := goose.NewProvider(dialect, db, embedMigrations)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func dialectFor(driver string) (goose.Dialect, error) {
	switch driver {
	case "sqlite3":
		return goose.DialectSQLite3, nil
	case "postgres", "pgx":
		return goose.DialectPostgres, nil
	default:
		return "", fmt.Errorf("unsupported driver %q", driver)
	}
}
