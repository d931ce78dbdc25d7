package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}

	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (a App) validate() error {
	if a.TokenSignKey == "" || a.TokenIssuer == "" || a.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and positive duration are required", ErrInvalidAppConfigs)
	}

	if a.StrictSecret && a.UsesDefaultSecret() {
		return ErrInsecureSecret
	}

	if a.HashCost < bcrypt.MinCost || a.HashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: hash cost must be in [%d, %d]", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if a.HashWorkers < 1 {
		return fmt.Errorf("%w: hash workers must be positive", ErrInvalidAppConfigs)
	}

	if a.DefaultAdminUser == "" || a.DefaultAdminPassword == "" {
		return fmt.Errorf("%w: default admin credentials are required", ErrInvalidAppConfigs)
	}

	if _, err := zerolog.ParseLevel(a.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	return nil
}

func (s Storage) validate() error {
	switch s.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, s.DB.Driver)
	}

	if s.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	return nil
}
