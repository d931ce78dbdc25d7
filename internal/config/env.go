package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// legacyEnvConfig maps the variable names the service used before the
// APP_/STORAGE_ prefixes were introduced.
type legacyEnvConfig struct {
	TokenSignKey         string `env:"JWT_SECRET"`
	DBPath               string `env:"DB_PATH"`
	DefaultAdminUser     string `env:"DEFAULT_ADMIN_USER"`
	DefaultAdminPassword string `env:"DEFAULT_ADMIN_PASS"`
}

func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func parseLegacyEnv() (*StructuredConfig, error) {
	var legacy legacyEnvConfig
	if err := parseEnv(&legacy); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:         legacy.TokenSignKey,
			DefaultAdminUser:     legacy.DefaultAdminUser,
			DefaultAdminPassword: legacy.DefaultAdminPassword,
		},
		Storage: Storage{
			DB: DB{DSN: legacy.DBPath},
		},
	}, nil
}
