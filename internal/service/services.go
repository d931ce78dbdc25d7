package service

import (
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/metrics"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/internal/workers"
	"github.com/MKhiriev/go-auth-service/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, m *metrics.AuthMetrics, logger *logger.Logger) (*Services, error) {
	pool := workers.NewHashPool(cfg.HashWorkers)

	authService, err := NewAuthService(storages.UserRepository, pool, m, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}
	authService = NewAuthValidationService(m).Wrap(authService)

	return &Services{
		AuthService:    authService,
		UserService:    NewUserService(storages.UserRepository, authService, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
		HealthService:  storages.DB,
	}, nil
}
