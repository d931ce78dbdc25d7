package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
)

type userService struct {
	userRepository store.UserRepository
	authService    AuthService
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, authService AuthService, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		authService:    authService,
		logger:         logger,
	}
}

func (s *userService) ListUsernames(ctx context.Context) ([]string, error) {
	usernames, err := s.userRepository.ListUsernames(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return usernames, nil
}

// SeedDefaultAdmin hashes password and inserts the administrator if the
// username is free. An existing account is left untouched, even if its
// password differs.
func (s *userService) SeedDefaultAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, ErrInvalidDataProvided
	}

	hash, err := s.authService.HashPassword(ctx, password)
	if err != nil {
		return false, fmt.Errorf("error hashing default admin password: %w", err)
	}

	created, err := s.userRepository.Seed(ctx, username, hash)
	if err != nil {
		s.logger.Err(err).Str("func", "*userService.SeedDefaultAdmin").Msg("error seeding default admin")
		return false, fmt.Errorf("error seeding default admin: %w", err)
	}

	if created {
		s.logger.Info().Str("username", username).Msg("default admin user created")
	} else {
		s.logger.Info().Str("username", username).Msg("default admin user already exists")
	}

	return created, nil
}
