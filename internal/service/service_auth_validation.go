package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/metrics"
	"github.com/MKhiriev/go-auth-service/internal/validators"
	"github.com/MKhiriev/go-auth-service/models"
)

// AuthValidationService validates login requests before they reach the
// wrapped AuthService. All other calls pass through unchanged.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
	metrics   *metrics.AuthMetrics
}

func NewAuthValidationService(m *metrics.AuthMetrics) AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewCredentialsValidator(),
		metrics:   m,
	}
}

func (v *AuthValidationService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		v.metrics.RecordLogin(metrics.OutcomeInvalidRequest)
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, request)
}

func (v *AuthValidationService) HashPassword(ctx context.Context, plaintext string) (string, error) {
	return v.inner.HashPassword(ctx, plaintext)
}

func (v *AuthValidationService) VerifyPassword(ctx context.Context, plaintext, hash string) bool {
	return v.inner.VerifyPassword(ctx, plaintext, hash)
}

func (v *AuthValidationService) IssueToken(ctx context.Context, subject string) (models.Token, error) {
	if err := v.validator.Validate(ctx, models.LoginRequest{Username: subject}, validators.FieldUsername); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.IssueToken(ctx, subject)
}

func (v *AuthValidationService) VerifyToken(ctx context.Context, token string) (string, bool) {
	return v.inner.VerifyToken(ctx, token)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}
