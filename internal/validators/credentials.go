package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-auth-service/models"
)

// Field names accepted by [CredentialsValidator].
const (
	FieldUsername = "username"
	FieldPassword = "password"
)

// MaxUsernameLength is the longest accepted username, in characters.
const MaxUsernameLength = 255

// CredentialsValidator validates login requests. It only checks shape;
// whether the credentials are correct is decided by the auth service.
type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateLoginRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateLoginRequest(_ context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if request.Username == "" {
				return ErrEmptyUsername
			}
			if utf8.RuneCountInString(request.Username) > MaxUsernameLength {
				return ErrUsernameTooLong
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
