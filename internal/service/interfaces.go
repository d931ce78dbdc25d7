package service

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService hashes and verifies passwords, issues and verifies bearer
// tokens and runs the login protocol.
type AuthService interface {
	// HashPassword returns a salted bcrypt hash of plaintext. Two calls with
	// the same input return different hashes.
	HashPassword(ctx context.Context, plaintext string) (string, error)

	// VerifyPassword reports whether plaintext matches hash. A malformed
	// hash yields false, never an error.
	VerifyPassword(ctx context.Context, plaintext, hash string) bool

	// IssueToken signs a token for subject that expires after the
	// configured token duration.
	IssueToken(ctx context.Context, subject string) (models.Token, error)

	// VerifyToken returns the subject of a valid, unexpired token. Any
	// failure (bad signature, malformed, expired) yields ok == false.
	VerifyToken(ctx context.Context, token string) (subject string, ok bool)

	// Login looks the user up, verifies the password and issues a token.
	// Unknown users and wrong passwords both yield ErrInvalidCredentials.
	Login(ctx context.Context, request models.LoginRequest) (models.Token, error)
}

// UserService exposes user listing and the startup bootstrap.
type UserService interface {
	ListUsernames(ctx context.Context) ([]string, error)

	// SeedDefaultAdmin creates the administrator account unless a user with
	// that name already exists. It reports whether the account was created.
	SeedDefaultAdmin(ctx context.Context, username, password string) (bool, error)
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	BuildInfo() models.AppBuildInfo
}

// HealthService reports whether the backing store is reachable.
type HealthService interface {
	Check(ctx context.Context) error
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
