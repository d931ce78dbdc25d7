package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/metrics"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/internal/workers"
	"github.com/MKhiriev/go-auth-service/models"
)

// maxPasswordBytes is the bcrypt input limit.
const maxPasswordBytes = 72

// authService is the concrete implementation of AuthService.
// It hashes passwords with bcrypt, signs tokens with HMAC-SHA256 and reads
// stored hashes through a UserRepository.
type authService struct {
	userRepository store.UserRepository
	pool           workers.Pool
	metrics        *metrics.AuthMetrics

	hashCost int

	// dummyHash is verified when a login names an unknown user so that the
	// response takes as long as a wrong password would.
	dummyHash string

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// AuthOption customizes an AuthService built by NewAuthService.
type AuthOption func(*authService)

// WithClock replaces time.Now as the source of token timestamps and of the
// verification clock.
func WithClock(now func() time.Time) AuthOption {
	return func(a *authService) {
		if now != nil {
			a.now = now
		}
	}
}

// NewAuthService constructs an AuthService with security parameters taken
// from cfg. Hash operations are throttled by pool; m may be nil.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, pool workers.Pool, m *metrics.AuthMetrics, cfg config.App, logger *logger.Logger, opts ...AuthOption) (AuthService, error) {
	dummyHash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), cfg.HashCost)
	if err != nil {
		return nil, fmt.Errorf("error generating dummy password hash: %w", err)
	}

	a := &authService{
		userRepository: userRepository,
		pool:           pool,
		metrics:        m,
		hashCost:       cfg.HashCost,
		dummyHash:      string(dummyHash),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// HashPassword returns a bcrypt hash of plaintext at the configured cost.
//
// Plaintext longer than 72 bytes is rejected with ErrInvalidDataProvided
// instead of being silently truncated. If ctx ends while waiting for a hash
// worker, the context error is returned.
func (a *authService) HashPassword(ctx context.Context, plaintext string) (string, error) {
	if len(plaintext) > maxPasswordBytes {
		return "", fmt.Errorf("%w: password longer than %d bytes", ErrInvalidDataProvided, maxPasswordBytes)
	}

	var (
		hash    []byte
		hashErr error
	)
	start := time.Now()
	if err := a.pool.Do(ctx, func() {
		hash, hashErr = bcrypt.GenerateFromPassword([]byte(plaintext), a.hashCost)
	}); err != nil {
		return "", err
	}
	a.metrics.ObserveHash(metrics.OperationHash, time.Since(start))

	if hashErr != nil {
		return "", fmt.Errorf("error hashing password: %w", hashErr)
	}

	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches hash. It returns false
// for a malformed hash, an over-long plaintext or a cancelled ctx.
func (a *authService) VerifyPassword(ctx context.Context, plaintext, hash string) bool {
	ok, _ := a.verifyPassword(ctx, plaintext, hash)
	return ok
}

// verifyPassword returns an error only when no hash worker could be
// acquired; a mismatch is (false, nil).
func (a *authService) verifyPassword(ctx context.Context, plaintext, hash string) (bool, error) {
	if len(plaintext) > maxPasswordBytes {
		return false, nil
	}

	var match bool
	start := time.Now()
	if err := a.pool.Do(ctx, func() {
		match = bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
	}); err != nil {
		return false, err
	}
	a.metrics.ObserveHash(metrics.OperationVerify, time.Since(start))

	return match, nil
}

// IssueToken signs a token for subject valid from now until now plus the
// configured duration.
func (a *authService) IssueToken(ctx context.Context, subject string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, subject, a.now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.IssueToken").Msg("error issuing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// VerifyToken validates signature, algorithm, issuer and expiry. Every
// failure collapses into ok == false; the cause is only logged.
func (a *authService) VerifyToken(ctx context.Context, tokenString string) (string, bool) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now)
	a.metrics.RecordTokenVerification(err == nil)
	if err != nil {
		logger.FromContext(ctx).Debug().
			Err(err).
			Bool("expired", utils.IsExpiredTokenError(err)).
			Msg("token rejected")
		return "", false
	}

	return token.Subject, true
}

// Login authenticates the request and issues a token.
//
// Returns:
//   - ErrInvalidDataProvided if the username or password is empty.
//   - An error wrapping store.ErrStorageUnavailable if the lookup fails.
//   - ErrInvalidCredentials for an unknown username or a wrong password.
//     An unknown username still costs one bcrypt comparison.
//   - ErrTokenCreationFailed if signing fails.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if request.Username == "" || request.Password == "" {
		a.metrics.RecordLogin(metrics.OutcomeInvalidRequest)
		return models.Token{}, ErrInvalidDataProvided
	}

	hash, found, err := a.userRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		a.metrics.RecordLogin(metrics.OutcomeError)
		log.Err(err).Str("func", "*authService.Login").Msg("user lookup failed")
		return models.Token{}, fmt.Errorf("user lookup failed: %w", err)
	}
	if !found {
		hash = a.dummyHash
	}

	match, err := a.verifyPassword(ctx, request.Password, hash)
	if err != nil {
		a.metrics.RecordLogin(metrics.OutcomeError)
		log.Err(err).Str("func", "*authService.Login").Msg("password verification aborted")
		return models.Token{}, fmt.Errorf("password verification aborted: %w", err)
	}

	if !found || !match {
		a.metrics.RecordLogin(metrics.OutcomeInvalidCredentials)
		log.Info().Str("username", request.Username).Msg("invalid credentials")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := a.IssueToken(ctx, request.Username)
	if err != nil {
		a.metrics.RecordLogin(metrics.OutcomeError)
		return models.Token{}, err
	}

	a.metrics.RecordLogin(metrics.OutcomeSuccess)
	log.Info().Str("username", request.Username).Time("expires_at", token.ExpiresAt).Msg("user logged in")

	return token, nil
}
