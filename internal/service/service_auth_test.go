package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/metrics"
	"github.com/MKhiriev/go-auth-service/internal/mock"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/internal/workers"
	"github.com/MKhiriev/go-auth-service/models"
)

var testStart = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-secret",
		TokenIssuer:   "go-auth-service-test",
		TokenDuration: time.Hour,
		HashCost:      bcrypt.MinCost,
		HashWorkers:   2,
	}
}

// countingPool records how many jobs went through the hash pool.
type countingPool struct {
	inner workers.Pool
	calls atomic.Int32
}

func (p *countingPool) Do(ctx context.Context, job func()) error {
	p.calls.Add(1)
	return p.inner.Do(ctx, job)
}

type authFixture struct {
	svc     service.AuthService
	repo    *mock.MockUserRepository
	pool    *countingPool
	metrics *metrics.AuthMetrics
	now     *time.Time
}

func newAuthFixture(t *testing.T, cfg config.App) *authFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &authFixture{
		repo:    mock.NewMockUserRepository(ctrl),
		pool:    &countingPool{inner: workers.NewHashPool(cfg.HashWorkers)},
		metrics: metrics.NewAuthMetrics(nil),
	}
	now := testStart
	f.now = &now

	svc, err := service.NewAuthService(f.repo, f.pool, f.metrics, cfg, logger.Nop(),
		service.WithClock(func() time.Time { return *f.now }))
	require.NoError(t, err)
	f.svc = svc

	return f
}

func (f *authFixture) advance(d time.Duration) {
	*f.now = f.now.Add(d)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── HashPassword / VerifyPassword ───────────────────────────────────────────

func TestAuthService_HashPassword_FreshSaltEachCall(t *testing.T) {
	f := newAuthFixture(t, testAppConfig())
	ctx := context.Background()

	first, err := f.svc.HashPassword(ctx, "s3cret")
	require.NoError(t, err)
	second, err := f.svc.HashPassword(ctx, "s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotContains(t, first, "s3cret")
	assert.True(t, f.svc.VerifyPassword(ctx, "s3cret", first))
	assert.True(t, f.svc.VerifyPassword(ctx, "s3cret", second))
	assert.False(t, f.svc.VerifyPassword(ctx, "S3cret", first))

	cost, err := bcrypt.Cost([]byte(first))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestAuthService_HashPassword_TooLong(t *testing.T) {
	f := newAuthFixture(t, testAppConfig())

	_, err := f.svc.HashPassword(context.Background(), strings.Repeat("a", 73))
	require.ErrorIs(t, err, service.ErrInvalidDataProvided)
	assert.Zero(t, f.pool.calls.Load())

	_, err = f.svc.HashPassword(context.Background(), strings.Repeat("a", 72))
	require.NoError(t, err)
}

func TestAuthService_HashPassword_CancelledContext(t *testing.T) {
	f := newAuthFixture(t, testAppConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.svc.HashPassword(ctx, "s3cret")
	require.ErrorIs(t, err, context.Canceled)
}

func TestAuthService_VerifyPassword_NeverPanicsOrErrs(t *testing.T) {
	f := newAuthFixture(t, testAppConfig())
	ctx := context.Background()
	hash := mustHash(t, "s3cret")

	tests := []struct {
		name      string
		plaintext string
		hash      string
	}{
		{"empty hash", "s3cret", ""},
		{"garbage hash", "s3cret", "not-a-bcrypt-hash"},
		{"truncated hash", "s3cret", hash[:20]},
		{"wrong password", "other", hash},
		{"too long password", strings.Repeat("a", 100), hash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, f.svc.VerifyPassword(ctx, tt.plaintext, tt.hash))
		})
	}
}

func TestAuthService_VerifyPassword_CancelledContext(t *testing.T) {
	f := newAuthFixture(t, testAppConfig())
	hash := mustHash(t, "s3cret")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, f.svc.VerifyPassword(ctx, "s3cret", hash))
}

// ── IssueToken / VerifyToken ────────────────────────────────────────────────

func TestAuthService_IssueToken_RoundTrip(t *testing.T) {
	f := newAuthFixture(t, testAppConfig())
	ctx := context.Background()

	token, err := f.svc.IssueToken(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", token.Subject)
	assert.Equal(t, testStart, token.IssuedAt)
	assert.Equal(t, testStart.Add(time.Hour), token.ExpiresAt)

	subject, ok := f.svc.VerifyToken(ctx, token.SignedString)
	assert.True(t, ok)
	assert.Equal(t, "admin", subject)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.TokenVerifications.WithLabelValues(metrics.ResultValid)))
}

func TestAuthService_VerifyToken_Expiry(t *testing.T) {
	f := newAuthFixture(t, testAppConfig())
	ctx := context.Background()

	token, err := f.svc.IssueToken(ctx, "admin")
	require.NoError(t, err)

	f.advance(59*time.Minute + 59*time.Second)
	_, ok := f.svc.VerifyToken(ctx, token.SignedString)
	assert.True(t, ok, "token must be valid just before expiry")

	f.advance(time.Second)
	subject, ok := f.svc.VerifyToken(ctx, token.SignedString)
	assert.False(t, ok, "token must be invalid at expiry")
	assert.Empty(t, subject)

	f.advance(time.Hour)
	_, ok = f.svc.VerifyToken(ctx, token.SignedString)
	assert.False(t, ok)
}

func TestAuthService_VerifyToken_Tampered(t *testing.T) {
	f := newAuthFixture(t, testAppConfig())
	ctx := context.Background()

	token, err := f.svc.IssueToken(ctx, "admin")
	require.NoError(t, err)

	raw := []byte(token.SignedString)
	last := strings.LastIndex(token.SignedString, ".")
	pos := last + 5
	if raw[pos] == 'x' {
		raw[pos] = 'y'
	} else {
		raw[pos] = 'x'
	}

	_, ok := f.svc.VerifyToken(ctx, string(raw))
	assert.False(t, ok)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.TokenVerifications.WithLabelValues(metrics.ResultInvalid)))
}

func TestAuthService_VerifyToken_OtherSecret(t *testing.T) {
	f := newAuthFixture(t, testAppConfig())

	otherCfg := testAppConfig()
	otherCfg.TokenSignKey = "another-secret"
	other := newAuthFixture(t, otherCfg)

	token, err := other.svc.IssueToken(context.Background(), "admin")
	require.NoError(t, err)

	_, ok := f.svc.VerifyToken(context.Background(), token.SignedString)
	assert.False(t, ok)
}

func TestAuthService_VerifyToken_Garbage(t *testing.T) {
	f := newAuthFixture(t, testAppConfig())

	for _, raw := range []string{"", "garbage", "a.b.c", "Bearer x.y.z"} {
		_, ok := f.svc.VerifyToken(context.Background(), raw)
		assert.False(t, ok, raw)
	}
}

func TestAuthService_IssueToken_EmptySubject(t *testing.T) {
	f := newAuthFixture(t, testAppConfig())

	_, err := f.svc.IssueToken(context.Background(), "")
	require.ErrorIs(t, err, service.ErrTokenCreationFailed)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	f := newAuthFixture(t, testAppConfig())
	ctx := context.Background()

	f.repo.EXPECT().FindByUsername(gomock.Any(), "admin").Return(mustHash(t, "admin123"), true, nil)

	token, err := f.svc.Login(ctx, models.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	subject, ok := f.svc.VerifyToken(ctx, token.SignedString)
	assert.True(t, ok)
	assert.Equal(t, "admin", subject)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.LoginAttempts.WithLabelValues(metrics.OutcomeSuccess)))
}

func TestAuthService_Login_UnknownUserAndWrongPasswordAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	wrongPassword := newAuthFixture(t, testAppConfig())
	wrongPassword.repo.EXPECT().FindByUsername(gomock.Any(), "admin").Return(mustHash(t, "admin123"), true, nil)

	unknownUser := newAuthFixture(t, testAppConfig())
	unknownUser.repo.EXPECT().FindByUsername(gomock.Any(), "ghost").Return("", false, nil)

	token1, err1 := wrongPassword.svc.Login(ctx, models.LoginRequest{Username: "admin", Password: "nope"})
	token2, err2 := unknownUser.svc.Login(ctx, models.LoginRequest{Username: "ghost", Password: "nope"})

	require.ErrorIs(t, err1, service.ErrInvalidCredentials)
	require.ErrorIs(t, err2, service.ErrInvalidCredentials)
	assert.Equal(t, err1.Error(), err2.Error())
	assert.Equal(t, models.Token{}, token1)
	assert.Equal(t, models.Token{}, token2)

	// both paths perform exactly one password comparison
	assert.Equal(t, int32(1), wrongPassword.pool.calls.Load())
	assert.Equal(t, int32(1), unknownUser.pool.calls.Load())

	assert.Equal(t, 1.0, testutil.ToFloat64(unknownUser.metrics.LoginAttempts.WithLabelValues(metrics.OutcomeInvalidCredentials)))
}

func TestAuthService_Login_StorageUnavailable(t *testing.T) {
	f := newAuthFixture(t, testAppConfig())

	storageErr := fmt.Errorf("%w: connection refused", store.ErrStorageUnavailable)
	f.repo.EXPECT().FindByUsername(gomock.Any(), "admin").Return("", false, storageErr)

	_, err := f.svc.Login(context.Background(), models.LoginRequest{Username: "admin", Password: "admin123"})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
	assert.NotErrorIs(t, err, service.ErrInvalidCredentials)
	assert.Zero(t, f.pool.calls.Load())
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.LoginAttempts.WithLabelValues(metrics.OutcomeError)))
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	f := newAuthFixture(t, testAppConfig())

	for _, req := range []models.LoginRequest{
		{},
		{Username: "admin"},
		{Password: "admin123"},
	} {
		_, err := f.svc.Login(context.Background(), req)
		require.ErrorIs(t, err, service.ErrInvalidDataProvided)
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(f.metrics.LoginAttempts.WithLabelValues(metrics.OutcomeInvalidRequest)))
}

func TestAuthService_Login_CancelledBeforeVerification(t *testing.T) {
	f := newAuthFixture(t, testAppConfig())

	ctx, cancel := context.WithCancel(context.Background())
	f.repo.EXPECT().FindByUsername(gomock.Any(), "admin").DoAndReturn(
		func(context.Context, string) (string, bool, error) {
			cancel()
			return mustHash(t, "admin123"), true, nil
		},
	)

	_, err := f.svc.Login(ctx, models.LoginRequest{Username: "admin", Password: "admin123"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.NotErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestNewAuthService_InvalidCost(t *testing.T) {
	cfg := testAppConfig()
	cfg.HashCost = bcrypt.MaxCost + 1

	svc, err := service.NewAuthService(nil, workers.NewHashPool(1), nil, cfg, logger.Nop())
	require.Error(t, err)
	assert.Nil(t, svc)
}
