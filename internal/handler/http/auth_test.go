// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/models"
)

// ─────────────────────────────────────────────
// POST /login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	h, m := newTestHandler(t)

	m.auth.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Username: "admin", Password: "admin123"}).
		Return(models.Token{SignedString: "a.b.c", Subject: "admin"}, nil)

	rr := serve(t, h, http.MethodPost, "/login", `{"username":"admin","password":"admin123"}`, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "a.b.c", resp.Token)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginErr   error
		callsLogin bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "malformed json",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not json",
			body:       `username=admin`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid data",
			body:       `{"username":"","password":""}`,
			loginErr:   fmt.Errorf("%w: username is required", service.ErrInvalidDataProvided),
			callsLogin: true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid credentials",
			body:       `{"username":"admin","password":"wrong"}`,
			loginErr:   service.ErrInvalidCredentials,
			callsLogin: true,
			wantStatus: http.StatusUnauthorized,
			wantBody:   "unauthorized\n",
		},
		{
			name:       "storage unavailable",
			body:       `{"username":"admin","password":"admin123"}`,
			loginErr:   fmt.Errorf("user lookup failed: %w", store.ErrStorageUnavailable),
			callsLogin: true,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "unexpected error",
			body:       `{"username":"admin","password":"admin123"}`,
			loginErr:   errors.New("boom"),
			callsLogin: true,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.callsLogin {
				m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{}, tt.loginErr)
			}

			rr := serve(t, h, http.MethodPost, "/login", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
			assert.NotContains(t, rr.Body.String(), "token")
		})
	}
}

func TestLogin_UnknownUserAndWrongPasswordLookTheSame(t *testing.T) {
	h, m := newTestHandler(t)

	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrInvalidCredentials).Times(2)

	wrong := serve(t, h, http.MethodPost, "/login", `{"username":"admin","password":"nope"}`, nil)
	unknown := serve(t, h, http.MethodPost, "/login", `{"username":"ghost","password":"nope"}`, nil)

	assert.Equal(t, wrong.Code, unknown.Code)
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
}

func TestLogin_BodyTooLarge(t *testing.T) {
	h, _ := newTestHandler(t)

	body := `{"username":"admin","password":"` + strings.Repeat("a", maxLoginBodyBytes) + `"}`
	rr := serve(t, h, http.MethodPost, "/login", body, nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogin_WrongMethodIsNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(t, h, http.MethodGet, "/login", "", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// The rejected username is logged once, by the auth service.
func TestLogin_RejectionNotLoggedByHandler(t *testing.T) {
	h, m := newTestHandler(t)
	var buf bytes.Buffer
	h.logger = &logger.Logger{Logger: zerolog.New(&buf)}

	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrInvalidCredentials)

	rr := serve(t, h, http.MethodPost, "/login", `{"username":"mallory","password":"guess"}`, nil)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.NotContains(t, buf.String(), "mallory")
}

// ─────────────────────────────────────────────
// GET /verify
// ─────────────────────────────────────────────

func TestVerify(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(t, h, http.MethodGet, "/verify", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"public verify endpoint"}`, rr.Body.String())
}

// ─────────────────────────────────────────────
// GET /users
// ─────────────────────────────────────────────

func TestListUsers_Success(t *testing.T) {
	h, m := newTestHandler(t)

	m.auth.EXPECT().VerifyToken(gomock.Any(), "good.token.value").Return("admin", true)
	m.users.EXPECT().ListUsernames(gomock.Any()).Return([]string{"admin", "alice"}, nil)

	rr := serve(t, h, http.MethodGet, "/users", "", map[string]string{"Authorization": "Bearer good.token.value"})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"users":["admin","alice"]}`, rr.Body.String())
}

func TestListUsers_LogsSubject(t *testing.T) {
	h, m := newTestHandler(t)
	var buf bytes.Buffer
	h.logger = &logger.Logger{Logger: zerolog.New(&buf)}

	m.auth.EXPECT().VerifyToken(gomock.Any(), "good.token.value").Return("alice", true)
	m.users.EXPECT().ListUsernames(gomock.Any()).Return([]string{"admin", "alice"}, nil)

	rr := serve(t, h, http.MethodGet, "/users", "", map[string]string{"Authorization": "Bearer good.token.value"})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, buf.String(), `"subject":"alice"`)
	assert.Contains(t, buf.String(), `"message":"users listed"`)
}

func TestListUsers_Unauthorized(t *testing.T) {
	tests := []struct {
		name   string
		header string
		verify bool
	}{
		{name: "no header"},
		{name: "basic scheme", header: "Basic YWRtaW46YWRtaW4xMjM="},
		{name: "bearer without token", header: "Bearer "},
		{name: "invalid token", header: "Bearer bad.token.value", verify: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.verify {
				m.auth.EXPECT().VerifyToken(gomock.Any(), "bad.token.value").Return("", false)
			}

			headers := map[string]string{}
			if tt.header != "" {
				headers["Authorization"] = tt.header
			}
			rr := serve(t, h, http.MethodGet, "/users", "", headers)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "unauthorized\n", rr.Body.String())
		})
	}
}

func TestListUsers_StorageError(t *testing.T) {
	h, m := newTestHandler(t)

	m.auth.EXPECT().VerifyToken(gomock.Any(), "tok").Return("admin", true)
	m.users.EXPECT().ListUsernames(gomock.Any()).Return(nil, fmt.Errorf("listing users failed: %w", store.ErrStorageUnavailable))

	rr := serve(t, h, http.MethodGet, "/users", "", map[string]string{"Authorization": "Bearer tok"})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// ─────────────────────────────────────────────
// GET /health
// ─────────────────────────────────────────────

func TestHealth(t *testing.T) {
	h, m := newTestHandler(t)
	m.health.EXPECT().Check(gomock.Any()).Return(nil)

	rr := serve(t, h, http.MethodGet, "/health", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestHealth_StorageDown(t *testing.T) {
	h, m := newTestHandler(t)
	m.health.EXPECT().Check(gomock.Any()).DoAndReturn(func(context.Context) error {
		return store.ErrStorageUnavailable
	})

	rr := serve(t, h, http.MethodGet, "/health", "", nil)

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, rr.Body.String())
}
