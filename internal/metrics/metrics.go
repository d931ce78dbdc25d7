// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the prometheus collectors of the auth service.
//
// Collectors live on an [AuthMetrics] value instead of package globals so
// every test can register a fresh set on its own registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Login outcomes recorded in auth_login_attempts_total.
const (
	OutcomeSuccess            = "success"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeInvalidRequest     = "invalid_request"
	OutcomeError              = "error"
)

// Token verification results recorded in auth_token_verifications_total.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
)

// Password hashing operations recorded in auth_password_hash_duration_seconds.
const (
	OperationHash   = "hash"
	OperationVerify = "verify"
)

// AuthMetrics groups the counters and histograms updated by the auth service.
type AuthMetrics struct {
	LoginAttempts      *prometheus.CounterVec
	TokenVerifications *prometheus.CounterVec
	HashDuration       *prometheus.HistogramVec
}

// NewAuthMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered, which is convenient in tests.
// Panics if registration fails (following prometheus convention).
func NewAuthMetrics(reg prometheus.Registerer) *AuthMetrics {
	m := &AuthMetrics{
		LoginAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_login_attempts_total",
				Help: "Total number of login attempts by outcome",
			},
			[]string{"outcome"},
		),
		TokenVerifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_token_verifications_total",
				Help: "Total number of bearer token verifications by result",
			},
			[]string{"result"},
		),
		HashDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "auth_password_hash_duration_seconds",
				Help:    "Time spent hashing or verifying passwords in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"operation"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.LoginAttempts, m.TokenVerifications, m.HashDuration)
	}

	return m
}

// RecordLogin increments the login counter for outcome (use Outcome* constants).
func (m *AuthMetrics) RecordLogin(outcome string) {
	if m == nil {
		return
	}
	m.LoginAttempts.WithLabelValues(outcome).Inc()
}

// RecordTokenVerification increments the verification counter.
func (m *AuthMetrics) RecordTokenVerification(valid bool) {
	if m == nil {
		return
	}
	result := ResultInvalid
	if valid {
		result = ResultValid
	}
	m.TokenVerifications.WithLabelValues(result).Inc()
}

// ObserveHash records how long a hash or verify operation took.
func (m *AuthMetrics) ObserveHash(operation string, d time.Duration) {
	if m == nil {
		return
	}
	m.HashDuration.WithLabelValues(operation).Observe(d.Seconds())
}
