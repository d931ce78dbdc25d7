// Package utils provides general-purpose helper utilities used across the
// go-auth-service application: context keys, JSON response writing, the
// HTTP client wrapper and JWT issuing and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey is the key under which the auth middleware stores the
// username taken from a verified bearer token.
var SubjectCtxKey = contextKey("subject")

// WithSubject returns a copy of ctx carrying the authenticated username.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, SubjectCtxKey, subject)
}

// GetSubjectFromContext retrieves the authenticated username from the
// context. ok is false when the value is missing, empty or of the wrong type.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok && subject != ""
}
