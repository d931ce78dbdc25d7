package models

import "time"

// Token is a signed, self-contained bearer credential.
//
// Tokens are never persisted: possession of a validly signed, unexpired token
// is the proof of identity.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"token"`

	// Subject is the username the token was issued for.
	Subject string `json:"-"`

	// IssuedAt is the moment the token was signed.
	IssuedAt time.Time `json:"-"`

	// ExpiresAt is the absolute expiry of the token.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
