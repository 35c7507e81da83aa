// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package auth

//go:generate mockgen -destination=mocks/mock_ports.go -package=mocks -source=ports.go

import (
	"context"

	"github.com/google/uuid"
)

// Transient state keys held in the HSM store, one per in-flight enrollment or
// authentication flow. A flow's "start" clears and rewrites its key; the
// "finish" consumes it whether or not the cryptographic check succeeds.
const (
	TOTPRegStateKey      = "totp/reg/state"
	WebAuthnRegStateKey  = "webauthn/reg/state"
	WebAuthnAuthStateKey = "webauthn/auth/state"
)

// UserRepository persists and looks up users. Save upserts by username.
// Lookups return ErrUserNotFound when no user matches; implementations hand
// out deep copies so the stored record is the single source of truth.
type UserRepository interface {
	Save(ctx context.Context, user *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
}

// HSMStore maps (user id, key name) to a string value. Get reports whether
// the entry exists; an existing empty value means the entry was intentionally
// cleared.
type HSMStore interface {
	Get(ctx context.Context, userID uuid.UUID, key string) (value string, ok bool, err error)
	Set(ctx context.Context, userID uuid.UUID, key, value string) error
}

// TokenService signs claims, validates tokens, and publishes the JWK set
// used to verify them.
type TokenService interface {
	// CreateToken signs the claims with the current signing key.
	CreateToken(ctx context.Context, claims Claims) (string, error)

	// ValidateToken verifies the signature and expiration, then asserts the
	// token_type claim matches required.
	ValidateToken(ctx context.Context, token string, required TokenType) (*Claims, error)

	// JWKS returns the public key set as serialized JSON.
	JWKS(ctx context.Context) ([]byte, error)
}

// TOTPProvider issues and checks authenticator-app codes.
type TOTPProvider interface {
	// AuthURL generates a fresh secret and the otpauth:// URL that enrolls it.
	AuthURL(account, issuer string) (secret, url string, err error)

	// Verify checks a 6-digit code against the secret for the current window.
	Verify(secret, code string) (bool, error)
}

// PasskeyEngine wraps the WebAuthn ceremony. Challenges and per-flow state
// are exchanged as serialized JSON strings; state produced by a "start" must
// be handed back verbatim to the matching "finish". Implementations wrap
// state encoding failures with ErrSerialization.
type PasskeyEngine interface {
	StartRegistration(user *User) (challenge, state string, err error)
	FinishRegistration(user *User, state string, response []byte) (*Passkey, error)
	StartAuthentication(user *User) (challenge, state string, err error)
	FinishAuthentication(user *User, state string, response []byte) (*Passkey, error)
}
