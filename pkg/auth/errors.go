// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import "errors"

// Every use case fails with exactly one of these errors, possibly wrapping a
// collaborator error as its cause. Callers discriminate with errors.Is; the
// HTTP layer maps them to generic 400/401 responses and logs the
// discriminant.
var (
	// ErrInvalidUsernameOrPassword is returned when the password check fails.
	ErrInvalidUsernameOrPassword = errors.New("invalid username or password")

	// ErrUserNotFound is returned when no user matches the given username or id.
	ErrUserNotFound = errors.New("user not found")

	// ErrMFATokenCreationFailed is returned when an MFA-step token cannot be
	// issued, and on a rejected TOTP enrollment code.
	ErrMFATokenCreationFailed = errors.New("failed to create MFA token")

	// ErrRefreshTokenCreationFailed is returned when a refresh token cannot be issued.
	ErrRefreshTokenCreationFailed = errors.New("failed to create refresh token")

	// ErrAccessTokenCreationFailed is returned when an access token cannot be issued.
	ErrAccessTokenCreationFailed = errors.New("failed to create access token")

	// ErrTokenValidationFailed is returned when a presented token is invalid,
	// expired, or of the wrong type for the operation.
	ErrTokenValidationFailed = errors.New("token validation failed")

	// ErrWebAuthnRegistrationNotFound is returned when no passkey registration
	// is in flight for the user.
	ErrWebAuthnRegistrationNotFound = errors.New("webauthn registration state not found")

	// ErrWebAuthnAuthenticationNotFound is returned when no passkey
	// authentication is in flight for the user.
	ErrWebAuthnAuthenticationNotFound = errors.New("webauthn authentication state not found")

	// ErrTOTPRegistrationNotFound is returned when no TOTP enrollment is in
	// flight for the user.
	ErrTOTPRegistrationNotFound = errors.New("totp registration state not found")

	// ErrGetHSMStore wraps a failed read of transient flow state.
	ErrGetHSMStore = errors.New("failed to read from hsm store")

	// ErrSetHSMStore wraps a failed write of transient flow state.
	ErrSetHSMStore = errors.New("failed to write to hsm store")

	// ErrBcrypt wraps a password hashing or verification failure.
	ErrBcrypt = errors.New("password hashing failed")

	// ErrSerialization wraps a failed encode or decode of flow state.
	ErrSerialization = errors.New("serialization failed")

	// ErrFindUser wraps a repository failure while loading a user.
	ErrFindUser = errors.New("failed to retrieve user data")

	// ErrSaveUser wraps a repository failure while persisting a user.
	ErrSaveUser = errors.New("failed to persist user data")

	// ErrTOTP wraps a TOTP provider failure.
	ErrTOTP = errors.New("totp operation failed")

	// ErrWebAuthn wraps a WebAuthn engine failure.
	ErrWebAuthn = errors.New("webauthn operation failed")

	// ErrJWKSFetchFailed is returned when the published key set cannot be built.
	ErrJWKSFetchFailed = errors.New("failed to fetch jwks")
)
