// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import "time"

// TokenType names the MFA state a token certifies. The type is carried in the
// token_type claim and enforced by the token service on validation, so a
// token issued for one step cannot unlock another.
type TokenType string

// The closed set of token types.
const (
	TokenTypeMFARegistration TokenType = "mfa_registration"
	TokenTypeMFAVerification TokenType = "mfa_verification"
	TokenTypeAccess          TokenType = "access"
	TokenTypeRefresh         TokenType = "refresh"
)

// Lifetimes for each token type.
const (
	AccessTokenTTL     = 10 * time.Minute
	RefreshTokenTTL    = 7 * 24 * time.Hour
	MFAVerificationTTL = 5 * time.Minute
	MFARegistrationTTL = 3 * time.Minute
)

// Claims is the content of an issued token.
type Claims struct {
	// Subject is the user id rendered as text.
	Subject string

	// TokenType binds the token to one MFA state.
	TokenType TokenType

	// ExpiresAt is enforced at validation time.
	ExpiresAt time.Time
}
