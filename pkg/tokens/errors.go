// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package tokens

import "errors"

// Common errors
var (
	// ErrTokenCreation is returned when signing fails or no usable signing
	// key is available.
	ErrTokenCreation = errors.New("failed to create token")

	// ErrInvalidToken is returned for malformed tokens, unknown key ids,
	// signature mismatches, and token_type mismatches.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when the token's exp claim has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrNoSigningKeys is returned when the key directory holds no private keys.
	ErrNoSigningKeys = errors.New("no signing keys in key directory")

	// ErrJWKSLoad is returned when the public key set cannot be built.
	ErrJWKSLoad = errors.New("failed to load jwks")
)
