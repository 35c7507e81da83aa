// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package tokens

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lestrrat-go/jwx/v3/jwk"

	"github.com/authgate/authgate/pkg/auth"
)

// tokenClaims is the wire shape of the core's claims.
type tokenClaims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// CreateToken signs the claims with the current signing key. The JWS header
// carries alg=EdDSA and the signing key's kid.
func (s *Service) CreateToken(_ context.Context, claims auth.Claims) (string, error) {
	kid, key, err := s.signingKey()
	if err != nil {
		if errors.Is(err, ErrNoSigningKeys) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrTokenCreation, err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, tokenClaims{
		TokenType: string(claims.TokenType),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Subject,
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
	})
	token.Header["kid"] = kid

	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreation, err)
	}
	return signed, nil
}

// ValidateToken verifies the signature against the key named by the token's
// kid header, enforces expiration, and asserts the token_type claim.
func (s *Service) ValidateToken(_ context.Context, token string, required auth.TokenType) (*auth.Claims, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, s.verificationKey,
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.TokenType != string(required) {
		return nil, fmt.Errorf("%w: token_type %q does not authorize this operation", ErrInvalidToken, claims.TokenType)
	}

	return &auth.Claims{
		Subject:   claims.Subject,
		TokenType: auth.TokenType(claims.TokenType),
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// verificationKey resolves the token's kid against the cached public set.
func (s *Service) verificationKey(token *jwt.Token) (any, error) {
	kid, ok := token.Header["kid"].(string)
	if !ok {
		return nil, fmt.Errorf("token header missing kid")
	}

	set, _, err := s.publicKeySet()
	if err != nil {
		return nil, err
	}

	key, found := set.LookupKeyID(kid)
	if !found {
		return nil, fmt.Errorf("key id %q not found in key set", kid)
	}

	var raw any
	if err := jwk.Export(key, &raw); err != nil {
		return nil, fmt.Errorf("export key %q: %w", kid, err)
	}
	return raw, nil
}

// JWKS returns the public key set serialized as a JWK Set JSON object.
func (s *Service) JWKS(_ context.Context) ([]byte, error) {
	_, raw, err := s.publicKeySet()
	if err != nil {
		return nil, err
	}
	return raw, nil
}
