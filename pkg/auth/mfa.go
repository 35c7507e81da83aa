// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MFARegistrationInput carries the access token opening the enrollment window.
type MFARegistrationInput struct {
	AccessToken string
}

// MFARegistrationOutput grants a short-lived enrollment token and lists the
// factors that can be enrolled with it.
type MFARegistrationOutput struct {
	MFARegistration string   `json:"mfa_registration"`
	AllowedMethods  []string `json:"allowed_methods"`
	ExpiresIn       int      `json:"expires_in"`
}

// GetMFARegistration exchanges a valid access token for an enrollment token.
func (s *Service) GetMFARegistration(ctx context.Context, in MFARegistrationInput) (*MFARegistrationOutput, error) {
	user, err := s.userFromToken(ctx, in.AccessToken, TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	expiresIn := int(MFARegistrationTTL / time.Second)
	token, err := s.tokens.CreateToken(ctx, Claims{
		Subject:   user.ID.String(),
		TokenType: TokenTypeMFARegistration,
		ExpiresAt: time.Now().Add(MFARegistrationTTL),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMFATokenCreationFailed, err)
	}

	return &MFARegistrationOutput{
		MFARegistration: token,
		AllowedMethods:  []string{"totp", "webauthn"},
		ExpiresIn:       expiresIn,
	}, nil
}

// userFromToken validates the token as the required type and loads the user
// its subject refers to.
func (s *Service) userFromToken(ctx context.Context, token string, required TokenType) (*User, error) {
	claims, err := s.tokens.ValidateToken(ctx, token, required)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenValidationFailed, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrFindUser, err)
	}
	return user, nil
}
