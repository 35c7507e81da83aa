// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// LoginInput carries the password credentials.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput is one of two shapes: a verification token plus the allowed
// second-factor methods when any factor is enrolled, or an access/refresh
// pair when none is.
type LoginOutput struct {
	MFAVerificationToken string   `json:"mfa_verification_token,omitempty"`
	AllowedMethods       []string `json:"allowed_methods,omitempty"`
	AccessToken          string   `json:"access_token,omitempty"`
	RefreshToken         string   `json:"refresh_token,omitempty"`
}

// Second-factor method names announced to clients.
const (
	MethodOTP     = "otp"
	MethodPasskey = "passkey"
)

// Login checks the password and either gates the caller behind second-factor
// verification or, when no factor is enrolled, authenticates directly.
func (s *Service) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	user, err := s.users.FindByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrFindUser, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(in.Password)); err != nil {
		return nil, ErrInvalidUsernameOrPassword
	}

	var methods []string
	if user.OTPSecret != "" {
		methods = append(methods, MethodOTP)
	}
	if len(user.Passkeys) > 0 {
		methods = append(methods, MethodPasskey)
	}

	if len(methods) > 0 {
		token, err := s.tokens.CreateToken(ctx, Claims{
			Subject:   user.ID.String(),
			TokenType: TokenTypeMFAVerification,
			ExpiresAt: time.Now().Add(MFAVerificationTTL),
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMFATokenCreationFailed, err)
		}
		return &LoginOutput{
			MFAVerificationToken: token,
			AllowedMethods:       methods,
		}, nil
	}

	access, refresh, err := s.issueSessionTokens(ctx, user.ID.String())
	if err != nil {
		return nil, err
	}
	return &LoginOutput{AccessToken: access, RefreshToken: refresh}, nil
}

// issueSessionTokens mints the access/refresh pair that completes an
// authentication flow.
func (s *Service) issueSessionTokens(ctx context.Context, subject string) (access, refresh string, err error) {
	refresh, err = s.tokens.CreateToken(ctx, Claims{
		Subject:   subject,
		TokenType: TokenTypeRefresh,
		ExpiresAt: time.Now().Add(RefreshTokenTTL),
	})
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrRefreshTokenCreationFailed, err)
	}

	access, err = s.tokens.CreateToken(ctx, Claims{
		Subject:   subject,
		TokenType: TokenTypeAccess,
		ExpiresAt: time.Now().Add(AccessTokenTTL),
	})
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrAccessTokenCreationFailed, err)
	}

	return access, refresh, nil
}
