// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"fmt"
)

// TOTPVerifyInput carries the verification token issued by login and the
// current authenticator code.
type TOTPVerifyInput struct {
	MFAToken string
	Code     string
}

// TOTPVerifyOutput completes the login with a fresh session.
type TOTPVerifyOutput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// VerifyTOTP checks the code against the user's enrolled secret and, on
// success, authenticates the user. A missing secret and a wrong code are
// indistinguishable to the caller.
func (s *Service) VerifyTOTP(ctx context.Context, in TOTPVerifyInput) (*TOTPVerifyOutput, error) {
	user, err := s.userFromToken(ctx, in.MFAToken, TokenTypeMFAVerification)
	if err != nil {
		return nil, err
	}

	if user.OTPSecret == "" {
		return nil, ErrInvalidUsernameOrPassword
	}

	valid, err := s.totp.Verify(user.OTPSecret, in.Code)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTOTP, err)
	}
	if !valid {
		return nil, ErrInvalidUsernameOrPassword
	}

	access, refresh, err := s.issueSessionTokens(ctx, user.ID.String())
	if err != nil {
		return nil, err
	}

	return &TOTPVerifyOutput{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
