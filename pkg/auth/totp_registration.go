// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"fmt"
	"net/url"
)

// TOTPStartRegistrationInput carries the enrollment token.
type TOTPStartRegistrationInput struct {
	MFAToken string
}

// TOTPStartRegistrationOutput returns the otpauth:// URL the client renders
// as a QR code.
type TOTPStartRegistrationOutput struct {
	AuthURL string `json:"auth_url"`
}

// TOTPFinishRegistrationInput carries the enrollment token and the first code
// from the authenticator.
type TOTPFinishRegistrationInput struct {
	MFAToken string
	Code     string
}

// TOTPFinishRegistrationOutput completes the flow with a fresh session.
type TOTPFinishRegistrationOutput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// StartTOTPRegistration generates a fresh secret and stages the enrollment.
// The transient entry is cleared before the new state is written so a stale
// challenge can never survive a restart of the flow.
func (s *Service) StartTOTPRegistration(ctx context.Context, in TOTPStartRegistrationInput) (*TOTPStartRegistrationOutput, error) {
	user, err := s.userFromToken(ctx, in.MFAToken, TokenTypeMFARegistration)
	if err != nil {
		return nil, err
	}

	if err := s.hsm.Set(ctx, user.ID, TOTPRegStateKey, ""); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetHSMStore, err)
	}

	_, authURL, err := s.totp.AuthURL(user.Username, s.issuer)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTOTP, err)
	}

	if err := s.hsm.Set(ctx, user.ID, TOTPRegStateKey, authURL); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetHSMStore, err)
	}

	return &TOTPStartRegistrationOutput{AuthURL: authURL}, nil
}

// FinishTOTPRegistration consumes the staged enrollment and, when the code
// matches, persists the secret and authenticates the user. The transient
// entry is cleared whether or not the code matches.
func (s *Service) FinishTOTPRegistration(ctx context.Context, in TOTPFinishRegistrationInput) (*TOTPFinishRegistrationOutput, error) {
	user, err := s.userFromToken(ctx, in.MFAToken, TokenTypeMFARegistration)
	if err != nil {
		return nil, err
	}

	state, ok, err := s.hsm.Get(ctx, user.ID, TOTPRegStateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGetHSMStore, err)
	}
	if err := s.hsm.Set(ctx, user.ID, TOTPRegStateKey, ""); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetHSMStore, err)
	}
	if !ok || state == "" {
		return nil, ErrTOTPRegistrationNotFound
	}

	secret, err := secretFromAuthURL(state)
	if err != nil {
		return nil, ErrTOTPRegistrationNotFound
	}

	valid, err := s.totp.Verify(secret, in.Code)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTOTP, err)
	}
	if !valid {
		return nil, ErrMFATokenCreationFailed
	}

	access, refresh, err := s.issueSessionTokens(ctx, user.ID.String())
	if err != nil {
		return nil, err
	}

	user.OTPSecret = secret
	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSaveUser, err)
	}

	return &TOTPFinishRegistrationOutput{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// secretFromAuthURL recovers the secret query parameter from the staged
// otpauth:// URL.
func secretFromAuthURL(authURL string) (string, error) {
	u, err := url.Parse(authURL)
	if err != nil {
		return "", err
	}
	secret := u.Query().Get("secret")
	if secret == "" {
		return "", fmt.Errorf("auth url has no secret parameter")
	}
	return secret, nil
}
