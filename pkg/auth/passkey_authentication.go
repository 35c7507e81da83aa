// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// PasskeyStartAuthenticationInput carries the verification token issued by
// login.
type PasskeyStartAuthenticationInput struct {
	MFAToken string
}

// PasskeyStartAuthenticationOutput returns the credential request options as
// serialized JSON for the browser's navigator.credentials.get call.
type PasskeyStartAuthenticationOutput struct {
	Challenge json.RawMessage `json:"challenge"`
}

// PasskeyFinishAuthenticationInput carries the verification token and the
// assertion response produced by the authenticator.
type PasskeyFinishAuthenticationInput struct {
	MFAToken string
	Response json.RawMessage
}

// PasskeyFinishAuthenticationOutput completes the login with a fresh session.
type PasskeyFinishAuthenticationOutput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// StartPasskeyAuthentication stages a passkey login over all of the user's
// registered credentials.
func (s *Service) StartPasskeyAuthentication(ctx context.Context, in PasskeyStartAuthenticationInput) (*PasskeyStartAuthenticationOutput, error) {
	user, err := s.userFromToken(ctx, in.MFAToken, TokenTypeMFAVerification)
	if err != nil {
		return nil, err
	}

	if err := s.hsm.Set(ctx, user.ID, WebAuthnAuthStateKey, ""); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetHSMStore, err)
	}

	challenge, state, err := s.passkeys.StartAuthentication(user)
	if err != nil {
		return nil, wrapEngineErr(err)
	}

	if err := s.hsm.Set(ctx, user.ID, WebAuthnAuthStateKey, state); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetHSMStore, err)
	}

	return &PasskeyStartAuthenticationOutput{Challenge: json.RawMessage(challenge)}, nil
}

// FinishPasskeyAuthentication consumes the staged login, validates the
// assertion, updates the matched credential's counter, and authenticates the
// user.
func (s *Service) FinishPasskeyAuthentication(ctx context.Context, in PasskeyFinishAuthenticationInput) (*PasskeyFinishAuthenticationOutput, error) {
	user, err := s.userFromToken(ctx, in.MFAToken, TokenTypeMFAVerification)
	if err != nil {
		return nil, err
	}

	state, ok, err := s.hsm.Get(ctx, user.ID, WebAuthnAuthStateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGetHSMStore, err)
	}
	if err := s.hsm.Set(ctx, user.ID, WebAuthnAuthStateKey, ""); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetHSMStore, err)
	}
	if !ok || state == "" {
		return nil, ErrWebAuthnAuthenticationNotFound
	}

	updated, err := s.passkeys.FinishAuthentication(user, state, in.Response)
	if err != nil {
		return nil, wrapEngineErr(err)
	}

	for i := range user.Passkeys {
		if bytes.Equal(user.Passkeys[i].ID, updated.ID) {
			user.Passkeys[i].Authenticator.SignCount = updated.Authenticator.SignCount
			user.Passkeys[i].Authenticator.CloneWarning = updated.Authenticator.CloneWarning
			user.Passkeys[i].Flags = updated.Flags
		}
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSaveUser, err)
	}

	access, refresh, err := s.issueSessionTokens(ctx, user.ID.String())
	if err != nil {
		return nil, err
	}

	return &PasskeyFinishAuthenticationOutput{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
