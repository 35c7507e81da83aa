// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// PasskeyStartRegistrationInput carries the enrollment token.
type PasskeyStartRegistrationInput struct {
	MFAToken string
}

// PasskeyStartRegistrationOutput returns the credential creation options as
// serialized JSON for the browser's navigator.credentials.create call.
type PasskeyStartRegistrationOutput struct {
	Challenge json.RawMessage `json:"challenge"`
}

// PasskeyFinishRegistrationInput carries the enrollment token and the
// attestation response produced by the authenticator.
type PasskeyFinishRegistrationInput struct {
	MFAToken string
	Response json.RawMessage
}

// StartPasskeyRegistration stages a passkey enrollment. Existing credentials
// are excluded from the challenge so an authenticator is never registered
// twice for the same user.
func (s *Service) StartPasskeyRegistration(ctx context.Context, in PasskeyStartRegistrationInput) (*PasskeyStartRegistrationOutput, error) {
	user, err := s.userFromToken(ctx, in.MFAToken, TokenTypeMFARegistration)
	if err != nil {
		return nil, err
	}

	if err := s.hsm.Set(ctx, user.ID, WebAuthnRegStateKey, ""); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetHSMStore, err)
	}

	challenge, state, err := s.passkeys.StartRegistration(user)
	if err != nil {
		return nil, wrapEngineErr(err)
	}

	if err := s.hsm.Set(ctx, user.ID, WebAuthnRegStateKey, state); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetHSMStore, err)
	}

	return &PasskeyStartRegistrationOutput{Challenge: json.RawMessage(challenge)}, nil
}

// FinishPasskeyRegistration consumes the staged enrollment, finalizes the
// credential with the engine, and appends it to the user's passkeys.
func (s *Service) FinishPasskeyRegistration(ctx context.Context, in PasskeyFinishRegistrationInput) error {
	user, err := s.userFromToken(ctx, in.MFAToken, TokenTypeMFARegistration)
	if err != nil {
		return err
	}

	state, ok, err := s.hsm.Get(ctx, user.ID, WebAuthnRegStateKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGetHSMStore, err)
	}
	if err := s.hsm.Set(ctx, user.ID, WebAuthnRegStateKey, ""); err != nil {
		return fmt.Errorf("%w: %w", ErrSetHSMStore, err)
	}
	if !ok || state == "" {
		return ErrWebAuthnRegistrationNotFound
	}

	passkey, err := s.passkeys.FinishRegistration(user, state, in.Response)
	if err != nil {
		return wrapEngineErr(err)
	}

	user.Passkeys = append(user.Passkeys, *passkey)
	if err := s.users.Save(ctx, user); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveUser, err)
	}

	return nil
}

// wrapEngineErr keeps serialization failures distinguishable from ceremony
// failures.
func wrapEngineErr(err error) error {
	if errors.Is(err, ErrSerialization) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrWebAuthn, err)
}
