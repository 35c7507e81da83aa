// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

// Package passkeys adapts the go-webauthn library to the core's passkey
// engine capability. Challenges and ceremony state cross the boundary as
// serialized JSON so the core can stage them in its transient store without
// knowing their shape.
package passkeys

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"

	"github.com/authgate/authgate/pkg/auth"
)

// Config identifies the relying party. The engine does not interpret these
// beyond handing them to the library.
type Config struct {
	// RPID is the relying-party id, typically the site's effective domain.
	RPID string

	// RPOrigin is the origin the browser must report, e.g. "https://example.com".
	RPOrigin string

	// RPDisplayName is shown by authenticators during ceremonies.
	RPDisplayName string
}

// Engine implements the core's passkey capability. It is safe for concurrent
// use; all state lives in the serialized session handed back to the caller.
type Engine struct {
	web *webauthn.WebAuthn
}

var _ auth.PasskeyEngine = (*Engine)(nil)

// New creates an engine for the given relying party.
func New(cfg Config) (*Engine, error) {
	web, err := webauthn.New(&webauthn.Config{
		RPDisplayName: cfg.RPDisplayName,
		RPID:          cfg.RPID,
		RPOrigins:     []string{cfg.RPOrigin},
	})
	if err != nil {
		return nil, fmt.Errorf("configure webauthn: %w", err)
	}
	return &Engine{web: web}, nil
}

// webAuthnUser adapts an auth.User to the library's user contract.
type webAuthnUser struct {
	user *auth.User
}

func (u *webAuthnUser) WebAuthnID() []byte {
	id := u.user.ID
	return id[:]
}

func (u *webAuthnUser) WebAuthnName() string {
	return u.user.Username
}

func (u *webAuthnUser) WebAuthnDisplayName() string {
	return u.user.Name
}

func (u *webAuthnUser) WebAuthnCredentials() []webauthn.Credential {
	creds := make([]webauthn.Credential, len(u.user.Passkeys))
	for i, pk := range u.user.Passkeys {
		creds[i] = pk.Credential
	}
	return creds
}

// StartRegistration begins a credential creation ceremony, excluding the
// user's existing credentials.
func (e *Engine) StartRegistration(user *auth.User) (string, string, error) {
	wu := &webAuthnUser{user: user}

	exclusions := make([]protocol.CredentialDescriptor, 0, len(user.Passkeys))
	for _, pk := range user.Passkeys {
		exclusions = append(exclusions, protocol.CredentialDescriptor{
			Type:         protocol.PublicKeyCredentialType,
			CredentialID: pk.ID,
		})
	}

	options, session, err := e.web.BeginRegistration(wu, webauthn.WithExclusions(exclusions))
	if err != nil {
		return "", "", fmt.Errorf("begin registration: %w", err)
	}

	return e.marshalCeremony(options, session)
}

// FinishRegistration validates the attestation response against the staged
// ceremony state and returns the new credential.
func (e *Engine) FinishRegistration(user *auth.User, state string, response []byte) (*auth.Passkey, error) {
	var session webauthn.SessionData
	if err := json.Unmarshal([]byte(state), &session); err != nil {
		return nil, fmt.Errorf("%w: decode registration state: %w", auth.ErrSerialization, err)
	}

	parsed, err := protocol.ParseCredentialCreationResponseBody(bytes.NewReader(response))
	if err != nil {
		return nil, fmt.Errorf("parse attestation response: %w", err)
	}

	cred, err := e.web.CreateCredential(&webAuthnUser{user: user}, session, parsed)
	if err != nil {
		return nil, fmt.Errorf("finish registration: %w", err)
	}

	return &auth.Passkey{Credential: *cred}, nil
}

// StartAuthentication begins an assertion ceremony over all of the user's
// registered credentials.
func (e *Engine) StartAuthentication(user *auth.User) (string, string, error) {
	options, session, err := e.web.BeginLogin(&webAuthnUser{user: user})
	if err != nil {
		return "", "", fmt.Errorf("begin authentication: %w", err)
	}

	return e.marshalCeremony(options, session)
}

// FinishAuthentication validates the assertion response and returns the
// matched credential with its updated authenticator metadata.
func (e *Engine) FinishAuthentication(user *auth.User, state string, response []byte) (*auth.Passkey, error) {
	var session webauthn.SessionData
	if err := json.Unmarshal([]byte(state), &session); err != nil {
		return nil, fmt.Errorf("%w: decode authentication state: %w", auth.ErrSerialization, err)
	}

	parsed, err := protocol.ParseCredentialRequestResponseBody(bytes.NewReader(response))
	if err != nil {
		return nil, fmt.Errorf("parse assertion response: %w", err)
	}

	cred, err := e.web.ValidateLogin(&webAuthnUser{user: user}, session, parsed)
	if err != nil {
		return nil, fmt.Errorf("finish authentication: %w", err)
	}

	return &auth.Passkey{Credential: *cred}, nil
}

func (e *Engine) marshalCeremony(options, session any) (string, string, error) {
	challenge, err := json.Marshal(options)
	if err != nil {
		return "", "", fmt.Errorf("%w: encode challenge: %w", auth.ErrSerialization, err)
	}

	state, err := json.Marshal(session)
	if err != nil {
		return "", "", fmt.Errorf("%w: encode ceremony state: %w", auth.ErrSerialization, err)
	}

	return string(challenge), string(state), nil
}
