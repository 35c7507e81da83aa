// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"bytes"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/google/uuid"
)

// Passkey is a registered WebAuthn credential. The core treats it as opaque
// except for its credential ID and signature counter, which the engine
// updates after each successful authentication.
type Passkey struct {
	webauthn.Credential
}

func (p Passkey) clone() Passkey {
	c := p
	c.ID = bytes.Clone(p.ID)
	c.PublicKey = bytes.Clone(p.PublicKey)
	c.Transport = append([]protocol.AuthenticatorTransport(nil), p.Transport...)
	c.Authenticator.AAGUID = bytes.Clone(p.Authenticator.AAGUID)
	return c
}

// User is an account record. Username is the unique lookup key; the id is the
// stable subject carried in token claims.
type User struct {
	ID           uuid.UUID
	Name         string
	Username     string
	PasswordHash []byte

	// OTPSecret is the base32 TOTP secret, empty until enrollment finishes.
	OTPSecret string

	// Passkeys holds the registered WebAuthn credentials in enrollment order.
	Passkeys []Passkey
}

// NewUser creates a user with a fresh id, no TOTP secret, and no passkeys.
func NewUser(name, username string, passwordHash []byte) *User {
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Username:     username,
		PasswordHash: passwordHash,
	}
}

// Clone returns a deep copy. The repository hands out and accepts clones so
// the stored record is never aliased by callers.
func (u *User) Clone() *User {
	c := *u
	c.PasswordHash = bytes.Clone(u.PasswordHash)
	if u.Passkeys != nil {
		c.Passkeys = make([]Passkey, len(u.Passkeys))
		for i := range u.Passkeys {
			c.Passkeys[i] = u.Passkeys[i].clone()
		}
	}
	return &c
}
