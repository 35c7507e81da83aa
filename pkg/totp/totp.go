// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

// Package totp issues and checks RFC 6238 authenticator codes: SHA-1, six
// digits, a 30-second step, and one step of clock tolerance either way.
package totp

import (
	"fmt"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/authgate/authgate/pkg/auth"
)

// secretSize is the raw secret length in bytes before base32 encoding.
const secretSize = 21

const (
	period = 30
	skew   = 1
)

// Provider implements the core's TOTP capability.
type Provider struct {
	now func() time.Time
}

var _ auth.TOTPProvider = (*Provider)(nil)

// Option configures a Provider.
type Option func(*Provider)

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		p.now = now
	}
}

// New creates a TOTP provider.
func New(opts ...Option) *Provider {
	p := &Provider{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AuthURL generates a fresh secret and returns it alongside the otpauth://
// URL that enrolls it. The secret is base32 without padding, as produced by
// the key generator.
func (p *Provider) AuthURL(account, issuer string) (string, string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: account,
		SecretSize:  secretSize,
		Algorithm:   otp.AlgorithmSHA1,
		Digits:      otp.DigitsSix,
		Period:      period,
	})
	if err != nil {
		return "", "", fmt.Errorf("generate totp key: %w", err)
	}
	return key.Secret(), key.URL(), nil
}

// Verify checks the code against the secret for the current window with ±1
// step of tolerance. The comparison inside the validator is constant-time.
func (p *Provider) Verify(secret, code string) (bool, error) {
	valid, err := totp.ValidateCustom(code, secret, p.now().UTC(), totp.ValidateOpts{
		Period:    period,
		Skew:      skew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return false, fmt.Errorf("verify totp code: %w", err)
	}
	return valid, nil
}
