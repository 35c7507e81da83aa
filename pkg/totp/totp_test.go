// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package totp

import (
	"net/url"
	"testing"
	"time"

	pqtotp "github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthURL(t *testing.T) {
	t.Parallel()

	p := New()
	secret, authURL, err := p.AuthURL("ada@example.com", "Authgate")
	require.NoError(t, err)
	require.NotEmpty(t, secret)

	u, err := url.Parse(authURL)
	require.NoError(t, err)

	assert.Equal(t, "otpauth", u.Scheme)
	assert.Equal(t, "totp", u.Host)
	assert.Contains(t, u.Path, "ada@example.com")
	assert.Equal(t, secret, u.Query().Get("secret"))
	assert.Equal(t, "Authgate", u.Query().Get("issuer"))
}

func TestAuthURLSecretsAreUnique(t *testing.T) {
	t.Parallel()

	p := New()
	first, _, err := p.AuthURL("ada@example.com", "Authgate")
	require.NoError(t, err)
	second, _, err := p.AuthURL("ada@example.com", "Authgate")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	p := New(WithClock(func() time.Time { return now }))

	secret, _, err := p.AuthURL("ada@example.com", "Authgate")
	require.NoError(t, err)

	code, err := pqtotp.GenerateCode(secret, now)
	require.NoError(t, err)

	valid, err := p.Verify(secret, code)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = p.Verify(secret, "000000")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestVerifyAllowsOneStepOfSkew(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	p := New(WithClock(func() time.Time { return now }))

	secret, _, err := p.AuthURL("ada@example.com", "Authgate")
	require.NoError(t, err)

	// A code from the previous step still verifies; two steps back does not.
	previous, err := pqtotp.GenerateCode(secret, now.Add(-30*time.Second))
	require.NoError(t, err)
	valid, err := p.Verify(secret, previous)
	require.NoError(t, err)
	assert.True(t, valid)

	stale, err := pqtotp.GenerateCode(secret, now.Add(-90*time.Second))
	require.NoError(t, err)
	valid, err = p.Verify(secret, stale)
	require.NoError(t, err)
	assert.False(t, valid)
}
