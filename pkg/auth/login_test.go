// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/authgate/authgate/pkg/auth"
)

func TestLoginUnknownUser(t *testing.T) {
	t.Parallel()
	svc, deps := testService(t)

	deps.users.EXPECT().
		FindByUsername(gomock.Any(), "ghost@example.com").
		Return(nil, auth.ErrUserNotFound)

	_, err := svc.Login(context.Background(), auth.LoginInput{
		Username: "ghost@example.com",
		Password: "whatever",
	})
	require.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()
	svc, deps := testService(t)

	user := testUser(t, "Sup3rSecret!")
	deps.users.EXPECT().
		FindByUsername(gomock.Any(), user.Username).
		Return(user, nil)

	_, err := svc.Login(context.Background(), auth.LoginInput{
		Username: user.Username,
		Password: "not-the-password",
	})
	require.ErrorIs(t, err, auth.ErrInvalidUsernameOrPassword)
}

func TestLoginNoFactorIssuesSession(t *testing.T) {
	t.Parallel()
	svc, deps := testService(t)

	user := testUser(t, "Sup3rSecret!")
	deps.users.EXPECT().
		FindByUsername(gomock.Any(), user.Username).
		Return(user, nil)
	expectSessionTokens(deps)

	out, err := svc.Login(context.Background(), auth.LoginInput{
		Username: user.Username,
		Password: "Sup3rSecret!",
	})
	require.NoError(t, err)

	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Empty(t, out.MFAVerificationToken)
	assert.Empty(t, out.AllowedMethods)
}

func TestLoginWithFactorsGatesSession(t *testing.T) {
	t.Parallel()
	svc, deps := testService(t)

	user := testUser(t, "Sup3rSecret!")
	user.OTPSecret = "JBSWY3DPEHPK3PXP"
	user.Passkeys = []auth.Passkey{{Credential: webauthn.Credential{ID: []byte("cred-1")}}}

	deps.users.EXPECT().
		FindByUsername(gomock.Any(), user.Username).
		Return(user, nil)
	deps.tokens.EXPECT().
		CreateToken(gomock.Any(), claimsOfType(auth.TokenTypeMFAVerification)).
		Return("verification-token", nil)

	out, err := svc.Login(context.Background(), auth.LoginInput{
		Username: user.Username,
		Password: "Sup3rSecret!",
	})
	require.NoError(t, err)

	assert.Equal(t, "verification-token", out.MFAVerificationToken)
	assert.Equal(t, []string{auth.MethodOTP, auth.MethodPasskey}, out.AllowedMethods)
	assert.Empty(t, out.AccessToken)
	assert.Empty(t, out.RefreshToken)
}

func TestLoginVerificationTokenFailure(t *testing.T) {
	t.Parallel()
	svc, deps := testService(t)

	user := testUser(t, "Sup3rSecret!")
	user.OTPSecret = "JBSWY3DPEHPK3PXP"

	deps.users.EXPECT().
		FindByUsername(gomock.Any(), user.Username).
		Return(user, nil)
	deps.tokens.EXPECT().
		CreateToken(gomock.Any(), claimsOfType(auth.TokenTypeMFAVerification)).
		Return("", errors.New("no signing key"))

	_, err := svc.Login(context.Background(), auth.LoginInput{
		Username: user.Username,
		Password: "Sup3rSecret!",
	})
	require.ErrorIs(t, err, auth.ErrMFATokenCreationFailed)
}

func TestLoginRefreshTokenFailure(t *testing.T) {
	t.Parallel()
	svc, deps := testService(t)

	user := testUser(t, "Sup3rSecret!")
	deps.users.EXPECT().
		FindByUsername(gomock.Any(), user.Username).
		Return(user, nil)
	deps.tokens.EXPECT().
		CreateToken(gomock.Any(), claimsOfType(auth.TokenTypeRefresh)).
		Return("", errors.New("no signing key"))

	_, err := svc.Login(context.Background(), auth.LoginInput{
		Username: user.Username,
		Password: "Sup3rSecret!",
	})
	require.ErrorIs(t, err, auth.ErrRefreshTokenCreationFailed)
}
