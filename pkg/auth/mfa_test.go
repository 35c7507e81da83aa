// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/authgate/authgate/pkg/auth"
)

func TestGetMFARegistration(t *testing.T) {
	t.Parallel()
	svc, deps := testService(t)

	user := testUser(t, "Sup3rSecret!")
	expectUserFromToken(deps, "access-token", auth.TokenTypeAccess, user)
	deps.tokens.EXPECT().
		CreateToken(gomock.Any(), claimsOfType(auth.TokenTypeMFARegistration)).
		Return("registration-token", nil)

	out, err := svc.GetMFARegistration(context.Background(), auth.MFARegistrationInput{
		AccessToken: "access-token",
	})
	require.NoError(t, err)

	assert.Equal(t, "registration-token", out.MFARegistration)
	assert.Equal(t, []string{"totp", "webauthn"}, out.AllowedMethods)
	assert.Equal(t, 180, out.ExpiresIn)
}

func TestGetMFARegistrationRejectsInvalidToken(t *testing.T) {
	t.Parallel()
	svc, deps := testService(t)

	deps.tokens.EXPECT().
		ValidateToken(gomock.Any(), "bogus", auth.TokenTypeAccess).
		Return(nil, errors.New("signature mismatch"))

	_, err := svc.GetMFARegistration(context.Background(), auth.MFARegistrationInput{
		AccessToken: "bogus",
	})
	require.ErrorIs(t, err, auth.ErrTokenValidationFailed)
}

func TestGetMFARegistrationRejectsNonUUIDSubject(t *testing.T) {
	t.Parallel()
	svc, deps := testService(t)

	deps.tokens.EXPECT().
		ValidateToken(gomock.Any(), "access-token", auth.TokenTypeAccess).
		Return(&auth.Claims{Subject: "not-a-uuid", TokenType: auth.TokenTypeAccess}, nil)

	_, err := svc.GetMFARegistration(context.Background(), auth.MFARegistrationInput{
		AccessToken: "access-token",
	})
	require.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestGetMFARegistrationRejectsDeletedUser(t *testing.T) {
	t.Parallel()
	svc, deps := testService(t)

	user := testUser(t, "Sup3rSecret!")
	deps.tokens.EXPECT().
		ValidateToken(gomock.Any(), "access-token", auth.TokenTypeAccess).
		Return(&auth.Claims{Subject: user.ID.String(), TokenType: auth.TokenTypeAccess}, nil)
	deps.users.EXPECT().
		FindByID(gomock.Any(), user.ID).
		Return(nil, auth.ErrUserNotFound)

	_, err := svc.GetMFARegistration(context.Background(), auth.MFARegistrationInput{
		AccessToken: "access-token",
	})
	require.ErrorIs(t, err, auth.ErrUserNotFound)
}
