// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authgate/authgate/pkg/auth"
)

func TestVerifyTOTP(t *testing.T) {
	t.Parallel()
	svc, deps := testService(t)

	user := testUser(t, "Sup3rSecret!")
	user.OTPSecret = testSecret
	expectUserFromToken(deps, "verification-token", auth.TokenTypeMFAVerification, user)

	deps.totp.EXPECT().
		Verify(testSecret, "123456").
		Return(true, nil)
	expectSessionTokens(deps)

	out, err := svc.VerifyTOTP(context.Background(), auth.TOTPVerifyInput{
		MFAToken: "verification-token",
		Code:     "123456",
	})
	require.NoError(t, err)

	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
}

func TestVerifyTOTPWrongCode(t *testing.T) {
	t.Parallel()
	svc, deps := testService(t)

	user := testUser(t, "Sup3rSecret!")
	user.OTPSecret = testSecret
	expectUserFromToken(deps, "verification-token", auth.TokenTypeMFAVerification, user)

	deps.totp.EXPECT().
		Verify(testSecret, "000000").
		Return(false, nil)

	_, err := svc.VerifyTOTP(context.Background(), auth.TOTPVerifyInput{
		MFAToken: "verification-token",
		Code:     "000000",
	})
	require.ErrorIs(t, err, auth.ErrInvalidUsernameOrPassword)
}

func TestVerifyTOTPWithoutEnrollment(t *testing.T) {
	t.Parallel()
	svc, deps := testService(t)

	// No secret enrolled: the caller gets the same discriminant as a wrong
	// code, so there is no oracle for enrollment state.
	user := testUser(t, "Sup3rSecret!")
	expectUserFromToken(deps, "verification-token", auth.TokenTypeMFAVerification, user)

	_, err := svc.VerifyTOTP(context.Background(), auth.TOTPVerifyInput{
		MFAToken: "verification-token",
		Code:     "123456",
	})
	require.ErrorIs(t, err, auth.ErrInvalidUsernameOrPassword)
}
