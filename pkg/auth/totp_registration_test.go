// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/authgate/authgate/pkg/auth"
)

const (
	testSecret  = "JBSWY3DPEHPK3PXP"
	testAuthURL = "otpauth://totp/Authgate:ada@example.com?secret=" + testSecret + "&issuer=Authgate"
)

func TestStartTOTPRegistration(t *testing.T) {
	t.Parallel()
	svc, deps := testService(t, auth.WithIssuer("Authgate"))

	user := testUser(t, "Sup3rSecret!")
	expectUserFromToken(deps, "registration-token", auth.TokenTypeMFARegistration, user)

	gomock.InOrder(
		// Stale state is cleared before the fresh secret is staged.
		deps.hsm.EXPECT().
			Set(gomock.Any(), user.ID, auth.TOTPRegStateKey, "").
			Return(nil),
		deps.totp.EXPECT().
			AuthURL(user.Username, "Authgate").
			Return(testSecret, testAuthURL, nil),
		deps.hsm.EXPECT().
			Set(gomock.Any(), user.ID, auth.TOTPRegStateKey, testAuthURL).
			Return(nil),
	)

	out, err := svc.StartTOTPRegistration(context.Background(), auth.TOTPStartRegistrationInput{
		MFAToken: "registration-token",
	})
	require.NoError(t, err)
	assert.Equal(t, testAuthURL, out.AuthURL)
}

func TestFinishTOTPRegistration(t *testing.T) {
	t.Parallel()
	svc, deps := testService(t)

	user := testUser(t, "Sup3rSecret!")
	expectUserFromToken(deps, "registration-token", auth.TokenTypeMFARegistration, user)

	deps.hsm.EXPECT().
		Get(gomock.Any(), user.ID, auth.TOTPRegStateKey).
		Return(testAuthURL, true, nil)
	deps.hsm.EXPECT().
		Set(gomock.Any(), user.ID, auth.TOTPRegStateKey, "").
		Return(nil)
	deps.totp.EXPECT().
		Verify(testSecret, "123456").
		Return(true, nil)
	expectSessionTokens(deps)

	var saved *auth.User
	deps.users.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *auth.User) error {
			saved = u
			return nil
		})

	out, err := svc.FinishTOTPRegistration(context.Background(), auth.TOTPFinishRegistrationInput{
		MFAToken: "registration-token",
		Code:     "123456",
	})
	require.NoError(t, err)

	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	require.NotNil(t, saved)
	assert.Equal(t, testSecret, saved.OTPSecret)
}

func TestFinishTOTPRegistrationWithoutStart(t *testing.T) {
	t.Parallel()
	svc, deps := testService(t)

	user := testUser(t, "Sup3rSecret!")
	expectUserFromToken(deps, "registration-token", auth.TokenTypeMFARegistration, user)

	deps.hsm.EXPECT().
		Get(gomock.Any(), user.ID, auth.TOTPRegStateKey).
		Return("", false, nil)
	deps.hsm.EXPECT().
		Set(gomock.Any(), user.ID, auth.TOTPRegStateKey, "").
		Return(nil)

	_, err := svc.FinishTOTPRegistration(context.Background(), auth.TOTPFinishRegistrationInput{
		MFAToken: "registration-token",
		Code:     "123456",
	})
	require.ErrorIs(t, err, auth.ErrTOTPRegistrationNotFound)
}

func TestFinishTOTPRegistrationConsumesState(t *testing.T) {
	t.Parallel()
	svc, deps := testService(t)

	// A cleared entry is present but empty; the flow must not resurrect it.
	user := testUser(t, "Sup3rSecret!")
	expectUserFromToken(deps, "registration-token", auth.TokenTypeMFARegistration, user)

	deps.hsm.EXPECT().
		Get(gomock.Any(), user.ID, auth.TOTPRegStateKey).
		Return("", true, nil)
	deps.hsm.EXPECT().
		Set(gomock.Any(), user.ID, auth.TOTPRegStateKey, "").
		Return(nil)

	_, err := svc.FinishTOTPRegistration(context.Background(), auth.TOTPFinishRegistrationInput{
		MFAToken: "registration-token",
		Code:     "123456",
	})
	require.ErrorIs(t, err, auth.ErrTOTPRegistrationNotFound)
}

func TestFinishTOTPRegistrationWrongCode(t *testing.T) {
	t.Parallel()
	svc, deps := testService(t)

	user := testUser(t, "Sup3rSecret!")
	expectUserFromToken(deps, "registration-token", auth.TokenTypeMFARegistration, user)

	deps.hsm.EXPECT().
		Get(gomock.Any(), user.ID, auth.TOTPRegStateKey).
		Return(testAuthURL, true, nil)
	deps.hsm.EXPECT().
		Set(gomock.Any(), user.ID, auth.TOTPRegStateKey, "").
		Return(nil)
	deps.totp.EXPECT().
		Verify(testSecret, "000000").
		Return(false, nil)

	_, err := svc.FinishTOTPRegistration(context.Background(), auth.TOTPFinishRegistrationInput{
		MFAToken: "registration-token",
		Code:     "000000",
	})
	require.ErrorIs(t, err, auth.ErrMFATokenCreationFailed)
}

func TestFinishTOTPRegistrationRejectsVerificationToken(t *testing.T) {
	t.Parallel()
	svc, deps := testService(t)

	deps.tokens.EXPECT().
		ValidateToken(gomock.Any(), "verification-token", auth.TokenTypeMFARegistration).
		Return(nil, auth.ErrTokenValidationFailed)

	_, err := svc.FinishTOTPRegistration(context.Background(), auth.TOTPFinishRegistrationInput{
		MFAToken: "verification-token",
		Code:     "123456",
	})
	require.ErrorIs(t, err, auth.ErrTokenValidationFailed)
}
