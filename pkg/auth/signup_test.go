// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/authgate/authgate/pkg/auth"
)

func TestSignup(t *testing.T) {
	t.Parallel()
	svc, deps := testService(t)

	var saved *auth.User
	deps.users.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *auth.User) error {
			saved = user
			return nil
		})

	out, err := svc.Signup(context.Background(), auth.SignupInput{
		Name:     "Ada Lovelace",
		Username: "ada@example.com",
		Password: "Sup3rSecret!",
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, saved.ID, out.UserID)
	assert.NotEqual(t, uuid.Nil, out.UserID)
	assert.Equal(t, "Ada Lovelace", saved.Name)
	assert.Equal(t, "ada@example.com", saved.Username)
	assert.Empty(t, saved.OTPSecret)
	assert.Empty(t, saved.Passkeys)

	// The stored hash verifies the original password and nothing else.
	require.NoError(t, bcrypt.CompareHashAndPassword(saved.PasswordHash, []byte("Sup3rSecret!")))
	require.Error(t, bcrypt.CompareHashAndPassword(saved.PasswordHash, []byte("wrong")))
}

func TestSignupSaveFailure(t *testing.T) {
	t.Parallel()
	svc, deps := testService(t)

	deps.users.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	_, err := svc.Signup(context.Background(), auth.SignupInput{
		Name:     "Ada Lovelace",
		Username: "ada@example.com",
		Password: "Sup3rSecret!",
	})
	require.ErrorIs(t, err, auth.ErrSaveUser)
}
