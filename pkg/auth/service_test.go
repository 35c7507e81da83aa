// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package auth_test

import (
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/authgate/authgate/pkg/auth"
	"github.com/authgate/authgate/pkg/auth/mocks"
)

// testDeps bundles the mocked collaborators behind a Service under test.
type testDeps struct {
	users    *mocks.MockUserRepository
	tokens   *mocks.MockTokenService
	totp     *mocks.MockTOTPProvider
	hsm      *mocks.MockHSMStore
	passkeys *mocks.MockPasskeyEngine
}

func testService(t *testing.T, opts ...auth.Option) (*auth.Service, *testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(func() {
		ctrl.Finish()
	})

	deps := &testDeps{
		users:    mocks.NewMockUserRepository(ctrl),
		tokens:   mocks.NewMockTokenService(ctrl),
		totp:     mocks.NewMockTOTPProvider(ctrl),
		hsm:      mocks.NewMockHSMStore(ctrl),
		passkeys: mocks.NewMockPasskeyEngine(ctrl),
	}

	svc := auth.NewService(deps.users, deps.tokens, deps.totp, deps.hsm, deps.passkeys, opts...)
	return svc, deps
}

// claimsOfType matches a CreateToken call by the token_type it mints.
func claimsOfType(tt auth.TokenType) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		claims, ok := x.(auth.Claims)
		return ok && claims.TokenType == tt
	})
}

// testUser builds a user with the given password already hashed.
func testUser(t *testing.T, password string) *auth.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	return &auth.User{
		ID:           uuid.New(),
		Name:         "Ada Lovelace",
		Username:     "ada@example.com",
		PasswordHash: hash,
	}
}

// expectSessionTokens wires the refresh-then-access pair every completed
// authentication mints.
func expectSessionTokens(deps *testDeps) {
	gomock.InOrder(
		deps.tokens.EXPECT().
			CreateToken(gomock.Any(), claimsOfType(auth.TokenTypeRefresh)).
			Return("refresh-token", nil),
		deps.tokens.EXPECT().
			CreateToken(gomock.Any(), claimsOfType(auth.TokenTypeAccess)).
			Return("access-token", nil),
	)
}

// expectUserFromToken wires token validation plus the user load that every
// bearer-gated use case performs.
func expectUserFromToken(deps *testDeps, token string, tt auth.TokenType, user *auth.User) {
	deps.tokens.EXPECT().
		ValidateToken(gomock.Any(), token, tt).
		Return(&auth.Claims{Subject: user.ID.String(), TokenType: tt}, nil)
	deps.users.EXPECT().
		FindByID(gomock.Any(), user.ID).
		Return(user, nil)
}
