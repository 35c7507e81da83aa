// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// SignupInput carries the new account's credentials.
type SignupInput struct {
	Name     string
	Username string
	Password string
}

// SignupOutput identifies the created user.
type SignupOutput struct {
	UserID uuid.UUID `json:"user_id"`
}

// Signup hashes the password and persists a fresh user with no second factor
// enrolled. Saving is an upsert by username: signing up an existing username
// replaces the account.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*SignupOutput, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBcrypt, err)
	}

	user := NewUser(in.Name, in.Username, hash)
	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSaveUser, err)
	}

	s.logger.Debug("user created", "user_id", user.ID)
	return &SignupOutput{UserID: user.ID}, nil
}
