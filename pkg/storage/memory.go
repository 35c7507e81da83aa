// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

// Package storage provides the persistence backends behind the core's
// repository and HSM ports. The in-memory implementations back single-node
// deployments and tests; the Redis store backs multi-node deployments where
// in-flight enrollment state must be shared.
package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/authgate/authgate/pkg/auth"
)

// MemoryUserRepository keeps users in a map keyed by username. All reads and
// writes go through deep copies so callers never alias the stored record.
type MemoryUserRepository struct {
	mu         sync.RWMutex
	byUsername map[string]*auth.User
}

var _ auth.UserRepository = (*MemoryUserRepository)(nil)

// NewMemoryUserRepository creates an empty in-memory user repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byUsername: make(map[string]*auth.User),
	}
}

// Save upserts the user by username.
func (r *MemoryUserRepository) Save(_ context.Context, user *auth.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUsername[user.Username] = user.Clone()
	return nil
}

// FindByUsername returns a copy of the stored user, or ErrUserNotFound.
func (r *MemoryUserRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byUsername[username]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	return user.Clone(), nil
}

// FindByID scans for the user with the given id, or returns ErrUserNotFound.
func (r *MemoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.byUsername {
		if user.ID == id {
			return user.Clone(), nil
		}
	}
	return nil, auth.ErrUserNotFound
}

type hsmEntry struct {
	userID uuid.UUID
	key    string
}

// MemoryHSMStore keeps transient flow state in a map. An entry set to the
// empty string stays present, which is how cleared state is distinguished
// from state that never existed.
type MemoryHSMStore struct {
	mu      sync.RWMutex
	entries map[hsmEntry]string
}

var _ auth.HSMStore = (*MemoryHSMStore)(nil)

// NewMemoryHSMStore creates an empty in-memory HSM store.
func NewMemoryHSMStore() *MemoryHSMStore {
	return &MemoryHSMStore{
		entries: make(map[hsmEntry]string),
	}
}

// Get returns the stored value and whether the entry exists.
func (s *MemoryHSMStore) Get(_ context.Context, userID uuid.UUID, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[hsmEntry{userID: userID, key: key}]
	return value, ok, nil
}

// Set stores the value, overwriting any previous entry.
func (s *MemoryHSMStore) Set(_ context.Context, userID uuid.UUID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[hsmEntry{userID: userID, key: key}] = value
	return nil
}
