// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/authgate/authgate/pkg/auth"
)

// hsmKeyPrefix namespaces flow-state entries so the store can share a Redis
// database with other tenants.
const hsmKeyPrefix = "authgate:hsm:"

// RedisHSMStore keeps transient flow state in Redis so that the start and
// finish of a flow can land on different nodes.
type RedisHSMStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

var _ auth.HSMStore = (*RedisHSMStore)(nil)

// RedisOption configures a RedisHSMStore.
type RedisOption func(*RedisHSMStore)

// WithTTL sets an expiry on stored entries. Zero means entries never expire.
func WithTTL(ttl time.Duration) RedisOption {
	return func(s *RedisHSMStore) {
		s.ttl = ttl
	}
}

// NewRedisHSMStore creates an HSM store over the given client.
func NewRedisHSMStore(client redis.UniversalClient, opts ...RedisOption) *RedisHSMStore {
	s := &RedisHSMStore{client: client}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func hsmKey(userID uuid.UUID, key string) string {
	return hsmKeyPrefix + userID.String() + ":" + key
}

// Get returns the stored value and whether the entry exists.
func (s *RedisHSMStore) Get(ctx context.Context, userID uuid.UUID, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, hsmKey(userID, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return value, true, nil
}

// Set stores the value, overwriting any previous entry.
func (s *RedisHSMStore) Set(ctx context.Context, userID uuid.UUID, key, value string) error {
	if err := s.client.Set(ctx, hsmKey(userID, key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
