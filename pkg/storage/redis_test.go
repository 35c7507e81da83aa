// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authgate/authgate/pkg/auth"
)

func redisTestStore(t *testing.T, opts ...RedisOption) (*RedisHSMStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return NewRedisHSMStore(client, opts...), mr
}

func TestRedisHSMStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, _ := redisTestStore(t)
	userID := uuid.New()

	_, ok, err := store.Get(ctx, userID, auth.WebAuthnRegStateKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, userID, auth.WebAuthnRegStateKey, "staged"))

	value, ok, err := store.Get(ctx, userID, auth.WebAuthnRegStateKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "staged", value)

	// A cleared entry stays present with an empty value.
	require.NoError(t, store.Set(ctx, userID, auth.WebAuthnRegStateKey, ""))

	value, ok, err = store.Get(ctx, userID, auth.WebAuthnRegStateKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, value)
}

func TestRedisHSMStoreKeyNamespacing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, mr := redisTestStore(t)
	userID := uuid.New()

	require.NoError(t, store.Set(ctx, userID, auth.TOTPRegStateKey, "staged"))

	// Entries live under the authgate:hsm: prefix keyed by user and flow.
	assert.True(t, mr.Exists(hsmKeyPrefix+userID.String()+":"+auth.TOTPRegStateKey))
}

func TestRedisHSMStoreTTL(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, mr := redisTestStore(t, WithTTL(time.Minute))
	userID := uuid.New()

	require.NoError(t, store.Set(ctx, userID, auth.TOTPRegStateKey, "staged"))

	mr.FastForward(2 * time.Minute)

	_, ok, err := store.Get(ctx, userID, auth.TOTPRegStateKey)
	require.NoError(t, err)
	assert.False(t, ok)
}
