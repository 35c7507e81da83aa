// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package tokens

import (
	"crypto/ed25519"
	"sync"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwk"

	"github.com/authgate/authgate/pkg/auth"
)

// DefaultCacheTTL is how long the signing key and the public set are cached
// before the key directory is re-read.
const DefaultCacheTTL = 10 * time.Minute

// Filename suffixes identifying the two halves of a key pair. The shared
// stem is the pair's kid.
const (
	privateKeySuffix = "_key.pem"
	publicKeySuffix  = "_public.pem"
)

// Service implements the core's token capability over a directory of
// Ed25519 key pairs.
type Service struct {
	dir      string
	cacheTTL time.Duration
	now      func() time.Time

	mu      sync.RWMutex
	signing *cachedSigner
	public  *cachedSet
}

var _ auth.TokenService = (*Service)(nil)

type cachedSigner struct {
	kid       string
	key       ed25519.PrivateKey
	expiresAt time.Time
}

type cachedSet struct {
	set       jwk.Set
	raw       []byte
	expiresAt time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithCacheTTL overrides the key cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.cacheTTL = ttl
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a token service reading key pairs from dir.
func New(dir string, opts ...Option) *Service {
	s := &Service{
		dir:      dir,
		cacheTTL: DefaultCacheTTL,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
