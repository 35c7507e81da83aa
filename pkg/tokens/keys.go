// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package tokens

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lestrrat-go/jwx/v3/jwk"
)

// signingKey returns the cached current signing key, re-reading the key
// directory when the cache has expired. The current key is the private PEM
// whose filename stem sorts highest in descending lexicographic order.
func (s *Service) signingKey() (string, ed25519.PrivateKey, error) {
	s.mu.RLock()
	if c := s.signing; c != nil && s.now().Before(c.expiresAt) {
		s.mu.RUnlock()
		return c.kid, c.key, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.signing; c != nil && s.now().Before(c.expiresAt) {
		return c.kid, c.key, nil
	}

	stems, err := s.keyStems(privateKeySuffix)
	if err != nil {
		return "", nil, err
	}
	if len(stems) == 0 {
		return "", nil, ErrNoSigningKeys
	}

	// Descending sort: the newest timestamp-stemmed pair wins.
	sort.Sort(sort.Reverse(sort.StringSlice(stems)))
	kid := stems[0]

	key, err := s.readPrivateKey(kid)
	if err != nil {
		return "", nil, err
	}

	s.signing = &cachedSigner{
		kid:       kid,
		key:       key,
		expiresAt: s.now().Add(s.cacheTTL),
	}
	return kid, key, nil
}

// publicKeySet returns the cached JWK Set built from the public PEMs,
// re-reading the directory when the cache has expired. A miss never retries:
// one rebuild per call at most.
func (s *Service) publicKeySet() (jwk.Set, []byte, error) {
	s.mu.RLock()
	if c := s.public; c != nil && s.now().Before(c.expiresAt) {
		s.mu.RUnlock()
		return c.set, c.raw, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.public; c != nil && s.now().Before(c.expiresAt) {
		return c.set, c.raw, nil
	}

	stems, err := s.keyStems(publicKeySuffix)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrJWKSLoad, err)
	}
	sort.Strings(stems)

	set := jwk.NewSet()
	for _, kid := range stems {
		pub, err := s.readPublicKey(kid)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrJWKSLoad, err)
		}

		key, err := jwk.Import(pub)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: import %s: %w", ErrJWKSLoad, kid, err)
		}
		if err := key.Set(jwk.KeyIDKey, kid); err != nil {
			return nil, nil, fmt.Errorf("%w: set kid %s: %w", ErrJWKSLoad, kid, err)
		}
		if err := set.AddKey(key); err != nil {
			return nil, nil, fmt.Errorf("%w: add %s: %w", ErrJWKSLoad, kid, err)
		}
	}

	raw, err := json.Marshal(set)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrJWKSLoad, err)
	}

	s.public = &cachedSet{
		set:       set,
		raw:       raw,
		expiresAt: s.now().Add(s.cacheTTL),
	}
	return set, raw, nil
}

// keyStems lists the filename stems of directory entries ending in suffix.
func (s *Service) keyStems(suffix string) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read key directory: %w", err)
	}

	var stems []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, suffix) {
			stems = append(stems, strings.TrimSuffix(name, suffix))
		}
	}
	return stems, nil
}

func (s *Service) readPrivateKey(kid string) (ed25519.PrivateKey, error) {
	block, err := readPEM(filepath.Join(s.dir, kid+privateKeySuffix))
	if err != nil {
		return nil, err
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse private key %s: %w", kid, err)
	}

	key, ok := parsed.(ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key %s is %T, want Ed25519", kid, parsed)
	}
	return key, nil
}

func (s *Service) readPublicKey(kid string) (ed25519.PublicKey, error) {
	block, err := readPEM(filepath.Join(s.dir, kid+publicKeySuffix))
	if err != nil {
		return nil, err
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key %s: %w", kid, err)
	}

	pub, ok := parsed.(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key %s is %T, want Ed25519", kid, parsed)
	}
	return pub, nil
}

func readPEM(path string) (*pem.Block, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is derived from the configured key directory
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("no PEM block in %s", filepath.Base(path))
	}
	return block, nil
}
