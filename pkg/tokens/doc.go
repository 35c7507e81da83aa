// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

// Package tokens signs and validates the core's tokens with Ed25519 key
// pairs read from a directory, and publishes the matching JWK Set.
//
// Key pairs are PEM files named <kid>_key.pem / <kid>_public.pem. The
// signing key is the pair whose stem sorts highest in descending
// lexicographic order, so rotation is driven by dropping a new
// timestamp-stemmed pair into the directory. Both the signing key and the
// public set are cached for ten minutes behind a reader-writer lock;
// validation selects the verification key by the token's kid header.
package tokens
