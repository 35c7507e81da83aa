// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

// Package server exposes the authentication core over HTTP.
//
// The handler serves the public endpoints:
//   - POST /signup and POST /login (password credentials)
//   - GET  /mfa (second-factor enrollment window)
//   - POST /mfa/totp/registration/{start,finish}, POST /mfa/totp/verify
//   - POST /mfa/webauthn/registration/{start,finish}
//   - POST /mfa/webauthn/authentication/{start,finish}
//   - GET  /.well-known/jwks.json (JSON Web Key Set)
//   - GET  /health and GET /metrics
//
// The handler uses internal routing - the consumer doesn't need to know about
// the endpoint structure. Domain failures collapse to 400/401 with a generic
// message; the precise cause is only logged.
package server
