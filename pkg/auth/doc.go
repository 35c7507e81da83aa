// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

// Package auth implements the authentication core: password credential
// management, multi-factor enrollment and verification, and signed token
// issuance.
//
// The package is organized around a single [Component] entry point backed by
// one use case per flow:
//
//   - Signup / Login for password credentials
//   - GetMFARegistration to open a second-factor enrollment window
//   - StartTOTPRegistration / FinishTOTPRegistration / VerifyTOTP for
//     authenticator-app codes
//   - StartPasskeyRegistration / FinishPasskeyRegistration and
//     StartPasskeyAuthentication / FinishPasskeyAuthentication for WebAuthn
//     passkeys
//   - JWKS to publish the verification key set
//
// Each step of an MFA flow is authorized by the token returned from the
// previous step: the token's type both certifies the current state and names
// the only transition it can unlock. Enrollment flows additionally keep
// server-held transient state in an [HSMStore] entry that is written at
// "start" and consumed (read and cleared) at "finish", so a challenge can
// never be replayed.
//
// Collaborators are consumed through the capability interfaces declared in
// ports.go; the core never names a concrete implementation. In-memory
// implementations live in the storage package, the Ed25519 token service in
// the tokens package, the TOTP provider in the totp package, and the WebAuthn
// engine in the passkeys package.
package auth
