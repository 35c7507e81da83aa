// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"log/slog"
)

// Component is the single entry point to the authentication core. Each method
// is one use case; all of them fail with an error from the closed set in
// errors.go.
type Component interface {
	Signup(ctx context.Context, in SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, in LoginInput) (*LoginOutput, error)
	GetMFARegistration(ctx context.Context, in MFARegistrationInput) (*MFARegistrationOutput, error)

	StartTOTPRegistration(ctx context.Context, in TOTPStartRegistrationInput) (*TOTPStartRegistrationOutput, error)
	FinishTOTPRegistration(ctx context.Context, in TOTPFinishRegistrationInput) (*TOTPFinishRegistrationOutput, error)
	VerifyTOTP(ctx context.Context, in TOTPVerifyInput) (*TOTPVerifyOutput, error)

	StartPasskeyRegistration(ctx context.Context, in PasskeyStartRegistrationInput) (*PasskeyStartRegistrationOutput, error)
	FinishPasskeyRegistration(ctx context.Context, in PasskeyFinishRegistrationInput) error
	StartPasskeyAuthentication(ctx context.Context, in PasskeyStartAuthenticationInput) (*PasskeyStartAuthenticationOutput, error)
	FinishPasskeyAuthentication(ctx context.Context, in PasskeyFinishAuthenticationInput) (*PasskeyFinishAuthenticationOutput, error)

	JWKS(ctx context.Context) ([]byte, error)
}

// Service implements Component over the collaborator capabilities. It holds
// no state of its own; all shared state lives behind the ports.
type Service struct {
	users    UserRepository
	tokens   TokenService
	totp     TOTPProvider
	hsm      HSMStore
	passkeys PasskeyEngine

	issuer string
	logger *slog.Logger
}

var _ Component = (*Service)(nil)

// Option configures a Service.
type Option func(*Service)

// WithIssuer sets the issuer name embedded in TOTP enrollment URLs.
func WithIssuer(issuer string) Option {
	return func(s *Service) {
		s.issuer = issuer
	}
}

// WithLogger sets the logger used by the use cases.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService wires the use cases to their collaborators.
func NewService(
	users UserRepository,
	tokens TokenService,
	totp TOTPProvider,
	hsm HSMStore,
	passkeys PasskeyEngine,
	opts ...Option,
) *Service {
	s := &Service{
		users:    users,
		tokens:   tokens,
		totp:     totp,
		hsm:      hsm,
		passkeys: passkeys,
		issuer:   "Authgate",
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
