// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/authgate/authgate/pkg/auth"
)

// Config holds the HTTP listener settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// AllowedOrigin is the single origin allowed by CORS. Empty disables CORS.
	AllowedOrigin string
}

// Server serves the authentication endpoints.
type Server struct {
	cfg       Config
	component auth.Component
	logger    *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used by the request middleware and handlers.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a server around the authentication component.
func New(cfg Config, component auth.Component, opts ...Option) *Server {
	s := &Server{
		cfg:       cfg,
		component: component,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Handler returns an http.Handler that serves all endpoints.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestLogger)
	r.Use(requestMetrics)

	if s.cfg.AllowedOrigin != "" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{s.cfg.AllowedOrigin},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowedHeaders: []string{"Authorization", "Accept", "Content-Type"},
			MaxAge:         corsMaxAge,
		}))
	}

	h := newHandler(s.component, s.logger)

	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)

	r.Get("/mfa", h.GetMFARegistration)
	r.Post("/mfa/totp/registration/start", h.StartTOTPRegistration)
	r.Post("/mfa/totp/registration/finish", h.FinishTOTPRegistration)
	r.Post("/mfa/totp/verify", h.VerifyTOTP)
	r.Post("/mfa/webauthn/registration/start", h.StartPasskeyRegistration)
	r.Post("/mfa/webauthn/registration/finish", h.FinishPasskeyRegistration)
	r.Post("/mfa/webauthn/authentication/start", h.StartPasskeyAuthentication)
	r.Post("/mfa/webauthn/authentication/finish", h.FinishPasskeyAuthentication)

	r.Get("/.well-known/jwks.json", h.JWKS)

	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

// ListenAndServe runs the server until the context is canceled, then drains
// in-flight requests before returning.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	s.logger.Info("http server listening", "addr", s.cfg.Addr)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	s.logger.Info("http server stopped")
	return nil
}
