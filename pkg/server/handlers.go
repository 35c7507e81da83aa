// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/authgate/authgate/pkg/auth"
)

// Cache-Control max-age for the JWKS endpoint (1 hour). Balances caching
// efficiency with timely key rotation propagation.
const jwksCacheMaxAge = 3600

// maxBodyBytes caps request bodies. WebAuthn attestation payloads are the
// largest accepted input and stay far below this.
const maxBodyBytes = 1 << 20

// handler holds the HTTP handlers for the authentication endpoints.
type handler struct {
	component auth.Component
	logger    *slog.Logger
}

func newHandler(component auth.Component, logger *slog.Logger) *handler {
	return &handler{component: component, logger: logger}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /signup requests.
func (h *handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	if err := validateEmail(req.Email); err != nil {
		h.writeValidationError(w, err)
		return
	}
	if err := validatePassword(req.Password); err != nil {
		h.writeValidationError(w, err)
		return
	}

	out, err := h.component.Signup(r.Context(), auth.SignupInput{
		Name:     req.Name,
		Username: req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, out)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /login requests.
func (h *handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	out, err := h.component.Login(r.Context(), auth.LoginInput{
		Username: req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, out)
}

// GetMFARegistration handles GET /mfa requests.
func (h *handler) GetMFARegistration(w http.ResponseWriter, r *http.Request) {
	token, ok := h.bearerToken(w, r)
	if !ok {
		return
	}

	out, err := h.component.GetMFARegistration(r.Context(), auth.MFARegistrationInput{AccessToken: token})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, out)
}

type totpStartResponse struct {
	QRCodeURL string `json:"qr_code_url"`
}

// StartTOTPRegistration handles POST /mfa/totp/registration/start requests.
func (h *handler) StartTOTPRegistration(w http.ResponseWriter, r *http.Request) {
	token, ok := h.bearerToken(w, r)
	if !ok {
		return
	}

	out, err := h.component.StartTOTPRegistration(r.Context(), auth.TOTPStartRegistrationInput{MFAToken: token})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, totpStartResponse{QRCodeURL: out.AuthURL})
}

type totpCodeRequest struct {
	Code string `json:"code"`
}

// FinishTOTPRegistration handles POST /mfa/totp/registration/finish requests.
func (h *handler) FinishTOTPRegistration(w http.ResponseWriter, r *http.Request) {
	token, ok := h.bearerToken(w, r)
	if !ok {
		return
	}

	var req totpCodeRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if err := validateTOTPCode(req.Code); err != nil {
		h.writeValidationError(w, err)
		return
	}

	out, err := h.component.FinishTOTPRegistration(r.Context(), auth.TOTPFinishRegistrationInput{
		MFAToken: token,
		Code:     req.Code,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, out)
}

// VerifyTOTP handles POST /mfa/totp/verify requests.
func (h *handler) VerifyTOTP(w http.ResponseWriter, r *http.Request) {
	token, ok := h.bearerToken(w, r)
	if !ok {
		return
	}

	var req totpCodeRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if err := validateTOTPCode(req.Code); err != nil {
		h.writeValidationError(w, err)
		return
	}

	out, err := h.component.VerifyTOTP(r.Context(), auth.TOTPVerifyInput{
		MFAToken: token,
		Code:     req.Code,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, out)
}

// StartPasskeyRegistration handles POST /mfa/webauthn/registration/start requests.
func (h *handler) StartPasskeyRegistration(w http.ResponseWriter, r *http.Request) {
	token, ok := h.bearerToken(w, r)
	if !ok {
		return
	}

	out, err := h.component.StartPasskeyRegistration(r.Context(), auth.PasskeyStartRegistrationInput{MFAToken: token})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	h.writeRawJSON(w, http.StatusOK, out.Challenge)
}

// FinishPasskeyRegistration handles POST /mfa/webauthn/registration/finish requests.
func (h *handler) FinishPasskeyRegistration(w http.ResponseWriter, r *http.Request) {
	token, ok := h.bearerToken(w, r)
	if !ok {
		return
	}

	body, ok := h.readBody(w, r)
	if !ok {
		return
	}

	err := h.component.FinishPasskeyRegistration(r.Context(), auth.PasskeyFinishRegistrationInput{
		MFAToken: token,
		Response: body,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// StartPasskeyAuthentication handles POST /mfa/webauthn/authentication/start requests.
func (h *handler) StartPasskeyAuthentication(w http.ResponseWriter, r *http.Request) {
	token, ok := h.bearerToken(w, r)
	if !ok {
		return
	}

	out, err := h.component.StartPasskeyAuthentication(r.Context(), auth.PasskeyStartAuthenticationInput{MFAToken: token})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	h.writeRawJSON(w, http.StatusOK, out.Challenge)
}

// FinishPasskeyAuthentication handles POST /mfa/webauthn/authentication/finish requests.
func (h *handler) FinishPasskeyAuthentication(w http.ResponseWriter, r *http.Request) {
	token, ok := h.bearerToken(w, r)
	if !ok {
		return
	}

	body, ok := h.readBody(w, r)
	if !ok {
		return
	}

	out, err := h.component.FinishPasskeyAuthentication(r.Context(), auth.PasskeyFinishAuthenticationInput{
		MFAToken: token,
		Response: body,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, out)
}

// JWKS handles GET /.well-known/jwks.json requests.
// It returns the public keys used for verifying JWTs.
func (h *handler) JWKS(w http.ResponseWriter, r *http.Request) {
	data, err := h.component.JWKS(r.Context())
	if err != nil {
		h.logger.Error("failed to load JWKS", "error", err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", jwksCacheMaxAge))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	_, _ = w.Write(data)
}

// Health handles GET /health requests.
func (h *handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// bearerToken extracts the bearer token from the Authorization header,
// answering 401 when it is absent or malformed.
func (h *handler) bearerToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	const prefix = "Bearer "

	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, prefix) || len(header) == len(prefix) {
		h.writeError(w, http.StatusUnauthorized, "missing or malformed bearer token")
		return "", false
	}
	return header[len(prefix):], true
}

func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return body, true
}

// writeDomainError collapses a domain error to a 400/401 with a generic
// message. The discriminant stays in the log.
func (h *handler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	message := "request failed"

	switch {
	case errors.Is(err, auth.ErrInvalidUsernameOrPassword),
		errors.Is(err, auth.ErrUserNotFound),
		errors.Is(err, auth.ErrTokenValidationFailed):
		status = http.StatusUnauthorized
		message = "invalid credentials"
	}

	h.logger.Warn("request rejected",
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"error", err.Error(),
	)
	h.writeError(w, status, message)
}

func (h *handler) writeValidationError(w http.ResponseWriter, err error) {
	h.writeError(w, http.StatusBadRequest, err.Error())
}

func (h *handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"message": message})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("failed to encode response", "error", err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	h.writeRawJSON(w, status, data)
}

func (h *handler) writeRawJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
