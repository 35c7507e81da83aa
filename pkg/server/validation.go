// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"errors"
	"strings"
	"unicode"
)

// Validation errors returned to clients verbatim. These describe the input
// shape, never account state.
var (
	errInvalidEmail    = errors.New("email must have a local part and a domain")
	errWeakPassword    = errors.New("password must be at least 8 characters with an uppercase letter and a symbol")
	errInvalidTOTPCode = errors.New("code must be exactly 6 digits")
)

const minPasswordLength = 8

// validateEmail checks the minimal shape: one @ with non-empty parts.
// Deliverability is not the transport's concern.
func validateEmail(email string) error {
	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" || domain == "" {
		return errInvalidEmail
	}
	return nil
}

// validatePassword enforces the signup password policy.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return errWeakPassword
	}

	var hasUpper, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSymbol = true
		}
	}

	if !hasUpper || !hasSymbol {
		return errWeakPassword
	}
	return nil
}

// validateTOTPCode checks for exactly six ASCII digits.
func validateTOTPCode(code string) error {
	if len(code) != 6 {
		return errInvalidTOTPCode
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return errInvalidTOTPCode
		}
	}
	return nil
}
