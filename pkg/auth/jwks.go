// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"fmt"
)

// JWKS returns the published verification key set as serialized JSON.
func (s *Service) JWKS(ctx context.Context) ([]byte, error) {
	jwks, err := s.tokens.JWKS(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJWKSFetchFailed, err)
	}
	return jwks, nil
}
