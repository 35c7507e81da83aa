// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveConfig holds everything the serve command needs to boot the stack.
// Values come from flags, with AUTHGATE_-prefixed environment variables as
// fallback.
type serveConfig struct {
	Listen        string
	KeysDir       string
	AllowedOrigin string
	Issuer        string
	RPID          string
	RPOrigin      string
	RPDisplayName string
	RedisAddr     string
}

func registerServeFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.String("listen", ":8080", "Listen address for the HTTP server")
	flags.String("keys-dir", "keys", "Directory holding the Ed25519 signing key pairs")
	flags.String("allowed-origin", "", "Single origin allowed by CORS (empty disables CORS)")
	flags.String("issuer", "Authgate", "Issuer name embedded in TOTP enrollment URLs")
	flags.String("rp-id", "localhost", "WebAuthn relying-party id")
	flags.String("rp-origin", "http://localhost:8080", "WebAuthn relying-party origin")
	flags.String("rp-display-name", "Authgate", "WebAuthn relying-party display name")
	flags.String("redis-addr", "", "Redis address for shared flow state (empty keeps state in memory)")
}

// loadServeConfig binds the command's flags into viper and reads the result.
// Binding at execution time keeps flag definitions per-command while the
// environment prefix stays global.
func loadServeConfig(cmd *cobra.Command) (*serveConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("AUTHGATE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, name := range []string{
		"listen", "keys-dir", "allowed-origin", "issuer",
		"rp-id", "rp-origin", "rp-display-name", "redis-addr",
	} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	return &serveConfig{
		Listen:        v.GetString("listen"),
		KeysDir:       v.GetString("keys-dir"),
		AllowedOrigin: v.GetString("allowed-origin"),
		Issuer:        v.GetString("issuer"),
		RPID:          v.GetString("rp-id"),
		RPOrigin:      v.GetString("rp-origin"),
		RPDisplayName: v.GetString("rp-display-name"),
		RedisAddr:     v.GetString("redis-addr"),
	}, nil
}
