// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

// Package app provides the entry point for the authgate command-line application.
package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/authgate/authgate/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:               "authgate",
	DisableAutoGenTag: true,
	Short:             "Authgate is a multi-factor authentication backend",
	Long: `Authgate is a multi-factor authentication backend.

It serves password signup and login, TOTP and WebAuthn passkey enrollment and
verification, and issues Ed25519-signed JWTs whose public keys are published
as a JWK Set.`,
	Run: func(cmd *cobra.Command, _ []string) {
		// If no subcommand is provided, print help
		if err := cmd.Help(); err != nil {
			logger.Errorf("Error displaying help: %v", err)
		}
	},
}

// NewRootCmd creates a new root command for the authgate CLI.
func NewRootCmd() *cobra.Command {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newKeygenCmd())
	rootCmd.AddCommand(newDemoCmd())

	return rootCmd
}
