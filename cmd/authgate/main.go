// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

// Package main is the entry point for the authgate server CLI.
package main

import (
	"os"

	"github.com/authgate/authgate/cmd/authgate/app"
	"github.com/authgate/authgate/pkg/logger"
)

func main() {
	// Initialize the logger
	logger.Initialize()

	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
