// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/authgate/authgate/pkg/auth"
	"github.com/authgate/authgate/pkg/logger"
	"github.com/authgate/authgate/pkg/passkeys"
	"github.com/authgate/authgate/pkg/server"
	"github.com/authgate/authgate/pkg/storage"
	"github.com/authgate/authgate/pkg/tokens"
	"github.com/authgate/authgate/pkg/totp"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the authentication HTTP server",
		Long: `Run the authentication HTTP server.

Signing keys are read from the configured key directory; generate a pair with
"authgate keygen" first. Flow state lives in memory unless a Redis address is
configured.`,
		RunE: serveCmdFunc,
	}
	registerServeFlags(cmd)
	return cmd
}

func serveCmdFunc(cmd *cobra.Command, _ []string) error {
	cfg, err := loadServeConfig(cmd)
	if err != nil {
		return err
	}

	engine, err := passkeys.New(passkeys.Config{
		RPID:          cfg.RPID,
		RPOrigin:      cfg.RPOrigin,
		RPDisplayName: cfg.RPDisplayName,
	})
	if err != nil {
		return fmt.Errorf("configure passkey engine: %w", err)
	}

	var hsm auth.HSMStore
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		hsm = storage.NewRedisHSMStore(client)
		logger.Infow("using redis flow state", "addr", cfg.RedisAddr)
	} else {
		hsm = storage.NewMemoryHSMStore()
	}

	component := auth.NewService(
		storage.NewMemoryUserRepository(),
		tokens.New(cfg.KeysDir),
		totp.New(),
		hsm,
		engine,
		auth.WithIssuer(cfg.Issuer),
		auth.WithLogger(logger.Get()),
	)

	srv := server.New(
		server.Config{Addr: cfg.Listen, AllowedOrigin: cfg.AllowedOrigin},
		component,
		server.WithLogger(logger.Get()),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx)
}
