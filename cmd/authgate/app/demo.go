// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"net/url"
	"os"
	"time"

	pqtotp "github.com/pquerna/otp/totp"
	"github.com/spf13/cobra"

	"github.com/authgate/authgate/pkg/auth"
	"github.com/authgate/authgate/pkg/passkeys"
	"github.com/authgate/authgate/pkg/storage"
	"github.com/authgate/authgate/pkg/tokens"
	"github.com/authgate/authgate/pkg/totp"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run an in-process signup, TOTP enrollment, and login",
		Long: `Run the full authentication flow in-process against an in-memory stack:
signup, password login, TOTP enrollment, and a second login gated behind the
enrolled factor. Useful for a quick smoke check without an HTTP client.`,
		RunE: demoCmdFunc,
	}
}

func demoCmdFunc(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	keysDir, err := demoKeysDir(cmd)
	if err != nil {
		return err
	}

	engine, err := passkeys.New(passkeys.Config{
		RPID:          "localhost",
		RPOrigin:      "http://localhost:8080",
		RPDisplayName: "Authgate",
	})
	if err != nil {
		return err
	}

	component := auth.NewService(
		storage.NewMemoryUserRepository(),
		tokens.New(keysDir),
		totp.New(),
		storage.NewMemoryHSMStore(),
		engine,
	)

	const (
		email    = "demo@example.com"
		password = "Sup3rSecret!"
	)

	signup, err := component.Signup(ctx, auth.SignupInput{
		Name:     "Demo User",
		Username: email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	cmd.Printf("signed up %s as %s\n", email, signup.UserID)

	login, err := component.Login(ctx, auth.LoginInput{Username: email, Password: password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	cmd.Println("logged in without a second factor")

	mfa, err := component.GetMFARegistration(ctx, auth.MFARegistrationInput{AccessToken: login.AccessToken})
	if err != nil {
		return fmt.Errorf("open enrollment window: %w", err)
	}

	start, err := component.StartTOTPRegistration(ctx, auth.TOTPStartRegistrationInput{MFAToken: mfa.MFARegistration})
	if err != nil {
		return fmt.Errorf("start totp enrollment: %w", err)
	}
	cmd.Printf("enrollment url: %s\n", start.AuthURL)

	code, err := demoCode(start.AuthURL)
	if err != nil {
		return err
	}

	if _, err := component.FinishTOTPRegistration(ctx, auth.TOTPFinishRegistrationInput{
		MFAToken: mfa.MFARegistration,
		Code:     code,
	}); err != nil {
		return fmt.Errorf("finish totp enrollment: %w", err)
	}
	cmd.Println("totp enrolled")

	gated, err := component.Login(ctx, auth.LoginInput{Username: email, Password: password})
	if err != nil {
		return fmt.Errorf("second login: %w", err)
	}
	cmd.Printf("second login gated behind: %v\n", gated.AllowedMethods)

	code, err = demoCode(start.AuthURL)
	if err != nil {
		return err
	}

	verified, err := component.VerifyTOTP(ctx, auth.TOTPVerifyInput{
		MFAToken: gated.MFAVerificationToken,
		Code:     code,
	})
	if err != nil {
		return fmt.Errorf("verify totp: %w", err)
	}
	cmd.Printf("authenticated; access token issued (%d bytes)\n", len(verified.AccessToken))

	return nil
}

// demoKeysDir writes a throwaway signing key pair into a temp directory.
func demoKeysDir(cmd *cobra.Command) (string, error) {
	dir, err := os.MkdirTemp("", "authgate-demo-keys-")
	if err != nil {
		return "", fmt.Errorf("create temp key directory: %w", err)
	}

	if _, _, err := writeKeyPair(dir); err != nil {
		return "", err
	}
	cmd.Printf("signing keys in %s\n", dir)
	return dir, nil
}

// demoCode plays the authenticator: it recovers the secret from the
// enrollment URL and computes the current code.
func demoCode(authURL string) (string, error) {
	u, err := url.Parse(authURL)
	if err != nil {
		return "", fmt.Errorf("parse enrollment url: %w", err)
	}

	code, err := pqtotp.GenerateCode(u.Query().Get("secret"), time.Now())
	if err != nil {
		return "", fmt.Errorf("compute code: %w", err)
	}
	return code, nil
}
