// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

// kidTimeFormat stems key filenames with a UTC timestamp so the newest pair
// sorts highest and becomes the signing key.
const kidTimeFormat = "20060102150405"

func newKeygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an Ed25519 signing key pair",
		Long: `Generate an Ed25519 signing key pair in the key directory.

The pair is written as <kid>_key.pem (PKCS#8) and <kid>_public.pem (PKIX)
where <kid> is the current UTC timestamp. The server signs with the pair
whose kid sorts highest, so generating a new pair rotates the signing key
while older public keys stay published for verification.`,
		RunE: keygenCmdFunc,
	}
	cmd.Flags().String("keys-dir", "keys", "Directory to write the key pair into")
	return cmd
}

func keygenCmdFunc(cmd *cobra.Command, _ []string) error {
	dir, err := cmd.Flags().GetString("keys-dir")
	if err != nil {
		return err
	}

	privPath, pubPath, err := writeKeyPair(dir)
	if err != nil {
		return err
	}

	cmd.Printf("wrote %s\nwrote %s\n", privPath, pubPath)
	return nil
}

// writeKeyPair generates an Ed25519 pair and writes both PEM halves into dir.
func writeKeyPair(dir string) (privPath, pubPath string, err error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", "", fmt.Errorf("create key directory: %w", err)
	}

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return "", "", fmt.Errorf("generate key pair: %w", err)
	}

	kid := time.Now().UTC().Format(kidTimeFormat)

	privDER, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return "", "", fmt.Errorf("encode private key: %w", err)
	}
	pubDER, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", "", fmt.Errorf("encode public key: %w", err)
	}

	privPath = filepath.Join(dir, kid+"_key.pem")
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privDER})
	if err := os.WriteFile(privPath, privPEM, 0o600); err != nil {
		return "", "", fmt.Errorf("write private key: %w", err)
	}

	pubPath = filepath.Join(dir, kid+"_public.pem")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})
	if err := os.WriteFile(pubPath, pubPEM, 0o644); err != nil { // #nosec G306 - public half is meant to be readable
		return "", "", fmt.Errorf("write public key: %w", err)
	}

	return privPath, pubPath, nil
}
