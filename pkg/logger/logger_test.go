// SPDX-FileCopyrightText: Copyright 2026 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogger swaps the singleton for one writing JSON into a buffer and
// restores the original afterwards.
func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	previous := Get()
	Set(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() {
		Set(previous)
	})
	return &buf
}

func TestGetNeverNil(t *testing.T) {
	require.NotNil(t, Get())
}

func TestLeveledHelpers(t *testing.T) {
	buf := captureLogger(t)

	Infow("user signed up", "user_id", "abc123")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "user signed up", entry["msg"])
	assert.Equal(t, "abc123", entry["user_id"])
}

func TestFormattedHelpers(t *testing.T) {
	buf := captureLogger(t)

	Errorf("lookup failed for %s", "ada@example.com")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "lookup failed for ada@example.com", entry["msg"])
}

func TestDebugHelpersRespectLevel(t *testing.T) {
	buf := captureLogger(t)

	Debug("staged enrollment")
	assert.Contains(t, buf.String(), "staged enrollment")
}
