package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BabyBank_Go/internal/config"
)

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 12; i++ {
		name := fmt.Sprintf("session_2026-01-%02d_10-00-00.log", i)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "event_deadletter.jsonl"), nil, 0o644))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, LogFileRetentionCount+1)
	assert.Contains(t, names, "event_deadletter.jsonl")
	assert.Contains(t, names, "session_2026-01-12_10-00-00.log")
	assert.NotContains(t, names, "session_2026-01-03_10-00-00.log")
}

func TestSetupLogger_CreatesSessionFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := &config.Config{LogDir: filepath.Join(t.TempDir(), "logs"), LogLevel: "debug", LogFormat: "json", Environment: "test"}

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	slog.Info("hello from test")

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), `"environment":"test"`)
}

func TestLoggerConfig_SourceOnlyInDev(t *testing.T) {
	assert.True(t, LoggerConfig(&config.Config{Environment: "dev"}).AddSource)
	assert.False(t, LoggerConfig(&config.Config{Environment: "production"}).AddSource)
}
