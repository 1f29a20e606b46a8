package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hance08/tally/internal/config"
)

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tally.log")

	logger, cleanup, err := New(config.LogConfig{Level: "debug", File: path, MaxSizeMB: 1, MaxBackups: 1})
	require.NoError(t, err)

	logger.Info("account created")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"account created"`)
	assert.Contains(t, string(data), `"logger":"tally"`)
}

func TestNewLevelFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tally.log")

	logger, cleanup, err := New(config.LogConfig{Level: "warn", File: path})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNewDisabled(t *testing.T) {
	logger, cleanup, err := New(config.LogConfig{})
	require.NoError(t, err)
	defer cleanup()
	logger.Info("discarded")
}

func TestNewBadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "loud", File: filepath.Join(t.TempDir(), "x.log")})
	assert.Error(t, err)
}
