package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/constants"
)

func TestApplyDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	appDir, err := GetAppDataDir()
	require.NoError(t, err)

	cfg := &config.Config{}
	require.NoError(t, ApplyDefaults(cfg))
	assert.Equal(t, constants.BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(appDir, constants.DatabaseFileName), cfg.Storage.Path)
	assert.Equal(t, constants.DefaultSnapshotKey, cfg.Storage.Key)
	assert.Equal(t, filepath.Join(appDir, constants.LogFileName), cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)

	cfg = &config.Config{Storage: config.StorageConfig{Backend: constants.BackendFile}}
	require.NoError(t, ApplyDefaults(cfg))
	assert.Equal(t, filepath.Join(appDir, constants.DataDirName), cfg.Storage.Path)
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/data/tally.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "data", "tally.db"), got)

	got, err = ExpandPath("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)

	got, err = ExpandPath("/var/lib/tally.db")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/tally.db", got)
}

func TestNewAppPersistsAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	cfg := config.NewDefault()
	cfg.Storage.Path = filepath.Join(dir, constants.DatabaseFileName)
	cfg.Log.File = filepath.Join(dir, constants.LogFileName)

	migrations := os.DirFS("../..")

	application, cleanup, err := NewApp(cfg, migrations)
	require.NoError(t, err)
	acc := application.Service.Account.CreateAccount("Spot")
	application.Service.Account.Increment(acc.ID)
	cleanup()

	application, cleanup, err = NewApp(cfg, migrations)
	require.NoError(t, err)
	defer cleanup()

	got, ok := application.Service.Account.GetCurrentAccount()
	require.True(t, ok)
	assert.Equal(t, "Spot", got.Name)
	assert.Equal(t, int64(1), got.TransactionCount)
	assert.Equal(t, int64(1), application.Service.Account.NextSequence())
}
