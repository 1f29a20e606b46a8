package app

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/logging"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/store"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	Service *service.Service
	Store   store.KV
	Logger  *zap.Logger
}

// NewApp resolves default paths, opens storage and loads the account store,
// then returns the App and a cleanup that flushes pending writes.
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	if err := ApplyDefaults(cfg); err != nil {
		return nil, nil, err
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	kv, err := store.Open(cfg.Storage.Backend, cfg.Storage.Path, migrationFS)
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	logger.Debug("storage opened",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("path", cfg.Storage.Path),
	)

	svc := service.NewService(store.NewGateway(kv, cfg.Storage.Key), cfg, logger)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := svc.Close(ctx); err != nil {
			logger.Warn("pending writes were not flushed", zap.Error(err))
		}
		if err := kv.Close(); err != nil {
			fmt.Printf("Error closing storage: %v\n", err)
		}
		closeLog()
	}

	return &App{
		Service: svc,
		Store:   kv,
		Logger:  logger,
	}, cleanup, nil
}

// ApplyDefaults fills the storage and log locations left empty in cfg.
func ApplyDefaults(cfg *config.Config) error {
	appDir, err := GetAppDataDir()
	if err != nil {
		return err
	}

	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = constants.BackendSQLite
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = constants.DefaultSnapshotKey
	}

	if cfg.Storage.Path == "" {
		switch cfg.Storage.Backend {
		case constants.BackendFile:
			cfg.Storage.Path = filepath.Join(appDir, constants.DataDirName)
		default:
			cfg.Storage.Path = filepath.Join(appDir, constants.DatabaseFileName)
		}
	} else if cfg.Storage.Path, err = ExpandPath(cfg.Storage.Path); err != nil {
		return fmt.Errorf("invalid storage path: %w", err)
	}

	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(appDir, constants.LogFileName)
	} else if cfg.Log.File, err = ExpandPath(cfg.Log.File); err != nil {
		return fmt.Errorf("invalid log path: %w", err)
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return nil
}

func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, constants.FallbackAppDir), nil
	}

	return filepath.Join(configDir, constants.AppDirName), nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return home, nil
	}
	if path[1] == '/' || path[1] == '\\' {
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
