// Package logging builds the zap logger used across tally. Console output
// belongs to pterm, so logs go to a rotating file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/hance08/tally/internal/config"
)

// New returns a JSON file logger configured by cfg and a function that
// flushes and closes it. An empty cfg.File disables logging.
func New(cfg config.LogConfig) (*zap.Logger, func(), error) {
	if cfg.File == "" {
		return zap.NewNop(), func() {}, nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level '%s': %w", cfg.Level, err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, nil, fmt.Errorf("can not create log directory: %w", err)
	}

	rw := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB, // megabytes
		MaxBackups: cfg.MaxBackups,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rw), level)
	logger := zap.New(core).Named("tally")

	cleanup := func() {
		_ = logger.Sync()
		_ = rw.Close()
	}

	return logger, cleanup, nil
}
