package config

import "github.com/hance08/tally/internal/constants"

type Config struct {
	Storage    StorageConfig `mapstructure:"storage"`
	Log        LogConfig     `mapstructure:"log"`
	Display    DisplayConfig `mapstructure:"display"`
	ConfigPath string        `mapstructure:"-"`
}

type StorageConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
	Key     string `mapstructure:"key"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

type DisplayConfig struct {
	Precision int32 `mapstructure:"precision"`
}

func NewDefault() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: constants.BackendSQLite,
			Path:    "",
			Key:     constants.DefaultSnapshotKey,
		},
		Log: LogConfig{
			Level:      "info",
			File:       "",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Display: DisplayConfig{Precision: constants.DefaultDisplayDigits},
	}
}
