package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hance08/tally/cmd/account"
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/errhandler"
)

var cfgFile string

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	loader := app.NewLoader(migrations)
	rootCmd := NewRootCmd(loader)

	err := rootCmd.Execute()
	loader.Close()

	os.Exit(errhandler.HandleError(err))
}

// NewRootCmd builds the command tree. Storage is opened lazily by loader
// once a command runs.
func NewRootCmd(loader *app.Loader) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tally",
		Short: "tally is a CLI/TUI transaction counter",
		Long: `tally keeps, per account, a running count of trading transactions,
a fixed amount per transaction and a multiplier, and shows the total
transaction value (count × amount × multiplier).`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig()
			if err != nil {
				return err
			}
			loader.Config = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().StringP("account", "a", "", "target account (id, position or name); defaults to the current account")

	rootCmd.AddCommand(account.NewAccountCmd(loader))

	rootCmd.AddCommand(NewIncCmd(loader))
	rootCmd.AddCommand(NewDecCmd(loader))
	rootCmd.AddCommand(NewResetCmd(loader))
	rootCmd.AddCommand(NewAmountCmd(loader))
	rootCmd.AddCommand(NewMultiplierCmd(loader))
	rootCmd.AddCommand(NewShowCmd(loader))
	rootCmd.AddCommand(NewSaveCmd(loader))
	rootCmd.AddCommand(NewUICmd(loader))
	rootCmd.AddCommand(NewInfoCmd(loader))

	return rootCmd
}

func initConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.GetAppDataDir()
		if err != nil {
			return nil, fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return nil, fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	setDefaults()

	viper.SetEnvPrefix("TALLY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it and the
// first config file written lists them all.
func setDefaults() {
	def := config.NewDefault()
	viper.SetDefault("storage.backend", def.Storage.Backend)
	viper.SetDefault("storage.path", def.Storage.Path)
	viper.SetDefault("storage.key", def.Storage.Key)
	viper.SetDefault("log.level", def.Log.Level)
	viper.SetDefault("log.file", def.Log.File)
	viper.SetDefault("log.max_size_mb", def.Log.MaxSizeMB)
	viper.SetDefault("log.max_backups", def.Log.MaxBackups)
	viper.SetDefault("display.precision", def.Display.Precision)
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	setDefaults()
	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
