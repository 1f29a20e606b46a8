package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/ui/views"
)

type infoRunner struct {
	loader *app.Loader
}

func NewInfoCmd(loader *app.Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, storage location, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				loader: loader,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.loader.Config
	if err := app.ApplyDefaults(cfg); err != nil {
		return err
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dataExists := false
	if _, err := os.Stat(cfg.Storage.Path); err == nil {
		dataExists = true
	}

	a, err := r.loader.App()
	if err != nil {
		return err
	}

	items := views.SystemInfoItem{
		ConfigPath:  configPath,
		Backend:     cfg.Storage.Backend,
		DataPath:    cfg.Storage.Path,
		DataExists:  dataExists,
		SnapshotKey: cfg.Storage.Key,
		LogFile:     cfg.Log.File,
		AppDataDir:  getAppDataDirOrUnknown(),
		Accounts:    len(a.Accounts().GetAllAccounts()),
	}

	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.GetAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
