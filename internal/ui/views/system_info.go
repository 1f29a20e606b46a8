package views

import (
	"github.com/pterm/pterm"

	"github.com/hance08/tally/internal/ui"
)

type SystemInfoItem struct {
	ConfigPath  string
	Backend     string
	DataPath    string
	DataExists  bool // true = Found, false = Not Found
	SnapshotKey string
	LogFile     string
	AppDataDir  string
	Accounts    int
}

func RenderSystemInfo(data SystemInfoItem) error {
	dataStatus := pterm.Green("Found")
	if !data.DataExists {
		dataStatus = pterm.Red("Not Found (Will be created)")
	}

	ui.PrintL1Title("System Information")

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Storage Backend", data.Backend},
		{"Data Path", data.DataPath},
		{"Data Status", dataStatus},
		{"Snapshot Key", data.SnapshotKey},
		{"Accounts", pterm.Sprint(data.Accounts)},
		{"Log File", data.LogFile},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
