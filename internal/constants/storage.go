package constants

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"

	DatabaseFileName = "tally.db"
	DataDirName      = "data"
	LogFileName      = "tally.log"
	AppDirName       = "tally"
	FallbackAppDir   = ".tally"
)
