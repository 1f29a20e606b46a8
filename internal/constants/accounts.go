package constants

const (
	AccountIDPrefix      = "account_"
	DefaultAccountName   = "New Account %d"
	PlaceholderName      = "Account %d"
	UnnamedAccountName   = "Account (unnamed)"
	DefaultAmount        = 0.0
	DefaultMultiplier    = 1.0
	MaxNameLen           = 100
	DefaultSnapshotKey   = "transactionCounterState"
	DefaultDisplayDigits = 2
)
