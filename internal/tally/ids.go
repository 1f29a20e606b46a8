package tally

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
)

// NewAccountID returns the identifier for the account created at sequence seq.
func NewAccountID(seq int64) model.AccountID {
	return model.AccountID(constants.AccountIDPrefix + strconv.FormatInt(seq, 10))
}

// sequenceOf extracts the creation sequence from an id generated by NewAccountID.
func sequenceOf(id model.AccountID) (int64, bool) {
	raw, ok := strings.CutPrefix(string(id), constants.AccountIDPrefix)
	if !ok {
		return 0, false
	}

	seq, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || seq < 0 {
		return 0, false
	}
	return seq, true
}

// DefaultName is the name given to a freshly created account.
func DefaultName(seq int64) string {
	return fmt.Sprintf(constants.DefaultAccountName, seq+1)
}

// PlaceholderName is the name used when an account is renamed to blank.
func PlaceholderName(id model.AccountID) string {
	seq, ok := sequenceOf(id)
	if !ok {
		return constants.UnnamedAccountName
	}
	return fmt.Sprintf(constants.PlaceholderName, seq+1)
}
