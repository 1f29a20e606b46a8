package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/hance08/tally/internal/constants"
)

// NormalizeName trims an account name. It reports false when nothing is left,
// in which case the caller substitutes a placeholder.
func NormalizeName(raw string) (string, bool) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", false
	}
	return name, true
}

// NameHint returns a non-blocking hint for unusually long names, or "" when
// the name looks fine. Names are never rejected.
func NameHint(raw string) string {
	if utf8.RuneCountInString(strings.TrimSpace(raw)) > constants.MaxNameLen {
		return "account name is longer than usual and may be truncated in tables"
	}
	return ""
}
