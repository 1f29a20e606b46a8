package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hance08/tally/internal/constants"
)

// Result is the outcome of parsing a free-form numeric field.
// When Coerced is true, Value holds the safe default instead of the input.
type Result struct {
	Value   float64
	Coerced bool
	Warning string
}

// Valid reports whether the input was accepted as entered.
func (r Result) Valid() bool {
	return !r.Coerced
}

// Err returns the warning as an error, or nil for valid input and silent coercions.
func (r Result) Err() error {
	if r.Warning == "" {
		return nil
	}
	return fmt.Errorf("%s", r.Warning)
}

// ParseAmount parses a per-transaction amount. Anything that is not a finite,
// non-negative number becomes 0.
func ParseAmount(raw string) Result {
	return parse(raw, constants.DefaultAmount, func(v float64) bool { return v >= 0 },
		"please enter a valid non-negative number")
}

// ParseMultiplier parses a transaction multiplier. Anything that is not a finite,
// positive number becomes 1.
func ParseMultiplier(raw string) Result {
	return parse(raw, constants.DefaultMultiplier, func(v float64) bool { return v > 0 },
		"please enter a valid positive number")
}

// Blank input coerces to the default without a warning.
func parse(raw string, def float64, ok func(float64) bool, msg string) Result {
	input := strings.TrimSpace(raw)
	if input == "" {
		return Result{Value: def, Coerced: true}
	}

	v, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Result{
			Value:   def,
			Coerced: true,
			Warning: fmt.Sprintf("invalid number format %q: %s", input, msg),
		}
	}

	if !ok(v) {
		return Result{
			Value:   def,
			Coerced: true,
			Warning: fmt.Sprintf("%s is out of range: %s", input, msg),
		}
	}

	if v == 0 {
		v = 0 // drop the sign of -0
	}

	return Result{Value: v}
}
