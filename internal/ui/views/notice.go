package views

import (
	"github.com/pterm/pterm"

	"github.com/hance08/tally/internal/errhandler"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/validation"
)

// RenderValidation prints the warning of a coerced numeric input, if any.
func RenderValidation(field string, res validation.Result) {
	if res.Warning == "" {
		return
	}
	pterm.Warning.Printf("%s: %s (stored %v)\n", field, errhandler.Capitalize(res.Warning), res.Value)
}

// RenderSaveFailures prints background save errors. The in-memory change
// was still applied.
func RenderSaveFailures(failures []service.SaveFailure) {
	for _, f := range failures {
		pterm.Error.Printf("Failed to save data: %v\n", f.Err)
	}
}
