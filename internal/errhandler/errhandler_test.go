package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
)

func TestIsCancelled(t *testing.T) {
	assert.True(t, IsCancelled(terminal.InterruptErr))
	assert.True(t, IsCancelled(fmt.Errorf("prompt: %w", huh.ErrUserAborted)))
	assert.False(t, IsCancelled(errors.New("disk full")))
	assert.False(t, IsCancelled(nil))
}

func TestHandleError(t *testing.T) {
	assert.Equal(t, 0, HandleError(nil))
	assert.Equal(t, 0, HandleError(terminal.InterruptErr))
	assert.Equal(t, 1, HandleError(errors.New("account not found")))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Account not found", Capitalize("account not found"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Été", Capitalize("été"))
}
