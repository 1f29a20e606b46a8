package utils

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTotal(t *testing.T) {
	assert.Equal(t, "75.00", FormatTotal(75, 2))
	assert.Equal(t, "0.00", FormatTotal(0, 2))
	assert.Equal(t, "1.01", FormatTotal(1.005, 2))
	assert.Equal(t, "3", FormatTotal(2.5, 0))
	assert.Equal(t, "3", FormatTotal(2.5, -1))
	assert.Equal(t, "0.3000", FormatTotal(0.1*3, 4))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "12.5", FormatNumber(12.5))
	assert.Equal(t, "0.1", FormatNumber(0.1))
	assert.Equal(t, "1", FormatNumber(1))
	assert.Equal(t, "0", FormatNumber(0))
}

func TestFormatNonFinite(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Equal(t, "0.00", FormatTotal(math.NaN(), 2))
		assert.Equal(t, "0", FormatNumber(math.NaN()))

		got := FormatTotal(math.Inf(1), 2)
		assert.True(t, strings.HasSuffix(got, ".00"), got)
		assert.Greater(t, len(got), 300)

		assert.True(t, strings.HasPrefix(FormatNumber(math.Inf(-1)), "-"))
	})
}
