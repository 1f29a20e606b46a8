package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		coerced bool
		warns   bool
	}{
		{"12.5", 12.5, false, false},
		{" 3 ", 3, false, false},
		{"0", 0, false, false},
		{"-0", 0, false, false},
		{"1e3", 1000, false, false},
		{"-5", 0, true, true},
		{"abc", 0, true, true},
		{"12abc", 0, true, true},
		{"NaN", 0, true, true},
		{"Inf", 0, true, true},
		{"", 0, true, false},
		{"   ", 0, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			res := ParseAmount(tt.raw)
			assert.Equal(t, tt.want, res.Value)
			assert.Equal(t, tt.coerced, res.Coerced)
			assert.Equal(t, tt.warns, res.Warning != "")
			assert.Equal(t, tt.warns, res.Err() != nil)
		})
	}
}

func TestParseMultiplier(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		coerced bool
		warns   bool
	}{
		{"2", 2, false, false},
		{"0.1", 0.1, false, false},
		{"0", 1, true, true},
		{"-2", 1, true, true},
		{"-0", 1, true, true},
		{"two", 1, true, true},
		{"+Inf", 1, true, true},
		{"", 1, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			res := ParseMultiplier(tt.raw)
			assert.Equal(t, tt.want, res.Value)
			assert.Equal(t, tt.coerced, res.Coerced)
			assert.Equal(t, tt.warns, res.Warning != "")
		})
	}
}

func TestNormalizeName(t *testing.T) {
	name, ok := NormalizeName("  Futures ")
	assert.True(t, ok)
	assert.Equal(t, "Futures", name)

	_, ok = NormalizeName(" \t\n")
	assert.False(t, ok)
}
