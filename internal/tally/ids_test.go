package tally

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hance08/tally/internal/model"
)

func TestPlaceholderName(t *testing.T) {
	tests := []struct {
		id   model.AccountID
		want string
	}{
		{"account_0", "Account 1"},
		{"account_41", "Account 42"},
		{"account_", "Account (unnamed)"},
		{"account_x", "Account (unnamed)"},
		{"account_-1", "Account (unnamed)"},
		{"savings", "Account (unnamed)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			assert.Equal(t, tt.want, PlaceholderName(tt.id))
		})
	}
}

func TestNewAccountID(t *testing.T) {
	id := NewAccountID(7)
	assert.Equal(t, model.AccountID("account_7"), id)

	seq, ok := sequenceOf(id)
	assert.True(t, ok)
	assert.Equal(t, int64(7), seq)
	assert.Equal(t, "New Account 8", DefaultName(seq))
}
