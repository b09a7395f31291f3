package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	c := NewCanonicalizer()

	tests := []struct {
		name    string
		input   string
		wantKey string
		wantOK  bool
	}{
		{"substring match", "Fresh Mozzarella", "mozzarella", true},
		{"case insensitive", "GROUND BEEF", "beef", true},
		{"surrounding whitespace", "  whole milk  ", "milk", true},
		{"multi word key", "Extra Virgin Olive Oil", "olive oil", true},
		{"token contained in key", "Mozz. di Bufala", "mozzarella", true},
		{"unknown ingredient", "dragon fruit", "", false},
		{"empty name", "", "", false},
		{"blank name", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := c.Canonicalize(tt.input)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestCanonicalize_ShortTokensIgnored(t *testing.T) {
	c := NewCanonicalizer()

	// "ox" is too short to token-match; the whole-name pass misses too.
	_, ok := c.Canonicalize("ox tail")

	assert.False(t, ok)
}
