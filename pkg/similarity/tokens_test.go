package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected TokenSet
	}{
		{
			name:     "simple",
			input:    "a b c",
			expected: TokenSet{"a": true, "b": true, "c": true},
		},
		{
			name:     "repeated tokens collapse",
			input:    "flu flu shot",
			expected: TokenSet{"flu": true, "shot": true},
		},
		{
			name:     "mixed whitespace",
			input:    "  a\tb\n c  ",
			expected: TokenSet{"a": true, "b": true, "c": true},
		},
		{
			name:     "punctuation is kept",
			input:    "vaccine, vaccine",
			expected: TokenSet{"vaccine,": true, "vaccine": true},
		},
		{
			name:     "empty",
			input:    "",
			expected: TokenSet{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestTokenizeAll(t *testing.T) {
	sets := TokenizeAll([]string{"a b", "", "c"})

	assert.Len(t, sets, 3)
	assert.Equal(t, TokenSet{"a": true, "b": true}, sets[0])
	assert.Empty(t, sets[1])
	assert.Equal(t, TokenSet{"c": true}, sets[2])
}
