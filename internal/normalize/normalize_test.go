package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "id timestamp and url",
			input:    "585978391360221184|Thu Apr 09 01:31:50 +0000 2015|Breast cancer risk test devised http://bbc.in/1CimpJF",
			expected: "breast cancer risk test devised",
		},
		{
			name:     "retweet with handle and hashtag",
			input:    "RT @CNN: Ebola &amp; you #health",
			expected: "ebola & you health",
		},
		{
			name:     "retweet with dash",
			input:    "RT - Flu shots available",
			expected: "flu shots available",
		},
		{
			name:     "obfuscated dot",
			input:    "Visit cdc[dot]gov now",
			expected: "visit cdc.gov now",
		},
		{
			name:     "obfuscated email becomes a stripped domain",
			input:    "Mail info[at]example[dot]com today",
			expected: "mail today",
		},
		{
			name:     "bare domain",
			input:    "Read more at nytimes.com today",
			expected: "read more at today",
		},
		{
			name:     "https link",
			input:    "Study https://t.co/abc123 finds link",
			expected: "study finds link",
		},
		{
			name:     "whitespace collapse",
			input:    "  Multiple   spaces\tand\nTabs ",
			expected: "multiple spaces and tabs",
		},
		{
			name:     "only noise",
			input:    "@someone http://x.co",
			expected: "",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Line(tt.input))
		})
	}
}

func TestStripMetadata(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "id only", input: "123|hello", expected: "hello"},
		{name: "id not at start", input: "hello 123|world", expected: "hello 123|world"},
		{name: "timestamp only", input: "Mon Apr 13 10:00:00 -0500 2015|hello", expected: "hello"},
		{name: "retweet colon", input: "RT: hello", expected: "hello"},
		{name: "no metadata", input: "hello world", expected: "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripMetadata(tt.input))
		})
	}
}

func TestStripHandles(t *testing.T) {
	assert.Equal(t, " says hi", StripHandles("@user_1: says hi"))
	assert.Equal(t, "flu season", StripHandles("#flu season"))
}

func TestStripLinks(t *testing.T) {
	assert.Equal(t, "see ", StripLinks("see http://example.org/a?b=c"))
	assert.Equal(t, "go  now", StripLinks("go example.co now"))
	assert.Equal(t, "go example.org now", StripLinks("go example.org now"))
}

func TestLines_DoesNotMutateInput(t *testing.T) {
	in := []string{"RT @a: Hello", "World  "}
	out := Lines(in)

	assert.Equal(t, []string{"RT @a: Hello", "World  "}, in)
	assert.Equal(t, []string{"hello", "world"}, out)
}
