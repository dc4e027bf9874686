package ingest

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "no trailing newline", input: "a\nb", expected: []string{"a", "b"}},
		{name: "trailing newline", input: "a\nb\n", expected: []string{"a", "b"}},
		{name: "blank line kept", input: "a\n\nb\n", expected: []string{"a", "", "b"}},
		{name: "crlf", input: "a\r\nb\r\n", expected: []string{"a", "b"}},
		{name: "only newline", input: "\n", expected: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitLines(tt.input))
		})
	}
}

func TestCleanedPath(t *testing.T) {
	assert.Equal(t, "usnewshealth_cleaned.txt", CleanedPath("usnewshealth.txt"))
	assert.Equal(t, filepath.Join("data", "news_cleaned.txt"), CleanedPath(filepath.Join("data", "news.txt")))
	assert.Equal(t, "noext_cleaned.txt", CleanedPath("noext"))
}

func TestDecode_UTF8(t *testing.T) {
	text := "Café owners fear the flu season – naïve résumé advice\nÜber-healthy smoothies\n"

	decoded, charset, err := Decode([]byte(text))
	require.NoError(t, err)

	assert.Equal(t, text, decoded)
	assert.NotEmpty(t, charset)
}

func TestDecode_StripsBOM(t *testing.T) {
	decoded, _, err := Decode([]byte("\xef\xbb\xbfhello world\n"))
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", decoded)
}

func TestDecode_AlwaysValidUTF8(t *testing.T) {
	latin1 := []byte("Le caf\xe9 du coin propose un th\xe9 glac\xe9 et une cr\xe8me br\xfbl\xe9e tous les jours\n")

	decoded, _, err := Decode(latin1)
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(decoded))
}

// utf16LE encodes s as little-endian UTF-16 behind a byte order mark.
func utf16LE(s string) []byte {
	out := []byte{0xff, 0xfe}
	for _, u := range utf16.Encode([]rune(s)) {
		out = binary.LittleEndian.AppendUint16(out, u)
	}
	return out
}

func TestDecode_Charsets(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		charsets []string
		expected string
	}{
		{
			name:     "latin-1",
			input:    []byte("Le caf\xe9 est tr\xe8s bon, le th\xe9 glac\xe9 aussi et la cr\xe8me br\xfbl\xe9e est d\xe9licieuse\n"),
			charsets: []string{"ISO-8859-1", "windows-1252"},
			expected: "Le café est très bon, le thé glacé aussi et la crème brûlée est délicieuse\n",
		},
		{
			name:     "utf-16le with bom",
			input:    utf16LE("flu shot clinics open today\n"),
			charsets: []string{"UTF-16LE"},
			expected: "flu shot clinics open today\n",
		},
		{
			name:     "utf-8 with bom",
			input:    []byte("\xef\xbb\xbfflu shot clinics open today\n"),
			charsets: []string{"UTF-8"},
			expected: "flu shot clinics open today\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, charset, err := Decode(tt.input)
			require.NoError(t, err)

			assert.Contains(t, tt.charsets, charset)
			assert.Equal(t, tt.expected, decoded)
			assert.True(t, utf8.ValidString(decoded))
		})
	}
}

func TestDecodeAs(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		charset  string
		used     string
		expected string
	}{
		{name: "unknown charset falls back to utf-8", input: []byte("flu season\n"), charset: "x-unknown-charset", used: DefaultCharset, expected: "flu season\n"},
		{name: "empty charset falls back to utf-8", input: []byte("flu season\n"), charset: "", used: DefaultCharset, expected: "flu season\n"},
		{name: "known charset kept", input: []byte("caf\xe9\n"), charset: "windows-1252", used: "windows-1252", expected: "café\n"},
		{name: "utf-8 bom stripped", input: []byte("\xef\xbb\xbfcaf\xc3\xa9"), charset: "UTF-8", used: "UTF-8", expected: "café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, used, err := decodeAs(tt.input, tt.charset)
			require.NoError(t, err)

			assert.Equal(t, tt.used, used)
			assert.Equal(t, tt.expected, decoded)
		})
	}
}

func TestDetectCharset_Empty(t *testing.T) {
	assert.Equal(t, DefaultCharset, DetectCharset(nil))
}

func TestReadFileAndWriteLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tweets.txt")
	require.NoError(t, os.WriteFile(path, []byte("first line\nsecond line\n"), 0600))

	src, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, src.Path)
	assert.Equal(t, []string{"first line", "second line"}, src.Lines)

	out := CleanedPath(path)
	require.NoError(t, WriteLines(out, []string{"a", "", "b"}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a\n\nb\n", string(data))
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
