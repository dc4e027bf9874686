// Package ingest reads raw document files of unknown encoding and returns
// their lines as UTF-8 strings.
package ingest

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogs/chardet"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/htmlindex"
)

// SampleSize is how many leading bytes are used for charset detection.
const SampleSize = 10000

// DefaultCharset is assumed when detection fails or names an unknown encoding.
const DefaultCharset = "UTF-8"

// Source is a decoded input file, one entry per line.
type Source struct {
	Path    string
	Charset string
	Lines   []string
}

// ReadFile loads path, detects its charset from the first SampleSize bytes,
// decodes it to UTF-8 and splits it into lines.
func ReadFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	text, charset, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	src := &Source{
		Path:    path,
		Charset: charset,
		Lines:   SplitLines(text),
	}
	log.Debug().
		Str("path", path).
		Str("charset", charset).
		Int("lines", len(src.Lines)).
		Msg("Loaded input file")
	return src, nil
}

// DetectCharset guesses the charset of sample. Only the first SampleSize
// bytes are inspected.
func DetectCharset(sample []byte) string {
	if len(sample) > SampleSize {
		sample = sample[:SampleSize]
	}
	if len(sample) == 0 {
		return DefaultCharset
	}

	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil || result == nil || result.Charset == "" {
		log.Debug().Err(err).Msg("Charset detection failed, assuming UTF-8")
		return DefaultCharset
	}
	log.Debug().
		Str("charset", result.Charset).
		Int("confidence", result.Confidence).
		Msg("Detected charset")
	return result.Charset
}

// Decode converts data to a UTF-8 string using the detected charset.
// Returns the text and the charset actually used.
func Decode(data []byte) (string, string, error) {
	return decodeAs(data, DetectCharset(data))
}

// decodeAs decodes data as charset, falling back to UTF-8 when the name is
// not in the WHATWG index.
func decodeAs(data []byte, charset string) (string, string, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		log.Warn().Str("charset", charset).Msg("Unknown charset, decoding as UTF-8")
		charset = DefaultCharset
		enc, err = htmlindex.Get(charset)
		if err != nil {
			return "", "", err
		}
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", "", fmt.Errorf("decode as %s: %w", charset, err)
	}
	return strings.TrimPrefix(string(decoded), "\ufeff"), charset, nil
}

// SplitLines splits text on newlines. A trailing newline does not produce an
// extra empty line; blank lines in the middle are kept. Carriage returns are dropped.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// WriteLines writes each line followed by a newline, creating or truncating path.
func WriteLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for _, l := range lines {
		if _, err := w.WriteString(l + "\n"); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// CleanedPath returns the sibling path used for normalized output,
// e.g. "data/news.txt" -> "data/news_cleaned.txt".
func CleanedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_cleaned.txt"
}
