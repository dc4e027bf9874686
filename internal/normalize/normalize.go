// Package normalize turns raw tweet-style lines into plain, lowercase,
// whitespace-separated text ready for tokenization.
package normalize

import (
	"html"
	"regexp"
	"strings"
)

var (
	// dotRegex matches obfuscated dots, e.g. "example[dot]com"
	dotRegex = regexp.MustCompile(`\[dot\]`)

	// atRegex matches obfuscated at signs
	atRegex = regexp.MustCompile(`\[at\]`)

	// idRegex matches a leading numeric record id and its separator
	idRegex = regexp.MustCompile(`^\d+\|`)

	// timestampRegex matches a leading "Mon Apr 08 15:35:08 +0000 2015|" timestamp
	timestampRegex = regexp.MustCompile(`^[a-zA-Z]{3}\s+[a-zA-Z]{3}\s+\d{1,2}\s+\d{2}:\d{2}:\d{2}\s[+\-]\d{4}\s\d{4}\|`)

	// retweetRegex matches a leading retweet marker ("RT", "RT:", "RT -")
	retweetRegex = regexp.MustCompile(`^\s*RT\s*[:\-\s]*`)

	// handleRegex matches @mentions with an optional trailing colon
	handleRegex = regexp.MustCompile(`@[\p{L}\p{N}_]+:?`)

	// urlRegex matches http and https links
	urlRegex = regexp.MustCompile(`https?://\S+`)

	// shortLinkRegex matches bare domains ending in .co or .com
	shortLinkRegex = regexp.MustCompile(`\S+\.(co|com)\b`)

	// spaceRegex matches whitespace runs
	spaceRegex = regexp.MustCompile(`\s+`)
)

// StripMetadata removes the record id, timestamp and retweet prefix.
func StripMetadata(text string) string {
	text = idRegex.ReplaceAllString(text, "")
	text = timestampRegex.ReplaceAllString(text, "")
	return retweetRegex.ReplaceAllString(text, "")
}

// StripLinks removes URLs and bare .co/.com domains.
func StripLinks(text string) string {
	text = urlRegex.ReplaceAllString(text, "")
	return shortLinkRegex.ReplaceAllString(text, "")
}

// StripHandles removes @mentions and hashtag markers. The hashtag word stays.
func StripHandles(text string) string {
	text = handleRegex.ReplaceAllString(text, "")
	return strings.ReplaceAll(text, "#", "")
}

// CollapseSpace joins whitespace runs into single spaces and trims the ends.
func CollapseSpace(text string) string {
	return strings.TrimSpace(spaceRegex.ReplaceAllString(text, " "))
}

// Line performs full normalization on a single raw line.
// De-obfuscation runs before link removal so "[dot]com" domains are caught.
func Line(text string) string {
	text = html.UnescapeString(text)
	text = dotRegex.ReplaceAllString(text, ".")
	text = atRegex.ReplaceAllString(text, "@")
	text = StripMetadata(text)
	text = StripHandles(text)
	text = StripLinks(text)
	text = strings.ToLower(text)
	return CollapseSpace(text)
}

// Lines normalizes every line and returns a new slice. The input is left untouched.
func Lines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = Line(l)
	}
	return out
}
