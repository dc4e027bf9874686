// Package similarity provides token-set extraction and Jaccard measures for short documents.
package similarity

import "strings"

// TokenSet is the set of unique whitespace-delimited tokens of a document.
type TokenSet map[string]bool

// Tokenize splits a normalized document on whitespace and returns its unique tokens.
// No casing, stemming or stop-word filtering happens here; normalization is the caller's job.
func Tokenize(doc string) TokenSet {
	fields := strings.Fields(doc)
	set := make(TokenSet, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}

// TokenizeAll tokenizes every document, preserving order.
func TokenizeAll(docs []string) []TokenSet {
	sets := make([]TokenSet, len(docs))
	for i, doc := range docs {
		sets[i] = Tokenize(doc)
	}
	return sets
}
