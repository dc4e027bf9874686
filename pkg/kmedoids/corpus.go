// Package kmedoids partitions short text documents into K clusters using
// Jaccard distance over token sets, with corpus documents (medoids) as centroids.
//
// The package is single-threaded and deterministic: given the same corpus,
// K and seed, every run produces the same partition.
package kmedoids

import "github.com/thebtf/medoids/pkg/similarity"

// Corpus is an immutable, index-addressed collection of normalized documents.
// Token sets are computed once at construction and reused by every distance
// evaluation.
type Corpus struct {
	docs []string
	sets []similarity.TokenSet
}

// NewCorpus copies docs and tokenizes them. The caller's slice is never retained.
func NewCorpus(docs []string) *Corpus {
	owned := make([]string, len(docs))
	copy(owned, docs)
	return &Corpus{
		docs: owned,
		sets: similarity.TokenizeAll(owned),
	}
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	return len(c.docs)
}

// Doc returns the document at index i.
func (c *Corpus) Doc(i int) string {
	return c.docs[i]
}

// Distance returns the Jaccard distance between documents i and j.
func (c *Corpus) Distance(i, j int) float64 {
	if i == j {
		return 0
	}
	return similarity.JaccardDistance(c.sets[i], c.sets[j])
}
