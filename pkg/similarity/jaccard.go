package similarity

// JaccardSimilarity calculates the Jaccard similarity between two token sets.
// Returns a value between 0 (no overlap) and 1 (identical).
// Two empty sets are identical.
func JaccardSimilarity(set1, set2 TokenSet) float64 {
	if len(set1) == 0 && len(set2) == 0 {
		return 1.0
	}
	if len(set1) == 0 || len(set2) == 0 {
		return 0.0
	}

	// Iterate the smaller set
	if len(set1) > len(set2) {
		set1, set2 = set2, set1
	}

	intersection := 0
	for term := range set1 {
		if set2[term] {
			intersection++
		}
	}

	union := len(set1) + len(set2) - intersection
	return float64(intersection) / float64(union)
}

// JaccardDistance returns 1 - JaccardSimilarity, always in [0, 1].
// Two empty sets are at distance 0.
func JaccardDistance(set1, set2 TokenSet) float64 {
	return 1.0 - JaccardSimilarity(set1, set2)
}
