package kmedoids

// Medoid returns the member with the smallest summed distance to the other
// members. The first minimum in member order wins. members must be non-empty.
//
// This is an exact search, O(m^2) distance evaluations for m members.
func (c *Corpus) Medoid(members []int) int {
	best := members[0]
	bestSum := -1.0
	for _, m := range members {
		sum := 0.0
		for _, other := range members {
			sum += c.Distance(m, other)
		}
		if bestSum < 0 || sum < bestSum {
			best, bestSum = m, sum
		}
	}
	return best
}

// UpdateCentroids recomputes every cluster's medoid. A cluster with no
// members keeps its previous centroid.
func (c *Corpus) UpdateCentroids(groups [][]int, prev []int) []int {
	next := make([]int, len(prev))
	for id := range prev {
		if len(groups[id]) == 0 {
			next[id] = prev[id]
			continue
		}
		next[id] = c.Medoid(groups[id])
	}
	return next
}
