package kmedoids

// Assign maps every document to its nearest centroid. Ties go to the lowest
// centroid index. The result has one entry per document, each in [0, len(centroids)).
func (c *Corpus) Assign(centroids []int) []int {
	assign := make([]int, len(c.docs))
	for doc := range c.docs {
		best := 0
		bestDist := c.Distance(doc, centroids[0])
		for id := 1; id < len(centroids); id++ {
			if d := c.Distance(doc, centroids[id]); d < bestDist {
				best, bestDist = id, d
			}
		}
		assign[doc] = best
	}
	return assign
}

// Group turns an assignment vector into member lists per cluster id, in
// ascending document order. Clusters without members get an empty list.
func Group(assign []int, k int) [][]int {
	groups := make([][]int, k)
	for doc, id := range assign {
		groups[id] = append(groups[id], doc)
	}
	return groups
}

// Counts returns the member count of every cluster id in [0, k), zeros included.
func Counts(assign []int, k int) map[int]int {
	counts := make(map[int]int, k)
	for id := 0; id < k; id++ {
		counts[id] = 0
	}
	for _, id := range assign {
		counts[id]++
	}
	return counts
}
