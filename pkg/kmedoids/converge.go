package kmedoids

// Converged reports whether every centroid in next lies within threshold of
// its counterpart in prev. Lists of different length never converge.
func (c *Corpus) Converged(next, prev []int, threshold float64) bool {
	if len(next) != len(prev) {
		return false
	}
	for i := range next {
		if c.Distance(next[i], prev[i]) > threshold {
			return false
		}
	}
	return true
}

// SSE sums the squared distance of every member to its cluster's centroid.
// Empty clusters contribute nothing.
func (c *Corpus) SSE(centroids []int, groups [][]int) float64 {
	sse := 0.0
	for id, members := range groups {
		for _, m := range members {
			d := c.Distance(m, centroids[id])
			sse += d * d
		}
	}
	return sse
}
