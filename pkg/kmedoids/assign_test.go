package kmedoids

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssign(t *testing.T) {
	corpus := NewCorpus([]string{"a b c", "a b", "x y z", "x y"})

	tests := []struct {
		name      string
		centroids []int
		expected  []int
	}{
		{name: "one per group", centroids: []int{0, 2}, expected: []int{0, 0, 1, 1}},
		{name: "reversed ids", centroids: []int{3, 1}, expected: []int{1, 1, 0, 0}},
		// Disjoint documents are equally far from both centroids.
		{name: "ties go to lowest id", centroids: []int{0, 1}, expected: []int{0, 1, 0, 0}},
		{name: "single centroid", centroids: []int{2}, expected: []int{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, corpus.Assign(tt.centroids))
		})
	}
}

func TestGroup(t *testing.T) {
	groups := Group([]int{1, 0, 1, 1, 0}, 3)

	assert.Equal(t, []int{1, 4}, groups[0])
	assert.Equal(t, []int{0, 2, 3}, groups[1])
	assert.Empty(t, groups[2])
}

func TestCounts(t *testing.T) {
	counts := Counts([]int{2, 2, 0, 2}, 4)

	assert.Equal(t, map[int]int{0: 1, 1: 0, 2: 3, 3: 0}, counts)
}
