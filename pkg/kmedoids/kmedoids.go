package kmedoids

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// State is the phase of a clustering run.
type State int

const (
	// StateInitialized means centroids are chosen and nothing is assigned yet.
	StateInitialized State = iota
	// StateIterating means the assign/update loop is running.
	StateIterating
	// StateConverged means consecutive centroid lists matched within the threshold.
	StateConverged
	// StateMaxIterations means the iteration budget ran out first.
	StateMaxIterations
	// StateFinalized means SSE and counts have been computed.
	StateFinalized
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateIterating:
		return "iterating"
	case StateConverged:
		return "converged"
	case StateMaxIterations:
		return "max_iterations"
	case StateFinalized:
		return "finalized"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Result is the outcome of one clustering run.
type Result struct {
	// Counts has an entry for every cluster id in [0, K), zero for empty clusters.
	Counts map[int]int
	// Centroids holds the document index representing each cluster.
	Centroids []int
	// Assignments maps each document index to its cluster id.
	Assignments []int
	K           int
	Iterations  int
	SSE         float64
	Converged   bool
	// Stop is StateConverged or StateMaxIterations.
	Stop State
	// State is the phase the run ended in; StateFinalized for every returned result.
	State State
}

// clusterState is threaded through the loop and replaced wholesale each iteration.
type clusterState struct {
	centroids []int
	assign    []int
	groups    [][]int
}

// Run clusters the corpus into cfg.K groups.
//
// Each iteration assigns documents to the current centroids, recomputes
// medoids, and compares them with the centroids used for the assignment.
// On convergence the new centroids are kept together with the assignment
// made against the previous ones; that assignment is not recomputed.
func (c *Corpus) Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(c.Len()); err != nil {
		return nil, err
	}

	centroids, err := InitCentroids(c.Len(), cfg.K, NewRand(cfg.Seed))
	if err != nil {
		return nil, err
	}

	st := clusterState{centroids: centroids}
	phase := StateInitialized
	iterations := 0

	phase = enter(phase, StateIterating, cfg.K)
	for iterations < cfg.MaxIter {
		iterations++

		assign := c.Assign(st.centroids)
		groups := Group(assign, cfg.K)
		next := c.UpdateCentroids(groups, st.centroids)
		converged := c.Converged(next, st.centroids, cfg.Threshold)

		st = clusterState{centroids: next, assign: assign, groups: groups}

		log.Debug().
			Int("k", cfg.K).
			Int("iteration", iterations).
			Bool("converged", converged).
			Msg("Clustering iteration")

		if converged {
			phase = enter(phase, StateConverged, cfg.K)
			break
		}
	}
	if phase != StateConverged {
		phase = enter(phase, StateMaxIterations, cfg.K)
	}
	stop := phase

	res := &Result{
		K:           cfg.K,
		Centroids:   st.centroids,
		Assignments: st.assign,
		SSE:         c.SSE(st.centroids, st.groups),
		Counts:      Counts(st.assign, cfg.K),
		Iterations:  iterations,
		Converged:   stop == StateConverged,
		Stop:        stop,
	}
	res.State = enter(phase, StateFinalized, cfg.K)

	empty := 0
	for _, n := range res.Counts {
		if n == 0 {
			empty++
		}
	}
	log.Debug().
		Int("k", cfg.K).
		Int("iterations", iterations).
		Str("stop", stop.String()).
		Int("empty_clusters", empty).
		Float64("sse", res.SSE).
		Msg("Clustering finished")

	if e := log.Debug(); e.Enabled() {
		e.Int("k", cfg.K).Strs("medoids", c.medoidDocs(res.Centroids)).Msg("Cluster medoids")
	}

	return res, nil
}

// enter moves the run from one phase to the next.
func enter(from, to State, k int) State {
	log.Debug().Int("k", k).Str("from", from.String()).Str("to", to.String()).Msg("Clustering phase")
	return to
}

func (c *Corpus) medoidDocs(centroids []int) []string {
	docs := make([]string, len(centroids))
	for i, idx := range centroids {
		docs[i] = c.Doc(idx)
	}
	return docs
}
