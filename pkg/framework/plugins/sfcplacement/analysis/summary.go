// Package analysis aggregates the per-SFC results of a placement run.
package analysis

import (
	"golang.org/x/exp/slices"

	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
)

// Summary describes a whole run
type Summary struct {
	Total          int
	Placed         int
	NoPath         int
	BudgetExceeded int
	CommitRejected int

	// OverDelayBudget counts found paths whose end-to-end delay exceeds MaxDelay
	OverDelayBudget int

	MeanLinkDelay float64
	MaxLinkDelay  int

	// CategoryUsage counts node visits per category across all found paths
	CategoryUsage map[framework.NodeCategory]int
	// NodeUsage counts how many found paths visit each node
	NodeUsage map[int]int
}

// Summarize computes a Summary. topo resolves node categories; nodes it does
// not know are counted in NodeUsage only.
func Summarize(results []framework.PlacementResult, topo *framework.Topology) Summary {
	s := Summary{
		Total:         len(results),
		CategoryUsage: make(map[framework.NodeCategory]int),
		NodeUsage:     make(map[int]int),
	}

	found, delaySum := 0, 0
	for _, r := range results {
		switch r.Outcome {
		case framework.OutcomePlaced:
			s.Placed++
		case framework.OutcomeNoPath:
			s.NoPath++
		case framework.OutcomeBudgetExceeded:
			s.BudgetExceeded++
		case framework.OutcomeCommitRejected:
			s.CommitRejected++
		}
		if !r.Found() {
			continue
		}

		found++
		delaySum += r.LinkDelay
		s.MaxLinkDelay = max(s.MaxLinkDelay, r.LinkDelay)
		if !r.WithinBudget {
			s.OverDelayBudget++
		}
		for _, id := range r.Path {
			s.NodeUsage[id]++
			if n, ok := topo.Node(id); ok {
				s.CategoryUsage[n.Category]++
			}
		}
	}
	if found > 0 {
		s.MeanLinkDelay = float64(delaySum) / float64(found)
	}
	return s
}

// HottestNodes returns the node IDs visited most often, ties broken by ascending ID
func (s Summary) HottestNodes(n int) []int {
	ids := make([]int, 0, len(s.NodeUsage))
	for id := range s.NodeUsage {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b int) int {
		if s.NodeUsage[a] != s.NodeUsage[b] {
			return s.NodeUsage[b] - s.NodeUsage[a]
		}
		return a - b
	})
	if n < len(ids) {
		ids = ids[:n]
	}
	return ids
}
