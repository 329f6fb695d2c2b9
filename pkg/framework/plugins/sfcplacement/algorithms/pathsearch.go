package algorithms

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
	"k8s.io/klog/v2"

	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/warmstart"
)

const (
	Name = "BoundedPathSearch"

	// DefaultPathNodes is the required path length: 5 nodes, 4 hops.
	DefaultPathNodes = 5
)

var (
	// ErrNoPath reports that no simple path of the required length exists from the
	// start node. It is a normal outcome, not a failure of the run.
	ErrNoPath = errors.New("no path of the required length found")

	// ErrSearchBudgetExceeded reports that MaxExpansions partial paths were expanded
	// without finishing the search.
	ErrSearchBudgetExceeded = errors.New("path search expansion budget exceeded")
)

// PathSearchConfig holds the search parameters
type PathSearchConfig struct {
	// PathNodes is the exact number of distinct nodes in a returned path
	PathNodes int
	// MaxExpansions bounds the number of expanded partial paths, 0 means unlimited
	MaxExpansions int
	// StartNodePolicy chooses the origin of every path
	StartNodePolicy warmstart.Policy
}

// SearchStats describes the work done by one FindPath call
type SearchStats struct {
	Expansions int // partial paths expanded
	Pushed     int // queue insertions
	Candidates int // completed paths of the required length seen
}

// PathResult is the outcome of one successful search
type PathResult struct {
	Path      framework.Path
	Delay     int // cumulative link delay
	StartNode int
	Stats     SearchStats
}

// PathSearch finds, from a fixed start node, the simple path of exactly PathNodes
// nodes with the lowest cumulative link delay. It keeps no state between calls
// and never modifies the topology.
type PathSearch struct {
	config      PathSearchConfig
	selectStart warmstart.SelectFunc
}

// NewPathSearch creates a path search engine
func NewPathSearch(config PathSearchConfig) (*PathSearch, error) {
	if config.PathNodes == 0 {
		config.PathNodes = DefaultPathNodes
	}
	if config.PathNodes < 1 {
		return nil, fmt.Errorf("path nodes must be positive, got %d", config.PathNodes)
	}
	if config.MaxExpansions < 0 {
		return nil, fmt.Errorf("max expansions must not be negative, got %d", config.MaxExpansions)
	}
	sel, err := warmstart.ForPolicy(config.StartNodePolicy)
	if err != nil {
		return nil, err
	}
	return &PathSearch{config: config, selectStart: sel}, nil
}

// Config returns the effective configuration
func (ps *PathSearch) Config() PathSearchConfig {
	return ps.config
}

// StartNode returns the origin every search on topo would use
func (ps *PathSearch) StartNode(topo *framework.Topology) (int, bool) {
	return ps.selectStart(topo.Nodes())
}

// FindPath searches topo for the best path for sfc. The search is delay-only: VNF
// CPU requirements and link bandwidth are not consulted.
//
// Partial paths are expanded in order of cumulative delay. A partial path that
// reaches PathNodes nodes is a completed candidate and is not expanded further.
// Among candidates with equal delay the lexicographically smallest node sequence
// is returned. Since delays are non-negative, nothing popped after a delay larger
// than the best candidate's can improve on it, so the search stops there.
func (ps *PathSearch) FindPath(ctx context.Context, topo *framework.Topology, sfc framework.SFC) (PathResult, error) {
	start, ok := ps.StartNode(topo)
	if !ok {
		return PathResult{}, fmt.Errorf("sfc %d: empty topology: %w", sfc.ID, ErrNoPath)
	}

	graph := topo.Adjacency()
	var (
		stats    SearchStats
		best     *partialPath
		bestPath framework.Path
		queue    pathQueue
	)
	queue.push(&partialPath{node: start, length: 1})
	stats.Pushed++

	for queue.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return PathResult{}, err
		}

		cur := queue.pop()
		if best != nil && cur.delay > best.delay {
			break
		}

		if cur.length == ps.config.PathNodes {
			stats.Candidates++
			nodes := cur.nodes()
			if best == nil || cur.delay < best.delay || slices.Compare(nodes, bestPath) < 0 {
				best, bestPath = cur, nodes
			}
			continue
		}

		stats.Expansions++
		if ps.config.MaxExpansions > 0 && stats.Expansions > ps.config.MaxExpansions {
			klog.V(2).InfoS("Path search budget exhausted", "sfc", sfc.ID, "start", start, "maxExpansions", ps.config.MaxExpansions)
			return PathResult{}, fmt.Errorf("sfc %d: %w after %d expansions", sfc.ID, ErrSearchBudgetExceeded, ps.config.MaxExpansions)
		}

		for _, e := range graph[cur.node] {
			if cur.contains(e.To) {
				continue
			}
			queue.push(cur.extend(e.To, e.Delay))
			stats.Pushed++
		}
	}

	klog.V(4).InfoS("Path search finished", "algorithm", Name, "sfc", sfc.ID, "start", start,
		"expansions", stats.Expansions, "pushed", stats.Pushed, "candidates", stats.Candidates)

	if best == nil {
		return PathResult{}, fmt.Errorf("sfc %d: no path of %d nodes from node %d: %w", sfc.ID, ps.config.PathNodes, start, ErrNoPath)
	}
	return PathResult{
		Path:      bestPath,
		Delay:     best.delay,
		StartNode: start,
		Stats:     stats,
	}, nil
}
