// Package warmstart selects the fixed origin node a path search grows from.
//
// The origin does not depend on the SFC being placed: with an unchanged topology
// every search in a run starts from the same node.
package warmstart

import (
	"fmt"

	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
)

// Policy names a start node selection strategy
type Policy string

const (
	// MaxAvailableCPU picks the node with the strictly highest available CPU.
	// The first node in scan order wins ties.
	MaxAvailableCPU Policy = "MaxAvailableCPU"
	// MaxTotalCPU picks the node with the strictly highest total CPU capacity,
	// ignoring reservations made by earlier commits.
	MaxTotalCPU Policy = "MaxTotalCPU"
)

// SelectFunc chooses a start node from nodes in scan order. ok is false when nodes is empty.
type SelectFunc func(nodes []framework.Node) (id int, ok bool)

// ForPolicy returns the selector implementing p
func ForPolicy(p Policy) (SelectFunc, error) {
	switch p {
	case MaxAvailableCPU, "":
		return SelectMaxAvailableCPU, nil
	case MaxTotalCPU:
		return SelectMaxTotalCPU, nil
	}
	return nil, fmt.Errorf("unknown start node policy %q", p)
}

// SelectMaxAvailableCPU implements MaxAvailableCPU
func SelectMaxAvailableCPU(nodes []framework.Node) (int, bool) {
	return selectMax(nodes, func(n framework.Node) int { return n.AvailableCPU })
}

// SelectMaxTotalCPU implements MaxTotalCPU
func SelectMaxTotalCPU(nodes []framework.Node) (int, bool) {
	return selectMax(nodes, func(n framework.Node) int { return n.CPU })
}

func selectMax(nodes []framework.Node, score func(framework.Node) int) (int, bool) {
	if len(nodes) == 0 {
		return 0, false
	}
	best := nodes[0]
	for _, n := range nodes[1:] {
		// strict comparison keeps the earliest node on ties
		if score(n) > score(best) {
			best = n
		}
	}
	return best.ID, true
}
