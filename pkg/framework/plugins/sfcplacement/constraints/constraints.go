package constraints

import (
	"errors"
	"fmt"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/objectives/delay"
)

var (
	ErrInsufficientCPU       = errors.New("insufficient cpu")
	ErrInsufficientBandwidth = errors.New("insufficient bandwidth")
	ErrDelayBudgetExceeded   = errors.New("delay budget exceeded")
	ErrEmptyPath             = errors.New("empty path")
)

// Placement is a chain together with the path found for it
type Placement struct {
	SFC  framework.SFC
	Path framework.Path
	// Bandwidth reserved on every hop of the path
	Bandwidth int
}

// Binding assigns one VNF of a chain to a path node
type Binding struct {
	VNF  framework.VNF
	Node int
}

// Constraint checks a placement against the current topology state.
// It returns nil when the placement is feasible.
type Constraint func(topo *framework.Topology, p Placement) error

// Bind maps VNF i to path node i. Chains longer than the path put the
// remaining VNFs on the last node; shorter chains leave trailing nodes as relays.
func Bind(path framework.Path, sfc framework.SFC) []Binding {
	if len(path) == 0 {
		return nil
	}
	bindings := make([]Binding, len(sfc.VNFs))
	for i, v := range sfc.VNFs {
		node := path[len(path)-1]
		if i < len(path) {
			node = path[i]
		}
		bindings[i] = Binding{VNF: v, Node: node}
	}
	return bindings
}

// CPUDemand sums the CPU requirement bound to each node
func CPUDemand(path framework.Path, sfc framework.SFC) map[int]int {
	demand := make(map[int]int, len(path))
	for _, b := range Bind(path, sfc) {
		demand[b.Node] += b.VNF.CPURequirement
	}
	return demand
}

// CPUConstraint creates a constraint checking that every node can host the VNFs bound to it
func CPUConstraint() Constraint {
	return func(topo *framework.Topology, p Placement) error {
		if len(p.Path) == 0 {
			return ErrEmptyPath
		}
		var errs []error
		demand := CPUDemand(p.Path, p.SFC)
		// iterate the path, not the map, so errors come out in path order
		for _, id := range p.Path {
			need, ok := demand[id]
			if !ok {
				continue
			}
			delete(demand, id)
			n, ok := topo.Node(id)
			if !ok {
				errs = append(errs, fmt.Errorf("node %d: %w", id, framework.ErrNodeNotFound))
				continue
			}
			if need > n.AvailableCPU {
				errs = append(errs, fmt.Errorf("node %d: need %d, available %d: %w", id, need, n.AvailableCPU, ErrInsufficientCPU))
			}
		}
		return utilerrors.NewAggregate(errs)
	}
}

// BandwidthConstraint creates a constraint checking that every hop has p.Bandwidth available
func BandwidthConstraint() Constraint {
	return func(topo *framework.Topology, p Placement) error {
		if len(p.Path) == 0 {
			return ErrEmptyPath
		}
		var errs []error
		for i := 1; i < len(p.Path); i++ {
			a, b := p.Path[i-1], p.Path[i]
			l, ok := topo.Link(a, b)
			if !ok {
				errs = append(errs, fmt.Errorf("hop %d -> %d: %w", a, b, framework.ErrLinkNotFound))
				continue
			}
			if p.Bandwidth > l.AvailableBandwidth {
				errs = append(errs, fmt.Errorf("hop %d -> %d: need %d, available %d: %w",
					a, b, p.Bandwidth, l.AvailableBandwidth, ErrInsufficientBandwidth))
			}
		}
		return utilerrors.NewAggregate(errs)
	}
}

// DelayBudgetConstraint creates a constraint checking that link plus processing
// delay stays within the chain's MaxDelay
func DelayBudgetConstraint() Constraint {
	return func(topo *framework.Topology, p Placement) error {
		b, err := delay.EndToEndDelay(topo, p.Path, p.SFC)
		if err != nil {
			return err
		}
		if !b.WithinBudget() {
			return fmt.Errorf("sfc %d: end-to-end delay %d over budget %d: %w", p.SFC.ID, b.Total, b.Budget, ErrDelayBudgetExceeded)
		}
		return nil
	}
}

// CombineConstraints runs all constraints and aggregates their failures
func CombineConstraints(constraints ...Constraint) Constraint {
	return func(topo *framework.Topology, p Placement) error {
		var errs []error
		for _, c := range constraints {
			if err := c(topo, p); err != nil {
				errs = append(errs, err)
			}
		}
		return utilerrors.NewAggregate(errs)
	}
}

// Evaluate runs each named constraint and returns the failures keyed by name
func Evaluate(topo *framework.Topology, p Placement, named map[string]Constraint) map[string]error {
	violations := make(map[string]error)
	for name, c := range named {
		if err := c(topo, p); err != nil {
			violations[name] = err
		}
	}
	return violations
}
