package framework

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"k8s.io/apimachinery/pkg/util/sets"
)

// Edge is an adjacency entry used by the path search
type Edge struct {
	To    int
	Delay int
}

// Topology holds nodes in insertion order and links as mirrored directed entries.
// Node scan order is the order nodes were added.
type Topology struct {
	nodes []Node
	index map[int]int // node ID -> position in nodes
	links []Link
}

// NewTopology creates an empty topology
func NewTopology() *Topology {
	return &Topology{
		index: make(map[int]int),
	}
}

// AddNode registers a node. AvailableCPU is initialised to CPU.
func (t *Topology) AddNode(id int, category NodeCategory, cpu int) error {
	if _, exists := t.index[id]; exists {
		return &DuplicateIDError{Kind: "node", ID: id}
	}
	if cpu < 0 {
		return fmt.Errorf("node %d: negative cpu capacity %d", id, cpu)
	}
	t.index[id] = len(t.nodes)
	t.nodes = append(t.nodes, Node{
		ID:           id,
		Category:     category,
		CPU:          cpu,
		AvailableCPU: cpu,
	})
	return nil
}

// AddLink stores the link a->b and its mirror b->a with identical bandwidth and delay.
func (t *Topology) AddLink(a, b, bandwidth, delay int) error {
	if _, ok := t.index[a]; !ok {
		return fmt.Errorf("link %d-%d: endpoint %d: %w", a, b, a, ErrNodeNotFound)
	}
	if _, ok := t.index[b]; !ok {
		return fmt.Errorf("link %d-%d: endpoint %d: %w", a, b, b, ErrNodeNotFound)
	}
	if bandwidth < 0 {
		return fmt.Errorf("link %d-%d: negative bandwidth %d", a, b, bandwidth)
	}
	if delay < 0 {
		return fmt.Errorf("link %d-%d: negative delay %d", a, b, delay)
	}
	l := Link{
		Node1:              a,
		Node2:              b,
		Bandwidth:          bandwidth,
		AvailableBandwidth: bandwidth,
		Delay:              delay,
	}
	t.links = append(t.links, l, l.Reversed())
	return nil
}

// Len returns the number of nodes
func (t *Topology) Len() int {
	return len(t.nodes)
}

// Nodes returns a copy of the nodes in scan order
func (t *Topology) Nodes() []Node {
	return slices.Clone(t.nodes)
}

// Links returns a copy of all directed link entries
func (t *Topology) Links() []Link {
	return slices.Clone(t.links)
}

// Node returns the node with the given ID
func (t *Topology) Node(id int) (Node, bool) {
	i, ok := t.index[id]
	if !ok {
		return Node{}, false
	}
	return t.nodes[i], true
}

// Link returns the directed entry a->b with the lowest delay; the first stored wins ties.
func (t *Topology) Link(a, b int) (Link, bool) {
	i := t.linkIndex(a, b)
	if i < 0 {
		return Link{}, false
	}
	return t.links[i], true
}

func (t *Topology) linkIndex(a, b int) int {
	best := -1
	for i, l := range t.links {
		if l.Node1 != a || l.Node2 != b {
			continue
		}
		if best < 0 || l.Delay < t.links[best].Delay {
			best = i
		}
	}
	return best
}

// Adjacency maps each node ID to its outgoing (neighbor, delay) pairs,
// derived from every stored directed link entry in storage order.
func (t *Topology) Adjacency() map[int][]Edge {
	graph := make(map[int][]Edge, len(t.nodes))
	for _, l := range t.links {
		graph[l.Node1] = append(graph[l.Node1], Edge{To: l.Node2, Delay: l.Delay})
	}
	return graph
}

// IsolatedNodes returns, sorted, the IDs of nodes that no link touches
func (t *Topology) IsolatedNodes() []int {
	linked := sets.New[int]()
	for _, l := range t.links {
		linked.Insert(l.Node1, l.Node2)
	}
	all := sets.New[int]()
	for _, n := range t.nodes {
		all.Insert(n.ID)
	}
	return sets.List(all.Difference(linked))
}

// ReserveCPU decrements the available CPU of a node.
func (t *Topology) ReserveCPU(id, amount int) error {
	i, ok := t.index[id]
	if !ok {
		return fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	if amount > t.nodes[i].AvailableCPU {
		return fmt.Errorf("node %d: requested %d cpu, %d available", id, amount, t.nodes[i].AvailableCPU)
	}
	t.nodes[i].AvailableCPU -= amount
	return nil
}

// ReserveBandwidth decrements the available bandwidth of the a->b entry selected by Link
// and of its mirror, keeping both directions equal.
func (t *Topology) ReserveBandwidth(a, b, amount int) error {
	fwd := t.linkIndex(a, b)
	if fwd < 0 {
		return fmt.Errorf("link %d-%d: %w", a, b, ErrLinkNotFound)
	}
	if amount > t.links[fwd].AvailableBandwidth {
		return fmt.Errorf("link %d-%d: requested %d bandwidth, %d available", a, b, amount, t.links[fwd].AvailableBandwidth)
	}
	t.links[fwd].AvailableBandwidth -= amount
	t.links[t.mirrorIndex(fwd)].AvailableBandwidth -= amount
	return nil
}

// mirrorIndex finds the reversed twin of the entry at i. AddLink stores a link and
// its mirror next to each other, so the twin is the adjacent slot.
func (t *Topology) mirrorIndex(i int) int {
	if i%2 == 0 {
		return i + 1
	}
	return i - 1
}

// Clone returns a deep copy, used to evaluate commits without touching the original.
func (t *Topology) Clone() *Topology {
	return &Topology{
		nodes: slices.Clone(t.nodes),
		index: maps.Clone(t.index),
		links: slices.Clone(t.links),
	}
}
