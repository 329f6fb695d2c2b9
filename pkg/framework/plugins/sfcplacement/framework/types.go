package framework

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeCategory is the network segment a node belongs to
type NodeCategory int

const (
	Space NodeCategory = iota
	Air
	Ground
)

// ParseNodeCategory maps an input category code to a NodeCategory.
// Only the codes 0, 1 and 2 are accepted.
func ParseNodeCategory(code int) (NodeCategory, error) {
	switch NodeCategory(code) {
	case Space, Air, Ground:
		return NodeCategory(code), nil
	}
	return 0, &InvalidCategoryError{Code: code}
}

func (c NodeCategory) String() string {
	switch c {
	case Space:
		return "Space"
	case Air:
		return "Air"
	case Ground:
		return "Ground"
	}
	return fmt.Sprintf("NodeCategory(%d)", int(c))
}

// Node contains node information for placement
type Node struct {
	ID           int
	Category     NodeCategory
	CPU          int // total capacity
	AvailableCPU int // decremented only by CommitPlacement
}

// Link is one directed entry of a bidirectional link
type Link struct {
	Node1              int
	Node2              int
	Bandwidth          int
	AvailableBandwidth int
	Delay              int
}

// Reversed returns the mirrored entry of l.
func (l Link) Reversed() Link {
	l.Node1, l.Node2 = l.Node2, l.Node1
	return l
}

// VNF is a virtual network function definition
type VNF struct {
	ID              int
	CPURequirement  int
	ProcessingDelay int
}

// SFC is an ordered chain of VNF copies with an end-to-end delay budget
type SFC struct {
	ID       int
	VNFs     []VNF
	MaxDelay int
}

// Path is an ordered sequence of node IDs
type Path []int

// String renders the path the way it is printed in reports: "1 -> 2 -> End".
func (p Path) String() string {
	var b strings.Builder
	for _, id := range p {
		b.WriteString(strconv.Itoa(id))
		b.WriteString(" -> ")
	}
	b.WriteString("End")
	return b.String()
}
