package framework_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
)

func newTestTopology(t *testing.T) *framework.Topology {
	t.Helper()
	topo := framework.NewTopology()
	nodes := []struct {
		id       int
		category framework.NodeCategory
		cpu      int
	}{
		{1, framework.Space, 10},
		{2, framework.Air, 20},
		{3, framework.Ground, 30},
	}
	for _, n := range nodes {
		if err := topo.AddNode(n.id, n.category, n.cpu); err != nil {
			t.Fatalf("AddNode(%d): %v", n.id, err)
		}
	}
	if err := topo.AddLink(1, 2, 100, 5); err != nil {
		t.Fatalf("AddLink: %v", err)
	}
	if err := topo.AddLink(2, 3, 50, 7); err != nil {
		t.Fatalf("AddLink: %v", err)
	}
	return topo
}

func TestLinkSymmetry(t *testing.T) {
	topo := newTestTopology(t)
	links := topo.Links()
	if len(links) != 4 {
		t.Fatalf("Expected 4 directed entries, got %d", len(links))
	}
	for _, l := range links {
		mirror, ok := topo.Link(l.Node2, l.Node1)
		if !ok {
			t.Fatalf("No mirror for link %d->%d", l.Node1, l.Node2)
		}
		if diff := cmp.Diff(l.Reversed(), mirror); diff != "" {
			t.Errorf("Mirror of %d->%d differs (-want +got):\n%s", l.Node1, l.Node2, diff)
		}
	}
}

func TestAddNodeInitialisesAvailableCPU(t *testing.T) {
	topo := newTestTopology(t)
	for _, n := range topo.Nodes() {
		if n.AvailableCPU != n.CPU {
			t.Errorf("Node %d: available cpu %d, want %d", n.ID, n.AvailableCPU, n.CPU)
		}
	}
}

func TestAddNodeErrors(t *testing.T) {
	topo := newTestTopology(t)

	var dup *framework.DuplicateIDError
	if err := topo.AddNode(1, framework.Space, 1); !errors.As(err, &dup) {
		t.Errorf("Expected DuplicateIDError, got %v", err)
	}
	if err := topo.AddNode(9, framework.Space, -1); err == nil {
		t.Error("Expected error for negative cpu")
	}
}

func TestAddLinkErrors(t *testing.T) {
	testCases := []struct {
		name      string
		a, b      int
		bandwidth int
		delay     int
		wantErr   error
	}{
		{name: "UnknownSource", a: 42, b: 1, bandwidth: 1, delay: 1, wantErr: framework.ErrNodeNotFound},
		{name: "UnknownTarget", a: 1, b: 42, bandwidth: 1, delay: 1, wantErr: framework.ErrNodeNotFound},
		{name: "NegativeBandwidth", a: 1, b: 3, bandwidth: -1, delay: 1},
		{name: "NegativeDelay", a: 1, b: 3, bandwidth: 1, delay: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			topo := newTestTopology(t)
			err := topo.AddLink(tc.a, tc.b, tc.bandwidth, tc.delay)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
			if len(topo.Links()) != 4 {
				t.Errorf("Failed AddLink must not store entries, have %d", len(topo.Links()))
			}
		})
	}
}

func TestAdjacency(t *testing.T) {
	topo := newTestTopology(t)
	want := map[int][]framework.Edge{
		1: {{To: 2, Delay: 5}},
		2: {{To: 1, Delay: 5}, {To: 3, Delay: 7}},
		3: {{To: 2, Delay: 7}},
	}
	if diff := cmp.Diff(want, topo.Adjacency()); diff != "" {
		t.Errorf("Adjacency mismatch (-want +got):\n%s", diff)
	}
}

func TestLinkPrefersLowestDelay(t *testing.T) {
	topo := newTestTopology(t)
	if err := topo.AddLink(1, 2, 10, 2); err != nil {
		t.Fatal(err)
	}
	l, ok := topo.Link(2, 1)
	if !ok {
		t.Fatal("Expected link 2->1")
	}
	if l.Delay != 2 || l.Bandwidth != 10 {
		t.Errorf("Expected the parallel delay-2 entry, got %+v", l)
	}
}

func TestReserveCPU(t *testing.T) {
	topo := newTestTopology(t)
	if err := topo.ReserveCPU(2, 15); err != nil {
		t.Fatalf("ReserveCPU: %v", err)
	}
	n, _ := topo.Node(2)
	if n.AvailableCPU != 5 || n.CPU != 20 {
		t.Errorf("Expected 5/20 cpu, got %d/%d", n.AvailableCPU, n.CPU)
	}
	if err := topo.ReserveCPU(2, 6); err == nil {
		t.Error("Expected insufficient cpu error")
	}
	if err := topo.ReserveCPU(77, 1); !errors.Is(err, framework.ErrNodeNotFound) {
		t.Errorf("Expected ErrNodeNotFound, got %v", err)
	}
}

func TestReserveBandwidthKeepsMirrorEqual(t *testing.T) {
	topo := newTestTopology(t)
	if err := topo.ReserveBandwidth(3, 2, 20); err != nil {
		t.Fatalf("ReserveBandwidth: %v", err)
	}
	fwd, _ := topo.Link(3, 2)
	rev, _ := topo.Link(2, 3)
	if fwd.AvailableBandwidth != 30 || rev.AvailableBandwidth != 30 {
		t.Errorf("Expected 30 available in both directions, got %d and %d", fwd.AvailableBandwidth, rev.AvailableBandwidth)
	}
	if err := topo.ReserveBandwidth(1, 3, 1); !errors.Is(err, framework.ErrLinkNotFound) {
		t.Errorf("Expected ErrLinkNotFound, got %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	topo := newTestTopology(t)
	c := topo.Clone()
	if err := c.ReserveCPU(1, 10); err != nil {
		t.Fatal(err)
	}
	n, _ := topo.Node(1)
	if n.AvailableCPU != 10 {
		t.Errorf("Clone mutation leaked into original: available cpu %d", n.AvailableCPU)
	}
}

func TestIsolatedNodes(t *testing.T) {
	topo := newTestTopology(t)
	if got := topo.IsolatedNodes(); len(got) != 0 {
		t.Errorf("Expected no isolated nodes, got %v", got)
	}
	_ = topo.AddNode(9, framework.Ground, 1)
	_ = topo.AddNode(4, framework.Air, 1)
	if diff := cmp.Diff([]int{4, 9}, topo.IsolatedNodes()); diff != "" {
		t.Errorf("Isolated nodes mismatch (-want +got):\n%s", diff)
	}
}
