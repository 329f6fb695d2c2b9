package benchmarks

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
	"github.com/sagin-nfv/sfcplacer/pkg/loader"
)

// Scenario is a generated placement input
type Scenario struct {
	Name  string
	Input *loader.Input
}

// generator builds scenarios; a failed Add means a bug in the generator itself
type generator struct {
	in *loader.Input
}

func newGenerator() *generator {
	return &generator{in: &loader.Input{
		Topology: framework.NewTopology(),
		Catalog:  framework.NewCatalog(),
	}}
}

func (g *generator) node(id int, category framework.NodeCategory, cpu int) {
	if err := g.in.Topology.AddNode(id, category, cpu); err != nil {
		panic(err)
	}
}

func (g *generator) link(a, b, bandwidth, delay int) {
	if err := g.in.Topology.AddLink(a, b, bandwidth, delay); err != nil {
		panic(err)
	}
}

// chains adds a catalog of vnfs definitions and sfcs chains of 2 to 5 VNFs
func (g *generator) chains(r *rand.Rand, vnfs, sfcs int) {
	for id := 1; id <= vnfs; id++ {
		if err := g.in.Catalog.Add(framework.VNF{ID: id, CPURequirement: 1 + r.Intn(8), ProcessingDelay: 1 + r.Intn(5)}); err != nil {
			panic(err)
		}
	}
	for id := 1; id <= sfcs; id++ {
		ids := make([]int, 2+r.Intn(4))
		for i := range ids {
			ids[i] = 1 + r.Intn(vnfs)
		}
		sfc, err := g.in.Catalog.NewSFC(id, ids, 20+r.Intn(80))
		if err != nil {
			panic(err)
		}
		g.in.SFCs = append(g.in.SFCs, sfc)
	}
}

// Complete connects n ground nodes pairwise with random delays
func Complete(n int, seed uint64) Scenario {
	r := rand.New(rand.NewSource(seed))
	g := newGenerator()
	for id := 1; id <= n; id++ {
		g.node(id, framework.Ground, 10+r.Intn(90))
	}
	for a := 1; a <= n; a++ {
		for b := a + 1; b <= n; b++ {
			g.link(a, b, 100, 1+r.Intn(20))
		}
	}
	g.chains(r, 8, 10)
	return Scenario{Name: fmt.Sprintf("complete-%d", n), Input: g.in}
}

// Ring connects n air nodes in a cycle
func Ring(n int, seed uint64) Scenario {
	r := rand.New(rand.NewSource(seed))
	g := newGenerator()
	for id := 1; id <= n; id++ {
		g.node(id, framework.Air, 10+r.Intn(90))
	}
	for id := 1; id <= n; id++ {
		g.link(id, id%n+1, 100, 1+r.Intn(10))
	}
	g.chains(r, 8, 10)
	return Scenario{Name: fmt.Sprintf("ring-%d", n), Input: g.in}
}

// Grid lays out w*h ground nodes with links to their right and lower neighbors
func Grid(w, h int, seed uint64) Scenario {
	r := rand.New(rand.NewSource(seed))
	g := newGenerator()
	id := func(x, y int) int { return y*w + x + 1 }
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.node(id(x, y), framework.Ground, 10+r.Intn(90))
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x+1 < w {
				g.link(id(x, y), id(x+1, y), 100, 1+r.Intn(10))
			}
			if y+1 < h {
				g.link(id(x, y), id(x, y+1), 100, 1+r.Intn(10))
			}
		}
	}
	g.chains(r, 8, 10)
	return Scenario{Name: fmt.Sprintf("grid-%dx%d", w, h), Input: g.in}
}

// Layered builds a space-air-ground network. Satellites form a ring with long
// inter-satellite delays, every aerial node reaches two satellites and every
// ground node reaches one aerial node.
func Layered(space, air, ground int, seed uint64) Scenario {
	r := rand.New(rand.NewSource(seed))
	g := newGenerator()
	next := 1
	add := func(n int, category framework.NodeCategory, cpuBase int) []int {
		ids := make([]int, n)
		for i := range ids {
			ids[i] = next
			g.node(next, category, cpuBase+r.Intn(cpuBase))
			next++
		}
		return ids
	}
	sats := add(space, framework.Space, 20)
	uavs := add(air, framework.Air, 30)
	stations := add(ground, framework.Ground, 60)

	for i, s := range sats {
		if space > 1 && (i+1 < space || space > 2) {
			g.link(s, sats[(i+1)%space], 50, 10+r.Intn(20))
		}
	}
	for i, u := range uavs {
		if space > 0 {
			g.link(u, sats[i%space], 30, 5+r.Intn(10))
			if space > 1 {
				g.link(u, sats[(i+1)%space], 30, 5+r.Intn(10))
			}
		}
		if i > 0 {
			g.link(u, uavs[i-1], 40, 2+r.Intn(5))
		}
	}
	for i, s := range stations {
		if air > 0 {
			g.link(s, uavs[i%air], 80, 1+r.Intn(4))
		}
	}
	g.chains(r, 10, 20)
	return Scenario{Name: fmt.Sprintf("sagin-%d-%d-%d", space, air, ground), Input: g.in}
}
