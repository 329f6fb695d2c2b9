package loader

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
)

// Scenario is a complete input in one yaml document
type Scenario struct {
	Nodes []NodeRecord  `yaml:"nodes"`
	Links []LinkRecord  `yaml:"links"`
	VNFs  []VNFRecord   `yaml:"vnfs"`
	SFCs  []ScenarioSFC `yaml:"sfcs"`
}

// ScenarioSFC is one chain in a Scenario
type ScenarioSFC struct {
	VNFs     []int `yaml:"vnfs,flow"`
	MaxDelay int   `yaml:"maxDelay"`
}

// ReadScenario decodes a yaml scenario. Unknown keys are rejected.
func ReadScenario(r io.Reader, file string) (*Input, error) {
	var sc Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: empty scenario", file)
		}
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return sc.Build(file)
}

// Build validates the scenario and converts it to an Input
func (sc *Scenario) Build(file string) (*Input, error) {
	topo := framework.NewTopology()
	for i, r := range sc.Nodes {
		if field, err := addNode(topo, r); err != nil {
			return nil, &ParseError{File: file, Section: "topology", Index: i + 1, Field: field, Err: err}
		}
	}
	for i, r := range sc.Links {
		if field, err := addLink(topo, r); err != nil {
			return nil, &ParseError{File: file, Section: "links", Index: i + 1, Field: field, Err: err}
		}
	}
	catalog := framework.NewCatalog()
	for i, r := range sc.VNFs {
		if field, err := addVNF(catalog, r); err != nil {
			return nil, &ParseError{File: file, Section: "vnfs", Index: i + 1, Field: field, Err: err}
		}
	}
	sfcs := make([]framework.SFC, 0, len(sc.SFCs))
	for i, r := range sc.SFCs {
		sfc, field, err := newSFC(catalog, i+1, r.VNFs, r.MaxDelay)
		if err != nil {
			return nil, &ParseError{File: file, Section: "sfcs", Index: i + 1, Field: field, Err: err}
		}
		sfcs = append(sfcs, sfc)
	}
	return &Input{Topology: topo, Catalog: catalog, SFCs: sfcs}, nil
}

// NewScenario converts an Input back to its yaml form. Every link is written once.
func NewScenario(in *Input) *Scenario {
	sc := &Scenario{}
	for _, n := range in.Topology.Nodes() {
		sc.Nodes = append(sc.Nodes, NodeRecord{ID: n.ID, Category: int(n.Category), CPU: n.CPU})
	}
	links := in.Topology.Links()
	// entries are stored as (link, mirror) pairs
	for i := 0; i < len(links); i += 2 {
		l := links[i]
		sc.Links = append(sc.Links, LinkRecord{Node1: l.Node1, Node2: l.Node2, Bandwidth: l.Bandwidth, Delay: l.Delay})
	}
	for _, v := range in.Catalog.VNFs() {
		sc.VNFs = append(sc.VNFs, VNFRecord{ID: v.ID, CPU: v.CPURequirement, Delay: v.ProcessingDelay})
	}
	for _, s := range in.SFCs {
		ids := make([]int, len(s.VNFs))
		for i, v := range s.VNFs {
			ids[i] = v.ID
		}
		sc.SFCs = append(sc.SFCs, ScenarioSFC{VNFs: ids, MaxDelay: s.MaxDelay})
	}
	return sc
}

// WriteScenario encodes in as a yaml scenario
func WriteScenario(w io.Writer, in *Input) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewScenario(in)); err != nil {
		return err
	}
	return enc.Close()
}

// LoadScenario reads a yaml scenario file
func LoadScenario(file string) (*Input, error) {
	return readFile(file, func(r io.Reader) (*Input, error) {
		return ReadScenario(r, file)
	})
}
