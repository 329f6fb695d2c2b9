// Package loader reads topologies, VNF catalogs and SFC lists from disk.
//
// Three formats are supported. The text format is the whitespace separated
// token stream of the original tool; csv and yaml carry the same records with
// headers or keys. All formats assign SFC IDs 1..n in file order.
package loader

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/sagin-nfv/sfcplacer/pkg/api/v1alpha1"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
)

// Input is everything a placement run needs
type Input struct {
	Topology *framework.Topology
	Catalog  *framework.Catalog
	SFCs     []framework.SFC
}

// ParseError locates a malformed or invalid input entry
type ParseError struct {
	File    string
	Section string // topology, links, vnfs or sfcs
	Index   int    // 1-based entry (text: token) position within the section
	Field   string
	Err     error
}

func (e *ParseError) Error() string {
	file := e.File
	if file == "" {
		file = "<input>"
	}
	return fmt.Sprintf("%s: %s entry %d: %s: %v", file, e.Section, e.Index, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NodeRecord is one node in csv or yaml input
type NodeRecord struct {
	ID       int `csv:"id" yaml:"id"`
	Category int `csv:"category" yaml:"category"`
	CPU      int `csv:"cpu" yaml:"cpu"`
}

// LinkRecord is one bidirectional link in csv or yaml input
type LinkRecord struct {
	Node1     int `csv:"node1" yaml:"node1"`
	Node2     int `csv:"node2" yaml:"node2"`
	Bandwidth int `csv:"bandwidth" yaml:"bandwidth"`
	Delay     int `csv:"delay" yaml:"delay"`
}

// VNFRecord is one catalog entry in csv or yaml input
type VNFRecord struct {
	ID    int `csv:"id" yaml:"id"`
	CPU   int `csv:"cpu" yaml:"cpu"`
	Delay int `csv:"delay" yaml:"delay"`
}

// Load reads the input files named by args using args.InputFormat
func Load(args *v1alpha1.SFCPlacementArgs) (*Input, error) {
	var (
		in  *Input
		err error
	)
	switch args.InputFormat {
	case v1alpha1.InputFormatText, "":
		in, err = LoadText(args.TopologyFile, args.VNFFile, args.SFCFile)
	case v1alpha1.InputFormatCSV:
		in, err = LoadCSV(args.TopologyFile, args.LinksFile, args.VNFFile, args.SFCFile)
	case v1alpha1.InputFormatYAML:
		in, err = LoadScenario(args.ScenarioFile)
	default:
		return nil, fmt.Errorf("unsupported input format %q", args.InputFormat)
	}
	if err != nil {
		return nil, err
	}

	if isolated := in.Topology.IsolatedNodes(); len(isolated) > 0 {
		klog.InfoS("Topology has nodes without links", "nodes", isolated)
	}
	klog.V(2).InfoS("Loaded input", "format", args.InputFormat, "nodes", in.Topology.Len(),
		"links", len(in.Topology.Links())/2, "vnfs", in.Catalog.Len(), "sfcs", len(in.SFCs))
	return in, nil
}

func addNode(topo *framework.Topology, r NodeRecord) (string, error) {
	category, err := framework.ParseNodeCategory(r.Category)
	if err != nil {
		return "category", err
	}
	if r.CPU < 0 {
		return "cpu", fmt.Errorf("negative cpu capacity %d", r.CPU)
	}
	if err := topo.AddNode(r.ID, category, r.CPU); err != nil {
		return "id", err
	}
	return "", nil
}

func addLink(topo *framework.Topology, r LinkRecord) (string, error) {
	if err := topo.AddLink(r.Node1, r.Node2, r.Bandwidth, r.Delay); err != nil {
		return "link", err
	}
	return "", nil
}

func addVNF(catalog *framework.Catalog, r VNFRecord) (string, error) {
	if r.CPU < 0 {
		return "cpu", fmt.Errorf("negative cpu requirement %d", r.CPU)
	}
	if r.Delay < 0 {
		return "delay", fmt.Errorf("negative processing delay %d", r.Delay)
	}
	if err := catalog.Add(framework.VNF{ID: r.ID, CPURequirement: r.CPU, ProcessingDelay: r.Delay}); err != nil {
		return "id", err
	}
	return "", nil
}

func newSFC(catalog *framework.Catalog, id int, vnfIDs []int, maxDelay int) (framework.SFC, string, error) {
	if maxDelay < 0 {
		return framework.SFC{}, "maxDelay", fmt.Errorf("negative max delay %d", maxDelay)
	}
	sfc, err := catalog.NewSFC(id, vnfIDs, maxDelay)
	if err != nil {
		return framework.SFC{}, "vnfs", err
	}
	return sfc, "", nil
}
