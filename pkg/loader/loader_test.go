package loader

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sagin-nfv/sfcplacer/pkg/api/v1alpha1"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
)

const (
	textTopology = `3
1 0 10
2 1 20
3 2 30
2
1 2 100 5
2 3 50 7
`
	textVNFs = `3
1 2 3
2 4 1
3 1 1
`
	textSFCs = `2
2 1 3 40
3 3 2 1 25
`
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", name, err)
	}
	return path
}

func vnfIDs(sfc framework.SFC) []int {
	ids := make([]int, len(sfc.VNFs))
	for i, v := range sfc.VNFs {
		ids[i] = v.ID
	}
	return ids
}

func checkInput(t *testing.T, in *Input) {
	t.Helper()
	wantNodes := []framework.Node{
		{ID: 1, Category: framework.Space, CPU: 10, AvailableCPU: 10},
		{ID: 2, Category: framework.Air, CPU: 20, AvailableCPU: 20},
		{ID: 3, Category: framework.Ground, CPU: 30, AvailableCPU: 30},
	}
	if diff := cmp.Diff(wantNodes, in.Topology.Nodes()); diff != "" {
		t.Errorf("Nodes mismatch (-want +got):\n%s", diff)
	}
	if l, ok := in.Topology.Link(3, 2); !ok || l.Delay != 7 || l.Bandwidth != 50 {
		t.Errorf("Link 3->2 = %+v, %v", l, ok)
	}
	if in.Catalog.Len() != 3 {
		t.Errorf("Catalog has %d VNFs, want 3", in.Catalog.Len())
	}
	if len(in.SFCs) != 2 {
		t.Fatalf("Got %d SFCs, want 2", len(in.SFCs))
	}
	for i, want := range []struct {
		id       int
		vnfs     []int
		maxDelay int
	}{
		{id: 1, vnfs: []int{1, 3}, maxDelay: 40},
		{id: 2, vnfs: []int{3, 2, 1}, maxDelay: 25},
	} {
		got := in.SFCs[i]
		if got.ID != want.id || got.MaxDelay != want.maxDelay {
			t.Errorf("SFC %d = id %d maxDelay %d, want id %d maxDelay %d", i, got.ID, got.MaxDelay, want.id, want.maxDelay)
		}
		if diff := cmp.Diff(want.vnfs, vnfIDs(got)); diff != "" {
			t.Errorf("SFC %d VNFs mismatch (-want +got):\n%s", i, diff)
		}
	}
	if got := in.SFCs[1].VNFs[1]; got.CPURequirement != 4 || got.ProcessingDelay != 1 {
		t.Errorf("VNF copy = %+v, want catalog values", got)
	}
}

func TestLoadText(t *testing.T) {
	dir := t.TempDir()
	args := &v1alpha1.SFCPlacementArgs{
		InputFormat:  v1alpha1.InputFormatText,
		TopologyFile: writeFile(t, dir, "input.txt", textTopology),
		VNFFile:      writeFile(t, dir, "vnfs.txt", textVNFs),
		SFCFile:      writeFile(t, dir, "sfcs.txt", textSFCs),
	}
	in, err := Load(args)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	checkInput(t, in)
}

func TestReadTopologyErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   error
		wantField string
	}{
		{name: "Truncated", input: "2\n1 0 10\n2 1", wantErr: io.ErrUnexpectedEOF, wantField: "cpu"},
		{name: "MissingLinkCount", input: "1\n1 0 10\n", wantErr: io.ErrUnexpectedEOF, wantField: "linkCount"},
		{name: "UnknownEndpoint", input: "1\n1 0 10\n1\n1 4 10 1\n", wantErr: framework.ErrNodeNotFound, wantField: "link"},
		{name: "NotANumber", input: "1\n1 zero 10\n0\n", wantField: "category"},
		{name: "BadCategory", input: "1\n1 3 10\n0\n", wantField: "category"},
		{name: "NegativeCPU", input: "1\n1 0 -1\n0\n", wantField: "cpu"},
		{name: "NegativeDelay", input: "2\n1 0 1\n2 0 1\n1\n1 2 5 -3\n", wantField: "link"},
		{name: "DuplicateNode", input: "2\n1 0 1\n1 0 1\n0\n", wantField: "id"},
		{name: "NegativeCount", input: "-1\n", wantField: "nodeCount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTopology(strings.NewReader(tt.input), "input.txt")
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Expected *ParseError, got %v", err)
			}
			if perr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q (%v)", perr.Field, tt.wantField, err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	var cerr *framework.InvalidCategoryError
	_, err := ReadTopology(strings.NewReader("1\n1 7 10\n0\n"), "")
	if !errors.As(err, &cerr) || cerr.Code != 7 {
		t.Errorf("Expected InvalidCategoryError for code 7, got %v", err)
	}
}

// An SFC naming a VNF missing from the catalog fails the whole load.
func TestReadSFCsUnknownVNF(t *testing.T) {
	catalog, err := ReadCatalog(strings.NewReader(textVNFs), "vnfs.txt")
	if err != nil {
		t.Fatalf("ReadCatalog: %v", err)
	}
	_, err = ReadSFCs(strings.NewReader("2\n1 1 10\n2 1 99 10\n"), "sfcs.txt", catalog)

	var uerr *framework.UnknownVNFError
	if !errors.As(err, &uerr) {
		t.Fatalf("Expected UnknownVNFError, got %v", err)
	}
	if uerr.SFCID != 2 || uerr.VNFID != 99 {
		t.Errorf("UnknownVNFError = %+v, want sfc 2 vnf 99", uerr)
	}
	if !strings.Contains(err.Error(), "VNF with ID 99 not found") {
		t.Errorf("Unexpected message %q", err.Error())
	}
}

// Counts larger than the input fail at the first missing token instead of allocating.
func TestReadHugeCounts(t *testing.T) {
	catalog, err := ReadCatalog(strings.NewReader(textVNFs), "vnfs.txt")
	if err != nil {
		t.Fatalf("ReadCatalog: %v", err)
	}
	tests := []struct {
		name  string
		read  func() error
		field string
	}{
		{
			name: "sfc count",
			read: func() error {
				_, err := ReadSFCs(strings.NewReader("9000000000000000000 1 2"), "sfcs.txt", catalog)
				return err
			},
			field: "maxDelay",
		},
		{
			name: "vnf count of an sfc",
			read: func() error {
				_, err := ReadSFCs(strings.NewReader("1 9000000000000000000 1 2"), "sfcs.txt", catalog)
				return err
			},
			field: "vnfID",
		},
		{
			name: "node count",
			read: func() error {
				_, err := ReadTopology(strings.NewReader("9000000000000000000\n1 0 10\n"), "input.txt")
				return err
			},
			field: "id",
		},
		{
			name: "vnf catalog count",
			read: func() error {
				_, err := ReadCatalog(strings.NewReader("9000000000000000000\n1 2 3\n"), "vnfs.txt")
				return err
			},
			field: "id",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read()
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Expected ParseError, got %v", err)
			}
			if perr.Field != tt.field {
				t.Errorf("Got field %q, want %q", perr.Field, tt.field)
			}
			if !errors.Is(err, io.ErrUnexpectedEOF) {
				t.Errorf("Expected unexpected EOF, got %v", err)
			}
		})
	}
}

func TestReadCatalogErrors(t *testing.T) {
	for name, input := range map[string]string{
		"NegativeCPU":   "1\n1 -2 3\n",
		"NegativeDelay": "1\n1 2 -3\n",
		"Duplicate":     "2\n1 2 3\n1 2 3\n",
		"Truncated":     "2\n1 2 3\n",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := ReadCatalog(strings.NewReader(input), "vnfs.txt"); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	args := &v1alpha1.SFCPlacementArgs{
		InputFormat:  v1alpha1.InputFormatCSV,
		TopologyFile: writeFile(t, dir, "nodes.csv", "id,category,cpu\n1,0,10\n2,1,20\n3,2,30\n"),
		LinksFile:    writeFile(t, dir, "links.csv", "node1,node2,bandwidth,delay\n1,2,100,5\n2,3,50,7\n"),
		VNFFile:      writeFile(t, dir, "vnfs.csv", "id,cpu,delay\n1,2,3\n2,4,1\n3,1,1\n"),
		SFCFile:      writeFile(t, dir, "sfcs.csv", "vnfs,max_delay\n1;3,40\n3; 2; 1,25\n"),
	}
	in, err := Load(args)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	checkInput(t, in)
}

func TestReadCSVSFCsErrors(t *testing.T) {
	catalog, _ := ReadCSVCatalog(strings.NewReader("id,cpu,delay\n1,1,1\n"), "vnfs.csv")
	tests := []struct {
		name  string
		input string
		field string
	}{
		{name: "BadList", input: "vnfs,max_delay\n1;x,10\n", field: "vnfs"},
		{name: "UnknownVNF", input: "vnfs,max_delay\n1;2,10\n", field: "vnfs"},
		{name: "NegativeBudget", input: "vnfs,max_delay\n1,-1\n", field: "maxDelay"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSVSFCs(strings.NewReader(tt.input), "sfcs.csv", catalog)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Expected *ParseError, got %v", err)
			}
			if perr.Field != tt.field || perr.Index != 1 {
				t.Errorf("ParseError = %+v, want field %q index 1", perr, tt.field)
			}
		})
	}
}

const scenarioYAML = `nodes:
  - {id: 1, category: 0, cpu: 10}
  - {id: 2, category: 1, cpu: 20}
  - {id: 3, category: 2, cpu: 30}
links:
  - {node1: 1, node2: 2, bandwidth: 100, delay: 5}
  - {node1: 2, node2: 3, bandwidth: 50, delay: 7}
vnfs:
  - {id: 1, cpu: 2, delay: 3}
  - {id: 2, cpu: 4, delay: 1}
  - {id: 3, cpu: 1, delay: 1}
sfcs:
  - {vnfs: [1, 3], maxDelay: 40}
  - {vnfs: [3, 2, 1], maxDelay: 25}
`

func TestLoadScenario(t *testing.T) {
	args := &v1alpha1.SFCPlacementArgs{
		InputFormat:  v1alpha1.InputFormatYAML,
		ScenarioFile: writeFile(t, t.TempDir(), "scenario.yaml", scenarioYAML),
	}
	in, err := Load(args)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	checkInput(t, in)

	var buf bytes.Buffer
	if err := WriteScenario(&buf, in); err != nil {
		t.Fatalf("WriteScenario: %v", err)
	}
	again, err := ReadScenario(&buf, "written.yaml")
	if err != nil {
		t.Fatalf("ReadScenario: %v\n%s", err, buf.String())
	}
	checkInput(t, again)
}

func TestReadScenarioErrors(t *testing.T) {
	tests := map[string]string{
		"UnknownKey": "nodes: []\nsatellites: []\n",
		"Empty":      "",
		"BadLink":    "nodes:\n  - {id: 1, category: 0, cpu: 1}\nlinks:\n  - {node1: 1, node2: 2, bandwidth: 1, delay: 1}\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ReadScenario(strings.NewReader(input), "scenario.yaml"); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(&v1alpha1.SFCPlacementArgs{InputFormat: "xml"}); err == nil {
		t.Error("Expected an error for an unsupported format")
	}
	_, err := Load(&v1alpha1.SFCPlacementArgs{
		TopologyFile: filepath.Join(t.TempDir(), "missing.txt"),
		VNFFile:      "vnfs.txt",
		SFCFile:      "sfcs.txt",
	})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}
