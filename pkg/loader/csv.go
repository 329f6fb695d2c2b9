package loader

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
)

// SFCRecord is one chain in csv input. VNFs holds the VNF IDs separated by ';'.
type SFCRecord struct {
	VNFs     string `csv:"vnfs"`
	MaxDelay int    `csv:"max_delay"`
}

// ReadCSVTopology reads the nodes and links tables
func ReadCSVTopology(nodes io.Reader, nodesFile string, links io.Reader, linksFile string) (*framework.Topology, error) {
	nodeRecords := []*NodeRecord{}
	if err := gocsv.Unmarshal(nodes, &nodeRecords); err != nil {
		return nil, fmt.Errorf("%s: %w", nodesFile, err)
	}
	linkRecords := []*LinkRecord{}
	if err := gocsv.Unmarshal(links, &linkRecords); err != nil {
		return nil, fmt.Errorf("%s: %w", linksFile, err)
	}

	topo := framework.NewTopology()
	for i, r := range nodeRecords {
		if field, err := addNode(topo, *r); err != nil {
			return nil, &ParseError{File: nodesFile, Section: "topology", Index: i + 1, Field: field, Err: err}
		}
	}
	for i, r := range linkRecords {
		if field, err := addLink(topo, *r); err != nil {
			return nil, &ParseError{File: linksFile, Section: "links", Index: i + 1, Field: field, Err: err}
		}
	}
	return topo, nil
}

// ReadCSVCatalog reads the VNF table
func ReadCSVCatalog(r io.Reader, file string) (*framework.Catalog, error) {
	records := []*VNFRecord{}
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	catalog := framework.NewCatalog()
	for i, rec := range records {
		if field, err := addVNF(catalog, *rec); err != nil {
			return nil, &ParseError{File: file, Section: "vnfs", Index: i + 1, Field: field, Err: err}
		}
	}
	return catalog, nil
}

// ReadCSVSFCs reads the SFC table
func ReadCSVSFCs(r io.Reader, file string, catalog *framework.Catalog) ([]framework.SFC, error) {
	records := []*SFCRecord{}
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	sfcs := make([]framework.SFC, 0, len(records))
	for i, rec := range records {
		ids, err := parseIDList(rec.VNFs)
		if err != nil {
			return nil, &ParseError{File: file, Section: "sfcs", Index: i + 1, Field: "vnfs", Err: err}
		}
		sfc, field, err := newSFC(catalog, i+1, ids, rec.MaxDelay)
		if err != nil {
			return nil, &ParseError{File: file, Section: "sfcs", Index: i + 1, Field: field, Err: err}
		}
		sfcs = append(sfcs, sfc)
	}
	return sfcs, nil
}

func parseIDList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ";")
	ids := make([]int, len(parts))
	for i, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", p)
		}
		ids[i] = id
	}
	return ids, nil
}

// LoadCSV reads the four csv tables
func LoadCSV(nodesFile, linksFile, vnfFile, sfcFile string) (*Input, error) {
	topo, err := readFile(nodesFile, func(nodes io.Reader) (*framework.Topology, error) {
		return readFile(linksFile, func(links io.Reader) (*framework.Topology, error) {
			return ReadCSVTopology(nodes, nodesFile, links, linksFile)
		})
	})
	if err != nil {
		return nil, err
	}
	catalog, err := readFile(vnfFile, func(r io.Reader) (*framework.Catalog, error) {
		return ReadCSVCatalog(r, vnfFile)
	})
	if err != nil {
		return nil, err
	}
	sfcs, err := readFile(sfcFile, func(r io.Reader) ([]framework.SFC, error) {
		return ReadCSVSFCs(r, sfcFile, catalog)
	})
	if err != nil {
		return nil, err
	}
	return &Input{Topology: topo, Catalog: catalog, SFCs: sfcs}, nil
}
