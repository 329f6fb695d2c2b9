package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
)

// tokenReader reads integers from a whitespace separated stream
type tokenReader struct {
	file    string
	section string
	scanner *bufio.Scanner
	pos     int
}

func newTokenReader(r io.Reader, file, section string) *tokenReader {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &tokenReader{file: file, section: section, scanner: s}
}

func (tr *tokenReader) fail(field string, err error) error {
	return &ParseError{File: tr.file, Section: tr.section, Index: tr.pos, Field: field, Err: err}
}

func (tr *tokenReader) next(field string) (int, error) {
	if !tr.scanner.Scan() {
		err := tr.scanner.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		tr.pos++
		return 0, tr.fail(field, err)
	}
	tr.pos++
	v, err := strconv.Atoi(tr.scanner.Text())
	if err != nil {
		return 0, tr.fail(field, fmt.Errorf("not an integer: %q", tr.scanner.Text()))
	}
	return v, nil
}

func (tr *tokenReader) count(field string) (int, error) {
	n, err := tr.next(field)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, tr.fail(field, fmt.Errorf("negative count %d", n))
	}
	return n, nil
}

// ReadTopology parses `n` followed by n (id category cpu) triples, then `m`
// followed by m (node1 node2 bandwidth delay) quadruples.
func ReadTopology(r io.Reader, file string) (*framework.Topology, error) {
	tr := newTokenReader(r, file, "topology")
	topo := framework.NewTopology()

	n, err := tr.count("nodeCount")
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		var rec NodeRecord
		if rec.ID, err = tr.next("id"); err != nil {
			return nil, err
		}
		if rec.Category, err = tr.next("category"); err != nil {
			return nil, err
		}
		if rec.CPU, err = tr.next("cpu"); err != nil {
			return nil, err
		}
		if field, err := addNode(topo, rec); err != nil {
			return nil, tr.fail(field, err)
		}
	}

	m, err := tr.count("linkCount")
	if err != nil {
		return nil, err
	}
	for i := 0; i < m; i++ {
		var rec LinkRecord
		if rec.Node1, err = tr.next("node1"); err != nil {
			return nil, err
		}
		if rec.Node2, err = tr.next("node2"); err != nil {
			return nil, err
		}
		if rec.Bandwidth, err = tr.next("bandwidth"); err != nil {
			return nil, err
		}
		if rec.Delay, err = tr.next("delay"); err != nil {
			return nil, err
		}
		if field, err := addLink(topo, rec); err != nil {
			return nil, tr.fail(field, err)
		}
	}
	return topo, nil
}

// ReadCatalog parses `k` followed by k (id cpu delay) triples
func ReadCatalog(r io.Reader, file string) (*framework.Catalog, error) {
	tr := newTokenReader(r, file, "vnfs")
	catalog := framework.NewCatalog()

	k, err := tr.count("vnfCount")
	if err != nil {
		return nil, err
	}
	for i := 0; i < k; i++ {
		var rec VNFRecord
		if rec.ID, err = tr.next("id"); err != nil {
			return nil, err
		}
		if rec.CPU, err = tr.next("cpu"); err != nil {
			return nil, err
		}
		if rec.Delay, err = tr.next("delay"); err != nil {
			return nil, err
		}
		if field, err := addVNF(catalog, rec); err != nil {
			return nil, tr.fail(field, err)
		}
	}
	return catalog, nil
}

// ReadSFCs parses `s` followed by s chains of (count id... maxDelay).
// Every VNF ID must exist in catalog.
func ReadSFCs(r io.Reader, file string, catalog *framework.Catalog) ([]framework.SFC, error) {
	tr := newTokenReader(r, file, "sfcs")

	s, err := tr.count("sfcCount")
	if err != nil {
		return nil, err
	}
	// counts come from the file; slices grow as tokens actually arrive
	var sfcs []framework.SFC
	for i := 0; i < s; i++ {
		count, err := tr.count("vnfCount")
		if err != nil {
			return nil, err
		}
		var ids []int
		for j := 0; j < count; j++ {
			id, err := tr.next("vnfID")
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
		maxDelay, err := tr.next("maxDelay")
		if err != nil {
			return nil, err
		}
		sfc, field, err := newSFC(catalog, i+1, ids, maxDelay)
		if err != nil {
			return nil, tr.fail(field, err)
		}
		sfcs = append(sfcs, sfc)
	}
	return sfcs, nil
}

// LoadText reads the three text files
func LoadText(topologyFile, vnfFile, sfcFile string) (*Input, error) {
	topo, err := readFile(topologyFile, func(r io.Reader) (*framework.Topology, error) {
		return ReadTopology(r, topologyFile)
	})
	if err != nil {
		return nil, err
	}
	catalog, err := readFile(vnfFile, func(r io.Reader) (*framework.Catalog, error) {
		return ReadCatalog(r, vnfFile)
	})
	if err != nil {
		return nil, err
	}
	sfcs, err := readFile(sfcFile, func(r io.Reader) ([]framework.SFC, error) {
		return ReadSFCs(r, sfcFile, catalog)
	})
	if err != nil {
		return nil, err
	}
	return &Input{Topology: topo, Catalog: catalog, SFCs: sfcs}, nil
}

func readFile[T any](name string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	if name == "" {
		return zero, errors.New("input file name is empty")
	}
	f, err := os.Open(name)
	if err != nil {
		return zero, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()
	return read(f)
}
