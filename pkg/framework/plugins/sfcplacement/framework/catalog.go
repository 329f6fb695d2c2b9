package framework

import "golang.org/x/exp/slices"

// Catalog holds VNF definitions in registration order
type Catalog struct {
	vnfs  []VNF
	index map[int]int
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[int]int)}
}

// Add registers a VNF definition
func (c *Catalog) Add(v VNF) error {
	if _, exists := c.index[v.ID]; exists {
		return &DuplicateIDError{Kind: "vnf", ID: v.ID}
	}
	c.index[v.ID] = len(c.vnfs)
	c.vnfs = append(c.vnfs, v)
	return nil
}

// Get looks up a VNF by ID
func (c *Catalog) Get(id int) (VNF, bool) {
	i, ok := c.index[id]
	if !ok {
		return VNF{}, false
	}
	return c.vnfs[i], true
}

// VNFs returns a copy of all definitions in registration order
func (c *Catalog) VNFs() []VNF {
	return slices.Clone(c.vnfs)
}

// Len returns the number of VNF definitions
func (c *Catalog) Len() int {
	return len(c.vnfs)
}

// NewSFC builds an SFC holding value copies of the referenced VNFs.
// A reference to an unknown VNF returns *UnknownVNFError.
func (c *Catalog) NewSFC(id int, vnfIDs []int, maxDelay int) (SFC, error) {
	sfc := SFC{
		ID:       id,
		VNFs:     make([]VNF, 0, len(vnfIDs)),
		MaxDelay: maxDelay,
	}
	for _, vnfID := range vnfIDs {
		v, ok := c.Get(vnfID)
		if !ok {
			return SFC{}, &UnknownVNFError{SFCID: id, VNFID: vnfID}
		}
		sfc.VNFs = append(sfc.VNFs, v)
	}
	return sfc, nil
}
