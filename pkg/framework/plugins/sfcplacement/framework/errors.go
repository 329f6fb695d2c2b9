package framework

import (
	"errors"
	"fmt"
)

var (
	ErrNodeNotFound = errors.New("node not found")
	ErrLinkNotFound = errors.New("link not found")
)

// InvalidCategoryError is returned for category codes outside {0,1,2}
type InvalidCategoryError struct {
	Code int
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid node category code %d (want 0=Space, 1=Air or 2=Ground)", e.Code)
}

// UnknownVNFError is returned when an SFC references a VNF missing from the catalog
type UnknownVNFError struct {
	SFCID int
	VNFID int
}

func (e *UnknownVNFError) Error() string {
	return fmt.Sprintf("sfc %d: VNF with ID %d not found", e.SFCID, e.VNFID)
}

// DuplicateIDError is returned when an entity ID is registered twice
type DuplicateIDError struct {
	Kind string
	ID   int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate %s id %d", e.Kind, e.ID)
}
