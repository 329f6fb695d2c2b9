package constraints

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
)

// CommitPlacement reserves the resources of p on topo: the CPU of every bound VNF
// and p.Bandwidth on both directions of every hop. Either all reservations are
// applied or none are.
func CommitPlacement(topo *framework.Topology, p Placement) error {
	feasible := CombineConstraints(CPUConstraint(), BandwidthConstraint())
	if err := feasible(topo, p); err != nil {
		return fmt.Errorf("sfc %d: cannot commit %s: %w", p.SFC.ID, p.Path, err)
	}

	// rehearse on a copy so a failure halfway leaves topo untouched
	if err := reserve(topo.Clone(), p); err != nil {
		return fmt.Errorf("sfc %d: cannot commit %s: %w", p.SFC.ID, p.Path, err)
	}
	if err := reserve(topo, p); err != nil {
		return err
	}
	klog.V(3).InfoS("Committed placement", "sfc", p.SFC.ID, "path", p.Path.String(), "bandwidth", p.Bandwidth)
	return nil
}

func reserve(topo *framework.Topology, p Placement) error {
	for _, b := range Bind(p.Path, p.SFC) {
		if err := topo.ReserveCPU(b.Node, b.VNF.CPURequirement); err != nil {
			return err
		}
	}
	if p.Bandwidth == 0 {
		return nil
	}
	for i := 1; i < len(p.Path); i++ {
		if err := topo.ReserveBandwidth(p.Path[i-1], p.Path[i], p.Bandwidth); err != nil {
			return err
		}
	}
	return nil
}
