package util

import (
	"errors"
	"fmt"
	"io"

	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/analysis"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
)

// errWriter keeps the first write error so the printers can stay linear
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// PrintTopology writes every node and every stored directed link entry
func PrintTopology(w io.Writer, topo *framework.Topology) error {
	ew := &errWriter{w: w}
	ew.printf("Topology:\n")
	ew.printf("Nodes:\n")
	for _, n := range topo.Nodes() {
		ew.printf("Node %d (Type: %s, CPU: %d)\n", n.ID, n.Category, n.CPU)
	}
	ew.printf("Links:\n")
	for _, l := range topo.Links() {
		ew.printf("Link between Node %d and Node %d (Bandwidth: %d, Delay: %d)\n", l.Node1, l.Node2, l.Bandwidth, l.Delay)
	}
	return ew.err
}

// PrintSFCs writes every chain with its VNFs
func PrintSFCs(w io.Writer, sfcs []framework.SFC) error {
	ew := &errWriter{w: w}
	ew.printf("Service Function Chains (SFCs):\n")
	for _, s := range sfcs {
		ew.printf("SFC ID: %d, Max Delay: %d\n", s.ID, s.MaxDelay)
		ew.printf("VNFs:\n")
		for _, v := range s.VNFs {
			ew.printf("  VNF ID: %d, CPU Requirement: %d, VNF Delay: %d\n", v.ID, v.CPURequirement, v.ProcessingDelay)
		}
		ew.printf("------------------------\n")
	}
	return ew.err
}

// PrintPathResult writes the path found for one SFC, or why there is none
func PrintPathResult(w io.Writer, r framework.PlacementResult) error {
	ew := &errWriter{w: w}
	ew.printf("Shortest Path for SFC ID %d:\n", r.SFC.ID)
	switch r.Outcome {
	case framework.OutcomePlaced, framework.OutcomeCommitRejected:
		ew.printf("Path: %s\n", r.Path)
		ew.printf("Link delay: %d, End-to-end delay: %d, Max delay: %d", r.LinkDelay, r.LinkDelay+r.ProcessingDelay, r.SFC.MaxDelay)
		if !r.WithinBudget {
			ew.printf(" (over budget)")
		}
		ew.printf("\n")
		if r.Outcome == framework.OutcomeCommitRejected {
			ew.printf("Commit rejected: %s\n", r.Message)
		}
	case framework.OutcomeNoPath:
		ew.printf("No path of the required length found.\n")
	case framework.OutcomeBudgetExceeded:
		ew.printf("Search budget exceeded: %s\n", r.Message)
	default:
		return errors.Join(ew.err, fmt.Errorf("unknown outcome %q", r.Outcome))
	}
	return ew.err
}

// PrintSummary writes the aggregate figures of a run
func PrintSummary(w io.Writer, s analysis.Summary) error {
	ew := &errWriter{w: w}
	ew.printf("Summary: %d SFCs, %d placed, %d without path, %d over search budget, %d commit rejected\n",
		s.Total, s.Placed, s.NoPath, s.BudgetExceeded, s.CommitRejected)
	if s.Placed+s.CommitRejected > 0 {
		ew.printf("Link delay: mean %.2f, max %d; %d paths over their delay budget\n", s.MeanLinkDelay, s.MaxLinkDelay, s.OverDelayBudget)
		ew.printf("Node visits: Space %d, Air %d, Ground %d\n",
			s.CategoryUsage[framework.Space], s.CategoryUsage[framework.Air], s.CategoryUsage[framework.Ground])
	}
	return ew.err
}
