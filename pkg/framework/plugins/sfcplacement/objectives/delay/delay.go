package delay

import (
	"fmt"

	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
)

// Breakdown splits the end-to-end delay of a placed chain into its parts
type Breakdown struct {
	Link       int // sum of hop delays along the path
	Processing int // sum of VNF processing delays
	Total      int
	Budget     int // the chain's MaxDelay
}

// WithinBudget reports whether the total delay fits the chain's budget
func (b Breakdown) WithinBudget() bool {
	return b.Total <= b.Budget
}

// Slack is the remaining budget; negative when the budget is exceeded
func (b Breakdown) Slack() int {
	return b.Budget - b.Total
}

// LinkDelay sums the delay of every hop in path, using the lowest-delay entry
// for each consecutive pair. A hop with no link returns framework.ErrLinkNotFound.
func LinkDelay(topo *framework.Topology, path framework.Path) (int, error) {
	total := 0
	for i := 1; i < len(path); i++ {
		l, ok := topo.Link(path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("hop %d -> %d: %w", path[i-1], path[i], framework.ErrLinkNotFound)
		}
		total += l.Delay
	}
	return total, nil
}

// ProcessingDelay sums the processing delay of every VNF in the chain
func ProcessingDelay(sfc framework.SFC) int {
	total := 0
	for _, v := range sfc.VNFs {
		total += v.ProcessingDelay
	}
	return total
}

// EndToEndDelay is LinkDelay plus ProcessingDelay
func EndToEndDelay(topo *framework.Topology, path framework.Path, sfc framework.SFC) (Breakdown, error) {
	link, err := LinkDelay(topo, path)
	if err != nil {
		return Breakdown{}, fmt.Errorf("sfc %d: %w", sfc.ID, err)
	}
	proc := ProcessingDelay(sfc)
	return Breakdown{
		Link:       link,
		Processing: proc,
		Total:      link + proc,
		Budget:     sfc.MaxDelay,
	}, nil
}
