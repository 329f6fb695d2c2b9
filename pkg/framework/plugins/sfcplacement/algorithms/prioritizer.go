package algorithms

import (
	"cmp"

	"golang.org/x/exp/slices"

	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
)

// SortByMaxDelay orders sfcs in place by descending MaxDelay. SFCs with equal
// budgets keep their input order.
func SortByMaxDelay(sfcs []framework.SFC) {
	slices.SortStableFunc(sfcs, func(a, b framework.SFC) int {
		return cmp.Compare(b.MaxDelay, a.MaxDelay)
	})
}

// IsPrioritized reports whether every SFC's budget is at least its successor's
func IsPrioritized(sfcs []framework.SFC) bool {
	for i := 1; i < len(sfcs); i++ {
		if sfcs[i-1].MaxDelay < sfcs[i].MaxDelay {
			return false
		}
	}
	return true
}
