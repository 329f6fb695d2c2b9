package analysis

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
)

func TestSummarize(t *testing.T) {
	topo := framework.NewTopology()
	_ = topo.AddNode(1, framework.Space, 10)
	_ = topo.AddNode(2, framework.Air, 10)
	_ = topo.AddNode(3, framework.Ground, 10)

	results := []framework.PlacementResult{
		{Outcome: framework.OutcomePlaced, Path: framework.Path{1, 2, 3}, LinkDelay: 4, WithinBudget: true},
		{Outcome: framework.OutcomePlaced, Path: framework.Path{1, 3}, LinkDelay: 10},
		{Outcome: framework.OutcomeCommitRejected, Path: framework.Path{1, 2}, LinkDelay: 1, WithinBudget: true},
		{Outcome: framework.OutcomeNoPath},
		{Outcome: framework.OutcomeBudgetExceeded},
	}

	got := Summarize(results, topo)
	want := Summary{
		Total:           5,
		Placed:          2,
		NoPath:          1,
		BudgetExceeded:  1,
		CommitRejected:  1,
		OverDelayBudget: 1,
		MeanLinkDelay:   5,
		MaxLinkDelay:    10,
		CategoryUsage: map[framework.NodeCategory]int{
			framework.Space:  3,
			framework.Air:    2,
			framework.Ground: 2,
		},
		NodeUsage: map[int]int{1: 3, 2: 2, 3: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summary mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2}, got.HottestNodes(2)); diff != "" {
		t.Errorf("HottestNodes mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil, framework.NewTopology())
	if got.Total != 0 || got.MeanLinkDelay != 0 || len(got.NodeUsage) != 0 {
		t.Errorf("Expected zero summary, got %+v", got)
	}
}
