/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package sfcplacement

import (
	"strconv"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	"github.com/sagin-nfv/sfcplacer/pkg/api/v1alpha1"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/constraints"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
)

// NewReport converts a run into its serializable form
func (p *Placer) NewReport(run *RunResult) *v1alpha1.PlacementReport {
	report := &v1alpha1.PlacementReport{
		TypeMeta: metav1.TypeMeta{
			APIVersion: v1alpha1.SchemeGroupVersion.String(),
			Kind:       "PlacementReport",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:              run.ID,
			CreationTimestamp: metav1.NewTime(run.StartTime),
		},
		Spec: v1alpha1.PlacementReportSpec{
			PathNodes:        p.search.Config().PathNodes,
			StartNodePolicy:  p.args.StartNodePolicy,
			CommitPlacements: ptr.Deref(p.args.CommitPlacements, false),
			Nodes:            run.Nodes,
			Links:            run.Links,
			VNFs:             run.VNFs,
			SFCs:             len(run.Prioritized),
		},
		Status: v1alpha1.PlacementReportStatus{
			CompletionTime: ptr.To(metav1.NewTime(run.CompletionTime)),
		},
	}
	if len(run.Results) > 0 {
		report.Spec.StartNode = run.Results[0].StartNode
	}

	for _, r := range run.Results {
		report.Status.Results = append(report.Status.Results, convertResult(r))
	}

	s := run.Summary
	report.Status.Summary = v1alpha1.PlacementSummary{
		Placed:          s.Placed,
		NoPath:          s.NoPath,
		BudgetExceeded:  s.BudgetExceeded,
		CommitRejected:  s.CommitRejected,
		OverDelayBudget: s.OverDelayBudget,
		MeanLinkDelay:   strconv.FormatFloat(s.MeanLinkDelay, 'f', 2, 64),
		MaxLinkDelay:    s.MaxLinkDelay,
	}
	if len(s.CategoryUsage) > 0 {
		report.Status.Summary.CategoryUsage = make(map[string]int, len(s.CategoryUsage))
		for category, n := range s.CategoryUsage {
			report.Status.Summary.CategoryUsage[category.String()] = n
		}
	}
	return report
}

func convertResult(r framework.PlacementResult) v1alpha1.SFCPlacementResult {
	out := v1alpha1.SFCPlacementResult{
		SFCID:           r.SFC.ID,
		VNFs:            make([]int, len(r.SFC.VNFs)),
		MaxDelay:        r.SFC.MaxDelay,
		Outcome:         string(r.Outcome),
		Path:            r.Path,
		StartNode:       r.StartNode,
		LinkDelay:       r.LinkDelay,
		ProcessingDelay: r.ProcessingDelay,
		WithinBudget:    r.WithinBudget,
		Committed:       r.Committed,
		Expansions:      r.Expansions,
		Message:         r.Message,
	}
	for i, v := range r.SFC.VNFs {
		out.VNFs[i] = v.ID
	}
	if r.Committed {
		for _, b := range constraints.Bind(r.Path, r.SFC) {
			out.Bindings = append(out.Bindings, v1alpha1.VNFBinding{VNFID: b.VNF.ID, NodeID: b.Node})
		}
	}
	return out
}
