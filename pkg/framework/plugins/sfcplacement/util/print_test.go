package util

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"

	"github.com/sagin-nfv/sfcplacer/pkg/api/v1alpha1"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/analysis"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
)

func TestPrintTopology(t *testing.T) {
	topo := framework.NewTopology()
	_ = topo.AddNode(1, framework.Space, 10)
	_ = topo.AddNode(2, framework.Ground, 20)
	_ = topo.AddLink(1, 2, 100, 5)

	var buf bytes.Buffer
	if err := PrintTopology(&buf, topo); err != nil {
		t.Fatalf("PrintTopology: %v", err)
	}
	want := `Topology:
Nodes:
Node 1 (Type: Space, CPU: 10)
Node 2 (Type: Ground, CPU: 20)
Links:
Link between Node 1 and Node 2 (Bandwidth: 100, Delay: 5)
Link between Node 2 and Node 1 (Bandwidth: 100, Delay: 5)
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintSFCs(t *testing.T) {
	sfcs := []framework.SFC{{
		ID:       3,
		MaxDelay: 40,
		VNFs:     []framework.VNF{{ID: 7, CPURequirement: 2, ProcessingDelay: 1}},
	}}
	var buf bytes.Buffer
	if err := PrintSFCs(&buf, sfcs); err != nil {
		t.Fatalf("PrintSFCs: %v", err)
	}
	want := `Service Function Chains (SFCs):
SFC ID: 3, Max Delay: 40
VNFs:
  VNF ID: 7, CPU Requirement: 2, VNF Delay: 1
------------------------
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintPathResult(t *testing.T) {
	sfc := framework.SFC{ID: 2, MaxDelay: 10}
	tests := []struct {
		name   string
		result framework.PlacementResult
		want   []string
	}{
		{
			name: "Placed",
			result: framework.PlacementResult{
				SFC: sfc, Outcome: framework.OutcomePlaced, Path: framework.Path{1, 2, 3, 4, 5},
				LinkDelay: 4, ProcessingDelay: 3, WithinBudget: true,
			},
			want: []string{"Shortest Path for SFC ID 2:", "Path: 1 -> 2 -> 3 -> 4 -> 5 -> End", "End-to-end delay: 7"},
		},
		{
			name: "OverBudget",
			result: framework.PlacementResult{
				SFC: sfc, Outcome: framework.OutcomePlaced, Path: framework.Path{1, 2}, LinkDelay: 20,
			},
			want: []string{"(over budget)"},
		},
		{
			name:   "NoPath",
			result: framework.PlacementResult{SFC: sfc, Outcome: framework.OutcomeNoPath},
			want:   []string{"No path of the required length found."},
		},
		{
			name:   "Budget",
			result: framework.PlacementResult{SFC: sfc, Outcome: framework.OutcomeBudgetExceeded, Message: "after 10 expansions"},
			want:   []string{"Search budget exceeded: after 10 expansions"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := PrintPathResult(&buf, tt.result); err != nil {
				t.Fatalf("PrintPathResult: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("Output %q does not contain %q", buf.String(), w)
				}
			}
		})
	}

	if err := PrintPathResult(&bytes.Buffer{}, framework.PlacementResult{Outcome: "Bogus"}); err == nil {
		t.Error("Expected an error for an unknown outcome")
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	s := analysis.Summary{
		Total: 2, Placed: 1, NoPath: 1, MeanLinkDelay: 4, MaxLinkDelay: 4,
		CategoryUsage: map[framework.NodeCategory]int{framework.Air: 5},
	}
	if err := PrintSummary(&buf, s); err != nil {
		t.Fatalf("PrintSummary: %v", err)
	}
	for _, w := range []string{"2 SFCs, 1 placed, 1 without path", "mean 4.00", "Air 5"} {
		if !strings.Contains(buf.String(), w) {
			t.Errorf("Output %q does not contain %q", buf.String(), w)
		}
	}
}

func TestPlotPathDelays(t *testing.T) {
	results := []framework.PlacementResult{
		{SFC: framework.SFC{ID: 1, MaxDelay: 9}, Outcome: framework.OutcomePlaced, LinkDelay: 4},
		{SFC: framework.SFC{ID: 2}, Outcome: framework.OutcomeNoPath},
	}
	file := filepath.Join(t.TempDir(), "delays.html")
	if err := PlotPathDelays(results, file); err != nil {
		t.Fatalf("PlotPathDelays: %v", err)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Path delay per SFC") {
		t.Error("Chart title missing from rendered page")
	}

	if err := PlotPathDelays(results[1:], file); err == nil {
		t.Error("Expected an error when no SFC has a path")
	}
}

func TestWriteReport(t *testing.T) {
	report := &v1alpha1.PlacementReport{
		TypeMeta:   metav1.TypeMeta{APIVersion: v1alpha1.SchemeGroupVersion.String(), Kind: "PlacementReport"},
		ObjectMeta: metav1.ObjectMeta{Name: "run-1"},
		Spec:       v1alpha1.PlacementReportSpec{PathNodes: 5, StartNode: 3},
		Status: v1alpha1.PlacementReportStatus{
			Results: []v1alpha1.SFCPlacementResult{{SFCID: 1, VNFs: []int{1}, Outcome: "Placed", Path: []int{3, 1, 2, 4, 5}}},
		},
	}
	for _, format := range []v1alpha1.OutputFormat{v1alpha1.OutputFormatJSON, v1alpha1.OutputFormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteReport(&buf, report, format); err != nil {
				t.Fatalf("WriteReport: %v", err)
			}
			// sigs.k8s.io/yaml reads json as well
			var got v1alpha1.PlacementReport
			if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if diff := cmp.Diff(report.Status.Results, got.Status.Results); diff != "" {
				t.Errorf("Results mismatch (-want +got):\n%s", diff)
			}
		})
	}
	if err := WriteReport(&bytes.Buffer{}, report, v1alpha1.OutputFormatText); err == nil {
		t.Error("Expected an error for the text format")
	}
}
