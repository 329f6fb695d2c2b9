package benchmarks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"k8s.io/klog/v2"

	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/algorithms"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/analysis"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/objectives/delay"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/util"
	"github.com/sagin-nfv/sfcplacer/pkg/loader"
)

// TestSuite runs the path search over a set of scenarios
type TestSuite struct {
	scenarios []Scenario
	config    algorithms.PathSearchConfig
}

// SuiteResult is the outcome of one scenario
type SuiteResult struct {
	Scenario string
	Summary  analysis.Summary
	Duration time.Duration
	// Expansions summed over all searches that finished
	Expansions int
}

// NewTestSuite creates a new benchmark test suite
func NewTestSuite(config algorithms.PathSearchConfig) *TestSuite {
	return &TestSuite{
		config: config,
	}
}

// AddScenario adds a scenario to the test suite
func (ts *TestSuite) AddScenario(s Scenario) {
	ts.scenarios = append(ts.scenarios, s)
}

// AddStandardScenarios adds one scenario of every generator
func (ts *TestSuite) AddStandardScenarios() {
	ts.AddScenario(Complete(8, 1))
	ts.AddScenario(Ring(12, 2))
	ts.AddScenario(Grid(4, 4, 3))
	ts.AddScenario(Layered(4, 6, 10, 4))
}

// Run searches a path for every SFC of every scenario. When outputDir is not
// empty each scenario is written there as yaml, with an HTML delay chart.
func (ts *TestSuite) Run(ctx context.Context, outputDir string) ([]SuiteResult, error) {
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	search, err := algorithms.NewPathSearch(ts.config)
	if err != nil {
		return nil, err
	}

	var out []SuiteResult
	for _, sc := range ts.scenarios {
		klog.V(2).InfoS("Running path search", "scenario", sc.Name, "nodes", sc.Input.Topology.Len(), "sfcs", len(sc.Input.SFCs))
		res, err := runScenario(ctx, search, sc)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		out = append(out, res.SuiteResult)

		if outputDir != "" {
			if err := writeScenario(filepath.Join(outputDir, sc.Name+".yaml"), sc.Input); err != nil {
				return nil, err
			}
			if err := util.PlotPathDelays(res.results, filepath.Join(outputDir, sc.Name+"_delays.html")); err != nil {
				klog.InfoS("Failed to plot results", "scenario", sc.Name, "err", err)
			}
		}
		klog.V(2).InfoS("Scenario done", "scenario", sc.Name, "placed", res.Summary.Placed,
			"noPath", res.Summary.NoPath, "meanDelay", res.Summary.MeanLinkDelay, "duration", res.Duration)
	}
	return out, nil
}

type scenarioRun struct {
	SuiteResult
	results []framework.PlacementResult
}

func runScenario(ctx context.Context, search *algorithms.PathSearch, sc Scenario) (scenarioRun, error) {
	sfcs := append([]framework.SFC(nil), sc.Input.SFCs...)
	algorithms.SortByMaxDelay(sfcs)

	run := scenarioRun{SuiteResult: SuiteResult{Scenario: sc.Name}}
	start := time.Now()
	for _, sfc := range sfcs {
		r := framework.PlacementResult{SFC: sfc}
		found, err := search.FindPath(ctx, sc.Input.Topology, sfc)
		switch {
		case err == nil:
			b, err := delay.EndToEndDelay(sc.Input.Topology, found.Path, sfc)
			if err != nil {
				return run, err
			}
			r.Outcome, r.Path = framework.OutcomePlaced, found.Path
			r.LinkDelay, r.ProcessingDelay, r.WithinBudget = found.Delay, b.Processing, b.WithinBudget()
			run.Expansions += found.Stats.Expansions
		case errors.Is(err, algorithms.ErrNoPath):
			r.Outcome = framework.OutcomeNoPath
		case errors.Is(err, algorithms.ErrSearchBudgetExceeded):
			r.Outcome = framework.OutcomeBudgetExceeded
		default:
			return run, err
		}
		run.results = append(run.results, r)
	}
	run.Duration = time.Since(start)
	run.Summary = analysis.Summarize(run.results, sc.Input.Topology)
	return run, nil
}

func writeScenario(path string, in *loader.Input) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return loader.WriteScenario(f, in)
}
