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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/sagin-nfv/sfcplacer/pkg/api/v1alpha1"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/algorithms"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/analysis"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/constraints"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/objectives/delay"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/warmstart"
	"github.com/sagin-nfv/sfcplacer/pkg/loader"
	"github.com/sagin-nfv/sfcplacer/pkg/metrics"
	"github.com/sagin-nfv/sfcplacer/pkg/tracing"
)

const PluginName = "SFCPlacement"

// Placer places SFCs one after another, in descending MaxDelay order, on the
// minimum delay path the bounded search finds for each of them
type Placer struct {
	logger   klog.Logger
	args     *v1alpha1.SFCPlacementArgs
	search   *algorithms.PathSearch
	recorder *metrics.Recorder
	tracer   trace.Tracer
}

// Option customizes a Placer
type Option func(*Placer)

// WithRecorder sets the metrics recorder; a fresh one is used otherwise
func WithRecorder(r *metrics.Recorder) Option {
	return func(p *Placer) {
		p.recorder = r
	}
}

// WithTracerProvider sets where spans go; the global provider is used otherwise
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *Placer) {
		p.tracer = tp.Tracer(tracing.TracerName)
	}
}

// New builds a Placer from its arguments
func New(ctx context.Context, args runtime.Object, opts ...Option) (*Placer, error) {
	placementArgs, ok := args.(*v1alpha1.SFCPlacementArgs)
	if !ok {
		return nil, fmt.Errorf("want args to be of type SFCPlacementArgs, got %T", args)
	}
	logger := klog.FromContext(ctx).WithValues("plugin", PluginName)

	search, err := algorithms.NewPathSearch(algorithms.PathSearchConfig{
		PathNodes:       placementArgs.PathNodes,
		MaxExpansions:   placementArgs.MaxExpansions,
		StartNodePolicy: warmstart.Policy(placementArgs.StartNodePolicy),
	})
	if err != nil {
		return nil, fmt.Errorf("invalid search configuration: %w", err)
	}

	p := &Placer{
		logger: logger,
		args:   placementArgs,
		search: search,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.recorder == nil {
		p.recorder = metrics.NewRecorder()
	}
	if p.tracer == nil {
		p.tracer = tracing.Tracer()
	}
	return p, nil
}

// Name retrieves the plugin name
func (p *Placer) Name() string {
	return PluginName
}

// Recorder returns the metrics recorder of the Placer
func (p *Placer) Recorder() *metrics.Recorder {
	return p.recorder
}

// RunResult holds everything a run produced
type RunResult struct {
	ID string

	// Prioritized is the processing order
	Prioritized []framework.SFC
	Results     []framework.PlacementResult
	Summary     analysis.Summary

	Nodes, Links, VNFs int

	StartTime      time.Time
	CompletionTime time.Time
}

// Run places every SFC of in. A search that finds no path, or runs out of
// budget, is recorded and the run continues. When commits are enabled the
// topology of in is modified. in.SFCs is reordered in place and
// RunResult.Prioritized shares its backing array.
func (p *Placer) Run(ctx context.Context, in *loader.Input) (*RunResult, error) {
	run := &RunResult{
		ID:          uuid.NewString(),
		Prioritized: in.SFCs,
		Nodes:       in.Topology.Len(),
		Links:       len(in.Topology.Links()) / 2,
		VNFs:        in.Catalog.Len(),
		StartTime:   time.Now(),
	}
	logger := p.logger.WithValues("run", run.ID)

	ctx, span := p.tracer.Start(ctx, "PlacementRun", trace.WithAttributes(
		attribute.String("run.id", run.ID),
		attribute.Int("sfc.count", len(in.SFCs)),
		attribute.Int("topology.nodes", run.Nodes),
	))
	defer span.End()

	algorithms.SortByMaxDelay(run.Prioritized)
	logger.V(2).Info("SFCs prioritized", "order", sfcIDs(run.Prioritized))

	commit := ptr.Deref(p.args.CommitPlacements, false)
	for _, sfc := range run.Prioritized {
		result, err := p.place(ctx, logger.WithValues("sfc", sfc.ID), in.Topology, sfc, commit)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		p.recorder.ObserveSearch(result)
		run.Results = append(run.Results, result)
	}

	run.CompletionTime = time.Now()
	run.Summary = analysis.Summarize(run.Results, in.Topology)
	p.recorder.SetNodeCPU(in.Topology.Nodes())
	span.SetAttributes(
		attribute.Int("sfc.placed", run.Summary.Placed),
		attribute.Int("sfc.no_path", run.Summary.NoPath),
	)
	logger.Info("Placement run finished", "sfcs", run.Summary.Total, "placed", run.Summary.Placed,
		"noPath", run.Summary.NoPath, "budgetExceeded", run.Summary.BudgetExceeded,
		"commitRejected", run.Summary.CommitRejected, "duration", run.CompletionTime.Sub(run.StartTime))
	return run, nil
}

// LoadAndRun loads the input files named in the arguments and runs the
// placement. A load error stops before any search.
func (p *Placer) LoadAndRun(ctx context.Context) (*loader.Input, *RunResult, error) {
	in, err := loader.Load(p.args)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load input: %w", err)
	}
	run, err := p.Run(ctx, in)
	if err != nil {
		return in, nil, err
	}
	return in, run, nil
}

func (p *Placer) place(ctx context.Context, logger klog.Logger, topo *framework.Topology, sfc framework.SFC, commit bool) (framework.PlacementResult, error) {
	ctx, span := p.tracer.Start(ctx, "FindPath", trace.WithAttributes(
		attribute.Int("sfc.id", sfc.ID),
		attribute.Int("sfc.vnfs", len(sfc.VNFs)),
		attribute.Int("sfc.max_delay", sfc.MaxDelay),
	))
	defer span.End()

	result := framework.PlacementResult{SFC: sfc}

	found, err := p.search.FindPath(ctx, topo, sfc)
	if err != nil {
		// the search reports its origin only on success
		result.StartNode, _ = p.search.StartNode(topo)
	}
	switch {
	case err == nil:
	case errors.Is(err, algorithms.ErrNoPath):
		result.Outcome = framework.OutcomeNoPath
		result.Message = err.Error()
		logger.V(1).Info("No path found", "start", result.StartNode)
		span.SetAttributes(attribute.String("outcome", string(result.Outcome)))
		return result, nil
	case errors.Is(err, algorithms.ErrSearchBudgetExceeded):
		result.Outcome = framework.OutcomeBudgetExceeded
		result.Message = err.Error()
		result.Expansions = p.search.Config().MaxExpansions
		logger.Info("Search budget exceeded", "start", result.StartNode, "maxExpansions", result.Expansions)
		span.SetAttributes(attribute.String("outcome", string(result.Outcome)))
		return result, nil
	default:
		span.RecordError(err)
		return result, fmt.Errorf("sfc %d: %w", sfc.ID, err)
	}

	result.Outcome = framework.OutcomePlaced
	result.StartNode = found.StartNode
	result.Path = found.Path
	result.LinkDelay = found.Delay
	result.Expansions = found.Stats.Expansions
	result.ProcessingDelay = delay.ProcessingDelay(sfc)
	result.WithinBudget = result.LinkDelay+result.ProcessingDelay <= sfc.MaxDelay

	placement := constraints.Placement{SFC: sfc, Path: found.Path, Bandwidth: p.args.BandwidthPerChain}
	if commit {
		if err := constraints.CommitPlacement(topo, placement); err != nil {
			result.Outcome = framework.OutcomeCommitRejected
			result.Message = err.Error()
			logger.Info("Placement not committed", "path", found.Path.String(), "err", err)
		} else {
			result.Committed = true
		}
		p.recorder.ObserveCommit(result.Committed)
	} else if logger.V(3).Enabled() {
		for name, violation := range constraints.Evaluate(topo, placement, map[string]constraints.Constraint{
			"cpu":       constraints.CPUConstraint(),
			"bandwidth": constraints.BandwidthConstraint(),
		}) {
			logger.V(3).Info("Path would violate a resource constraint", "constraint", name, "err", violation)
		}
	}

	logger.V(1).Info("Path found", "path", found.Path.String(), "delay", found.Delay,
		"withinBudget", result.WithinBudget, "expansions", found.Stats.Expansions)
	span.SetAttributes(
		attribute.String("outcome", string(result.Outcome)),
		attribute.IntSlice("path", found.Path),
		attribute.Int("path.delay", found.Delay),
	)
	return result, nil
}

func sfcIDs(sfcs []framework.SFC) []int {
	ids := make([]int, len(sfcs))
	for i, s := range sfcs {
		ids[i] = s.ID
	}
	return ids
}
