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
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/utils/ptr"

	"github.com/sagin-nfv/sfcplacer/pkg/api/v1alpha1"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/warmstart"
)

var (
	supportedInputFormats  = []string{string(v1alpha1.InputFormatText), string(v1alpha1.InputFormatCSV), string(v1alpha1.InputFormatYAML)}
	supportedOutputFormats = []string{string(v1alpha1.OutputFormatText), string(v1alpha1.OutputFormatJSON), string(v1alpha1.OutputFormatYAML)}
	supportedPolicies      = []string{string(warmstart.MaxAvailableCPU), string(warmstart.MaxTotalCPU)}
)

// ValidateSFCPlacementArgs validates the SFCPlacement arguments. Defaults are
// expected to be applied already. All problems are reported together.
func ValidateSFCPlacementArgs(obj runtime.Object) error {
	args := obj.(*v1alpha1.SFCPlacementArgs)
	var errs field.ErrorList

	requireFile := func(name, value string) {
		if value == "" {
			errs = append(errs, field.Required(field.NewPath(name), "required for input format "+string(args.InputFormat)))
		}
	}
	switch args.InputFormat {
	case v1alpha1.InputFormatText:
		requireFile("topologyFile", args.TopologyFile)
		requireFile("vnfFile", args.VNFFile)
		requireFile("sfcFile", args.SFCFile)
	case v1alpha1.InputFormatCSV:
		requireFile("topologyFile", args.TopologyFile)
		requireFile("linksFile", args.LinksFile)
		requireFile("vnfFile", args.VNFFile)
		requireFile("sfcFile", args.SFCFile)
	case v1alpha1.InputFormatYAML:
		requireFile("scenarioFile", args.ScenarioFile)
	default:
		errs = append(errs, field.NotSupported(field.NewPath("inputFormat"), args.InputFormat, supportedInputFormats))
	}

	if args.PathNodes < 1 {
		errs = append(errs, field.Invalid(field.NewPath("pathNodes"), args.PathNodes, "must be at least 1"))
	}
	if args.MaxExpansions < 0 {
		errs = append(errs, field.Invalid(field.NewPath("maxExpansions"), args.MaxExpansions, "must not be negative"))
	}
	if args.BandwidthPerChain < 0 {
		errs = append(errs, field.Invalid(field.NewPath("bandwidthPerChain"), args.BandwidthPerChain, "must not be negative"))
	}
	if args.BandwidthPerChain > 0 && !ptr.Deref(args.CommitPlacements, false) {
		errs = append(errs, field.Invalid(field.NewPath("bandwidthPerChain"), args.BandwidthPerChain, "has no effect unless commitPlacements is true"))
	}
	if _, err := warmstart.ForPolicy(warmstart.Policy(args.StartNodePolicy)); err != nil {
		errs = append(errs, field.NotSupported(field.NewPath("startNodePolicy"), args.StartNodePolicy, supportedPolicies))
	}

	switch args.Output {
	case v1alpha1.OutputFormatText, v1alpha1.OutputFormatJSON, v1alpha1.OutputFormatYAML:
	default:
		errs = append(errs, field.NotSupported(field.NewPath("output"), args.Output, supportedOutputFormats))
	}

	if rate := args.Tracing.SampleRate; rate != nil && (*rate < 0 || *rate > 1) {
		errs = append(errs, field.Invalid(field.NewPath("tracing", "sampleRate"), *rate, "must be between 0 and 1"))
	}

	if len(errs) == 0 {
		return nil
	}
	return errs.ToAggregate()
}
