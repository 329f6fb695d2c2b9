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

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// InputFormat selects the loader used for the input files
type InputFormat string

const (
	// InputFormatText reads whitespace separated token streams
	InputFormatText InputFormat = "text"
	// InputFormatCSV reads headed CSV files
	InputFormatCSV InputFormat = "csv"
	// InputFormatYAML reads a single scenario document
	InputFormatYAML InputFormat = "yaml"
)

// OutputFormat selects how results are written
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// SFCPlacementArgs holds the arguments used to configure a placement run
type SFCPlacementArgs struct {
	metav1.TypeMeta `json:",inline"`

	// InputFormat is one of text, csv or yaml. Defaults to text.
	InputFormat InputFormat `json:"inputFormat,omitempty"`

	// TopologyFile holds nodes and links (text) or nodes only (csv)
	TopologyFile string `json:"topologyFile,omitempty"`
	// LinksFile holds the links for the csv format
	LinksFile string `json:"linksFile,omitempty"`
	// VNFFile holds the VNF catalog
	VNFFile string `json:"vnfFile,omitempty"`
	// SFCFile holds the chains to place
	SFCFile string `json:"sfcFile,omitempty"`
	// ScenarioFile holds the whole input for the yaml format
	ScenarioFile string `json:"scenarioFile,omitempty"`

	// PathNodes is the exact number of distinct nodes in every path. Defaults to 5.
	PathNodes int `json:"pathNodes,omitempty"`
	// MaxExpansions bounds the search per SFC. 0 means unlimited.
	MaxExpansions int `json:"maxExpansions,omitempty"`
	// StartNodePolicy is MaxAvailableCPU or MaxTotalCPU
	StartNodePolicy string `json:"startNodePolicy,omitempty"`

	// CommitPlacements reserves CPU and bandwidth for every found path
	CommitPlacements *bool `json:"commitPlacements,omitempty"`
	// BandwidthPerChain is reserved on every hop when committing
	BandwidthPerChain int `json:"bandwidthPerChain,omitempty"`

	// Output is one of text, json or yaml. Defaults to text.
	Output OutputFormat `json:"output,omitempty"`
	// ChartFile, when set, receives an HTML chart of path delays
	ChartFile string `json:"chartFile,omitempty"`
	// MetricsFile, when set, receives the run metrics in Prometheus text format
	MetricsFile string `json:"metricsFile,omitempty"`

	// Tracing configures OpenTelemetry export
	Tracing TracingConfiguration `json:"tracing,omitempty"`
}

// TracingConfiguration holds the OpenTelemetry settings
type TracingConfiguration struct {
	// CollectorEndpoint is the OTLP gRPC endpoint. Tracing is disabled when empty.
	CollectorEndpoint string `json:"collectorEndpoint,omitempty"`
	// ServiceName reported on every span
	ServiceName string `json:"serviceName,omitempty"`
	// SampleRate is the ratio of runs traced, between 0 and 1
	SampleRate *float64 `json:"sampleRate,omitempty"`
}
