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

// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// PlacementReport records the outcome of one placement run.
// Its name is the run ID.
type PlacementReport struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   PlacementReportSpec   `json:"spec,omitempty"`
	Status PlacementReportStatus `json:"status,omitempty"`
}

// PlacementReportSpec describes the inputs of the run
type PlacementReportSpec struct {
	// PathNodes is the path length every search required
	PathNodes int `json:"pathNodes"`

	// StartNode is the origin of the first search. Without commits every
	// search in the run uses it.
	StartNode int `json:"startNode"`

	// StartNodePolicy used to pick StartNode
	StartNodePolicy string `json:"startNodePolicy,omitempty"`

	// CommitPlacements tells whether resources were reserved
	CommitPlacements bool `json:"commitPlacements"`

	// Nodes, Links, VNFs and SFCs count the loaded entities
	Nodes int `json:"nodes"`
	Links int `json:"links"`
	VNFs  int `json:"vnfs"`
	SFCs  int `json:"sfcs"`
}

// PlacementReportStatus holds the per-SFC results in processing order
type PlacementReportStatus struct {
	Results []SFCPlacementResult `json:"results,omitempty"`

	Summary PlacementSummary `json:"summary"`

	// CompletionTime is when the last SFC was processed
	CompletionTime *metav1.Time `json:"completionTime,omitempty"`
}

// SFCPlacementResult is the placement of a single SFC
type SFCPlacementResult struct {
	// SFCID is the 1-based position of the chain in the input
	SFCID int `json:"sfcID"`

	// VNFs lists the chain's VNF IDs in order
	VNFs []int `json:"vnfs"`

	MaxDelay int `json:"maxDelay"`

	// Outcome is Placed, NoPath, BudgetExceeded or CommitRejected
	Outcome string `json:"outcome"`

	Path []int `json:"path,omitempty"`

	// StartNode is the origin chosen for this search
	StartNode int `json:"startNode"`

	LinkDelay       int  `json:"linkDelay,omitempty"`
	ProcessingDelay int  `json:"processingDelay,omitempty"`
	WithinBudget    bool `json:"withinBudget,omitempty"`

	// Bindings maps each VNF to the node that hosts it when committed
	Bindings  []VNFBinding `json:"bindings,omitempty"`
	Committed bool         `json:"committed,omitempty"`

	Expansions int `json:"expansions,omitempty"`

	// Message explains a non Placed outcome
	Message string `json:"message,omitempty"`
}

// VNFBinding represents one VNF hosted on one node
type VNFBinding struct {
	VNFID  int `json:"vnfID"`
	NodeID int `json:"nodeID"`
}

// PlacementSummary aggregates the results
type PlacementSummary struct {
	Placed          int `json:"placed"`
	NoPath          int `json:"noPath"`
	BudgetExceeded  int `json:"budgetExceeded"`
	CommitRejected  int `json:"commitRejected"`
	OverDelayBudget int `json:"overDelayBudget"`

	// MeanLinkDelay is formatted with two decimals
	MeanLinkDelay string `json:"meanLinkDelay"`
	MaxLinkDelay  int    `json:"maxLinkDelay"`

	// CategoryUsage counts path node visits per node category
	CategoryUsage map[string]int `json:"categoryUsage,omitempty"`
}
