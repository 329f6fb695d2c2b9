// Package metrics exposes the Prometheus metrics of a placement run.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/framework"
)

const namespace = "sfcplacer"

// Recorder owns a private registry so runs in the same process do not share series
type Recorder struct {
	registry *prometheus.Registry

	pathSearches     *prometheus.CounterVec
	expansions       prometheus.Histogram
	pathDelay        prometheus.Histogram
	commits          *prometheus.CounterVec
	nodeAvailableCPU *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with all collectors registered
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		pathSearches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "path_search_total",
			Help:      "Number of path searches by outcome.",
		}, []string{"result"}),
		expansions: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_search_expansions",
			Help:      "Partial paths expanded per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		pathDelay: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_delay",
			Help:      "Cumulative link delay of found paths.",
			Buckets:   prometheus.LinearBuckets(0, 10, 20),
		}),
		commits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commit_total",
			Help:      "Number of placement commits by result.",
		}, []string{"result"}),
		nodeAvailableCPU: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "node_available_cpu",
			Help:      "Available CPU per node at the end of the run.",
		}, []string{"node", "category"}),
	}
	r.registry.MustRegister(r.pathSearches, r.expansions, r.pathDelay, r.commits, r.nodeAvailableCPU)
	return r
}

// Registry returns the registry holding the run metrics
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveSearch records one search outcome. Delay is only observed for found paths.
func (r *Recorder) ObserveSearch(res framework.PlacementResult) {
	r.pathSearches.WithLabelValues(string(res.Outcome)).Inc()
	r.expansions.Observe(float64(res.Expansions))
	if res.Found() {
		r.pathDelay.Observe(float64(res.LinkDelay))
	}
}

// ObserveCommit records whether a commit succeeded
func (r *Recorder) ObserveCommit(ok bool) {
	result := "success"
	if !ok {
		result = "rejected"
	}
	r.commits.WithLabelValues(result).Inc()
}

// SetNodeCPU publishes the available CPU of every node
func (r *Recorder) SetNodeCPU(nodes []framework.Node) {
	for _, n := range nodes {
		r.nodeAvailableCPU.WithLabelValues(strconv.Itoa(n.ID), n.Category.String()).Set(float64(n.AvailableCPU))
	}
}

// WriteToTextfile writes the metrics in the Prometheus text format
func (r *Recorder) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
