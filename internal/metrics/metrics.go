// Package metrics records match attempts as Prometheus metrics on a
// private registry, exported as a node-exporter textfile.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/vfmatch/search"
	"github.com/katalvlaran/vfmatch/vf2"
)

// Outcome labels.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeAborted  = "aborted"
)

// Recorder owns the registry and the match collectors.
type Recorder struct {
	reg      *prometheus.Registry
	attempts *prometheus.CounterVec
	duration *prometheus.HistogramVec
	states   prometheus.Histogram
	explored prometheus.Histogram
}

// New registers the collectors, tagging them with run_id.
func New(runID string) *Recorder {
	labels := prometheus.Labels{"run_id": runID}
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "vfmatch_attempts_total",
			Help:        "Match attempts by mode and outcome.",
			ConstLabels: labels,
		}, []string{"mode", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "vfmatch_search_duration_seconds",
			Help:        "Wall time of the depth-first search.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, []string{"mode"}),
		states: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "vfmatch_states",
			Help:        "States entered per attempt.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(1, 8, 10),
		}),
		explored: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "vfmatch_explored_pairs",
			Help:        "Candidate pairs tried per attempt.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(1, 8, 10),
		}),
	}
	r.reg.MustRegister(r.attempts, r.duration, r.states, r.explored)
	return r
}

// Registry exposes the private registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Observe records one attempt. res may be nil when the state could not
// be built; err non-nil marks the attempt aborted.
func (r *Recorder) Observe(mode vf2.Mode, res *search.Result, err error) {
	outcome := OutcomeNotFound
	switch {
	case err != nil:
		outcome = OutcomeAborted
	case res != nil && res.Found:
		outcome = OutcomeFound
	}
	r.attempts.WithLabelValues(mode.String(), outcome).Inc()
	if res == nil {
		return
	}
	r.duration.WithLabelValues(mode.String()).Observe(res.Stats.Elapsed.Seconds())
	r.states.Observe(float64(res.Stats.States))
	r.explored.Observe(float64(res.Stats.Nodes))
}

// WriteFile writes the registry in text exposition format to path.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
