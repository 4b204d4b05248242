// Package metrics exposes attack counters on a private Prometheus registry.
// A nil *Recorder is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "archivecrack"

type Recorder struct {
	registry *prometheus.Registry

	CandidatesTested *prometheus.CounterVec
	PhaseDuration    *prometheus.HistogramVec
	Attacks          *prometheus.CounterVec
}

func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		CandidatesTested: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "candidates_tested_total",
				Help:      "Candidate passwords tested, by phase.",
			},
			[]string{"phase"},
		),
		PhaseDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "phase_duration_seconds",
				Help:      "Wall time spent in each attack phase.",
				Buckets:   prometheus.ExponentialBuckets(0.01, 4, 10),
			},
			[]string{"phase"},
		),
		Attacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "attacks_total",
				Help:      "Finished attacks, by outcome.",
			},
			[]string{"outcome"},
		),
	}
}

func (r *Recorder) Tested(phase string, n uint64) {
	if r == nil {
		return
	}
	r.CandidatesTested.WithLabelValues(phase).Add(float64(n))
}

func (r *Recorder) PhaseDone(phase string, d time.Duration) {
	if r == nil {
		return
	}
	r.PhaseDuration.WithLabelValues(phase).Observe(d.Seconds())
}

// AttackDone counts a finished attack. outcome is one of found, not_found,
// error or cancelled.
func (r *Recorder) AttackDone(outcome string) {
	if r == nil {
		return
	}
	r.Attacks.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
