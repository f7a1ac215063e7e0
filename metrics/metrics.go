// Package metrics exposes the progress of optimizers as prometheus metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/crillab/gopheropt/opt"
)

const (
	namespace = "gopheropt"

	StatusLabel    = "status"
	OutcomeLabel   = "outcome"
	ObjectiveLabel = "objective"
)

// An Observer feeds prometheus collectors from the events of opt.Solvers.
// It implements opt.Observer and can be shared by several solvers.
type Observer struct {
	checks     *prometheus.CounterVec
	checkTime  *prometheus.HistogramVec
	objectives *prometheus.CounterVec
	rounds     prometheus.Histogram
	lastRounds *prometheus.GaugeVec
}

var _ opt.Observer = (*Observer)(nil)

// New registers the collectors of an Observer on reg.
// Like promauto, it panics if they are already registered.
func New(reg prometheus.Registerer) *Observer {
	f := promauto.With(reg)
	return &Observer{
		checks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checks_total",
			Help:      "Checks run by the decision procedure, by status.",
		}, []string{StatusLabel}),
		checkTime: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "check_duration_seconds",
			Help:      "Duration of checks, by status.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{StatusLabel}),
		objectives: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "objectives_total",
			Help:      "Objectives whose maximization ended, by outcome.",
		}, []string{OutcomeLabel}),
		rounds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "refinement_rounds",
			Help:      "Refinement rounds needed to maximize an objective.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		lastRounds: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "objective_rounds",
			Help:      "Refinement rounds of the last maximization of each objective index.",
		}, []string{ObjectiveLabel}),
	}
}

// Checked implements opt.Observer.
func (o *Observer) Checked(status opt.Status, elapsed time.Duration) {
	o.checks.WithLabelValues(status.String()).Inc()
	o.checkTime.WithLabelValues(status.String()).Observe(elapsed.Seconds())
}

// Concluded implements opt.Observer.
func (o *Observer) Concluded(index int, outcome opt.Outcome, rounds int) {
	o.objectives.WithLabelValues(outcome.String()).Inc()
	o.rounds.Observe(float64(rounds))
	o.lastRounds.WithLabelValues(strconv.Itoa(index)).Set(float64(rounds))
}
