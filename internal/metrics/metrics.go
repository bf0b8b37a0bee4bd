package metrics

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Package-level Prometheus collectors. They are registered via Register.
var (
	regOK atomic.Bool

	simulations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scheduler",
			Subsystem: "simulation",
			Name:      "runs_total",
			Help:      "Number of completed simulation runs.",
		}, []string{"algorithm"},
	)
	simulationErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scheduler",
			Subsystem: "simulation",
			Name:      "rejected_total",
			Help:      "Number of simulation runs rejected by configuration checks.",
		}, []string{"algorithm"},
	)
	processesScheduled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scheduler",
			Subsystem: "simulation",
			Name:      "processes_total",
			Help:      "Number of processes driven to completion.",
		}, []string{"algorithm"},
	)
	simulatedTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "scheduler",
			Subsystem: "simulation",
			Name:      "makespan_ticks",
			Help:      "Simulated clock value at which the last process completed.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"algorithm"},
	)
	averageWaiting = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "scheduler",
			Subsystem: "simulation",
			Name:      "average_waiting_ticks",
			Help:      "Mean waiting time of the latest run per algorithm.",
		}, []string{"algorithm"},
	)
)

// Register registers all metrics with the provided registerer.
// It is safe to call multiple times; subsequent calls after success are no-ops.
func Register(r prometheus.Registerer) error {
	if regOK.Load() {
		return nil
	}
	cs := []prometheus.Collector{simulations, simulationErrors, processesScheduled, simulatedTime, averageWaiting}
	for _, c := range cs {
		if err := r.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	regOK.Store(true)
	return nil
}

// Handler serves the DefaultGatherer.
func Handler() http.Handler { return promhttp.Handler() }

// The helpers below no-op until Register has succeeded.

func ObserveRun(algorithm string, processes, makespan int, avgWaiting float64) {
	if !regOK.Load() {
		return
	}
	simulations.WithLabelValues(algorithm).Inc()
	processesScheduled.WithLabelValues(algorithm).Add(float64(processes))
	simulatedTime.WithLabelValues(algorithm).Observe(float64(makespan))
	averageWaiting.WithLabelValues(algorithm).Set(avgWaiting)
}

func IncRejected(algorithm string) {
	if regOK.Load() {
		simulationErrors.WithLabelValues(algorithm).Inc()
	}
}
