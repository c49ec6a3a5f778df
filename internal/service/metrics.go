package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

type simulationMetrics struct {
	runs           *prometheus.CounterVec
	cacheHits      *prometheus.CounterVec
	simulatedTicks *prometheus.HistogramVec
}

func newSimulationMetrics(registerer prometheus.Registerer) *simulationMetrics {
	factory := promauto.With(registerer)
	return &simulationMetrics{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cpusched",
			Name:      "simulations_total",
			Help:      "Simulation requests by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		cacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cpusched",
			Name:      "result_cache_hits_total",
			Help:      "Simulation requests answered from the result cache.",
		}, []string{"algorithm"}),
		simulatedTicks: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cpusched",
			Name:      "simulated_ticks",
			Help:      "Length of the simulated schedule in clock ticks.",
			Buckets:   prometheus.ExponentialBuckets(8, 4, 8),
		}, []string{"algorithm"}),
	}
}
