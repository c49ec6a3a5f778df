package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/config"
	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/core"
	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/schedulers"
)

// SimulationService runs schedulers on behalf of the CLI and the HTTP API.
// Runs are deterministic, so results are memoised per algorithm, options and
// workload for the configured TTL. A TTL of zero disables memoisation.
type SimulationService struct {
	options schedulers.Options
	ttl     time.Duration
	results *cache.Cache[string, *schedulers.Result]
	metrics *simulationMetrics
}

func NewSimulationService(cfg *config.SchedulerConfig, registry *prometheus.Registry) (*SimulationService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &SimulationService{
		options: cfg.Options(),
		ttl:     cfg.ResultCacheTTL,
		results: cache.New[string, *schedulers.Result](),
		metrics: newSimulationMetrics(registry),
	}, nil
}

// Algorithms lists the policies the service can run.
func (s *SimulationService) Algorithms() []string {
	return schedulers.SchedulerNames()
}

// Simulate runs one policy over processes. The caller's processes are left
// untouched and the returned result is the caller's to modify.
func (s *SimulationService) Simulate(ctx context.Context, algorithm string, processes []*core.Process) (*schedulers.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	scheduler, err := schedulers.NewScheduler(algorithm, s.options)
	if err != nil {
		s.metrics.runs.WithLabelValues("unknown", outcomeError).Inc()
		return nil, err
	}

	key := s.cacheKey(algorithm, processes)
	if s.ttl > 0 {
		if cached, ok := s.results.Get(key); ok {
			s.metrics.cacheHits.WithLabelValues(algorithm).Inc()
			s.metrics.runs.WithLabelValues(algorithm, outcomeSuccess).Inc()
			logrus.WithField("algorithm", algorithm).Debug("simulation served from cache")
			return cached.Clone(), nil
		}
	}

	start := time.Now()
	result, err := scheduler.Schedule(processes)
	if err != nil {
		s.metrics.runs.WithLabelValues(algorithm, outcomeError).Inc()
		return nil, errors.WithMessagef(err, "%s", algorithm)
	}
	s.metrics.runs.WithLabelValues(algorithm, outcomeSuccess).Inc()
	s.metrics.simulatedTicks.WithLabelValues(algorithm).Observe(float64(result.TotalTime))
	logrus.WithFields(logrus.Fields{
		"algorithm":  algorithm,
		"processes":  len(processes),
		"total_time": result.TotalTime,
		"elapsed":    time.Since(start),
	}).Info("simulation finished")

	if s.ttl > 0 {
		s.results.Set(key, result, cache.WithExpiration(s.ttl))
	}
	return result.Clone(), nil
}

// Compare runs every algorithm over its own copy of processes and returns the
// results in the order the algorithms were given.
func (s *SimulationService) Compare(ctx context.Context, algorithms []string, processes []*core.Process) ([]*schedulers.Result, error) {
	if len(algorithms) == 0 {
		return nil, errors.Wrap(schedulers.ErrInvalidInput, "no algorithms to compare")
	}
	results := make([]*schedulers.Result, 0, len(algorithms))
	for _, algorithm := range algorithms {
		result, err := s.Simulate(ctx, algorithm, core.CloneAll(processes))
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// cacheKey fingerprints everything a result depends on: the policy, its
// options and the static fields of the workload in input order.
func (s *SimulationService) cacheKey(algorithm string, processes []*core.Process) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%v|", algorithm, s.options.RoundRobinTimeQuantum, s.options.MultilevelFeedbackQueueLevelsTimeQuantum)
	for _, p := range processes {
		if p == nil {
			h.Write([]byte("nil;"))
			continue
		}
		fmt.Fprintf(h, "%d,%d,%d,%d;", p.ProcessID, p.ArrivalTime, p.BurstTime, p.Priority)
	}
	return hex.EncodeToString(h.Sum(nil))
}
