package service

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/config"
	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/core"
	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/requests"
	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/schedulers"
)

func testConfig() *config.SchedulerConfig {
	return &config.SchedulerConfig{
		Port:                                     9095,
		LogLevel:                                 "warn",
		RoundRobinTimeQuantum:                    4,
		MultilevelFeedbackQueueLevelsTimeQuantum: []int{4, 8, 16},
		ResultCacheTTL:                           time.Minute,
	}
}

func newTestService(t *testing.T, cfg *config.SchedulerConfig) *SimulationService {
	t.Helper()
	s, err := NewSimulationService(cfg, prometheus.NewRegistry())
	require.NoError(t, err)
	return s
}

func TestSimulate(t *testing.T) {
	s := newTestService(t, testConfig())

	result, err := s.Simulate(context.Background(), schedulers.HRRN, requests.DefaultWorkload().Processes())
	require.NoError(t, err)

	assert.Equal(t, schedulers.HRRN, result.Algorithm)
	assert.InDelta(t, 13.5, result.AverageWaitingTime, 1e-9)
	assert.InDelta(t, 19.0, result.AverageTurnaroundTime, 1e-9)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.runs.WithLabelValues(schedulers.HRRN, outcomeSuccess)))
	assert.Equal(t, 1, testutil.CollectAndCount(s.metrics.simulatedTicks))
}

func TestSimulate_CachesResults(t *testing.T) {
	s := newTestService(t, testConfig())
	ctx := context.Background()

	first, err := s.Simulate(ctx, schedulers.MLFQ, requests.DefaultWorkload().Processes())
	require.NoError(t, err)
	first.CompletedProcesses[0].WaitingTime = 1000

	// WHEN an equal workload is simulated again
	second, err := s.Simulate(ctx, schedulers.MLFQ, requests.DefaultWorkload().Processes())
	require.NoError(t, err)

	// THEN it is served from the cache, unaffected by the caller's edit
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.cacheHits.WithLabelValues(schedulers.MLFQ)))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.runs.WithLabelValues(schedulers.MLFQ, outcomeSuccess)))
	assert.NotEqual(t, 1000, second.CompletedProcesses[0].WaitingTime)
	assert.InDelta(t, 22.875, second.AverageWaitingTime, 1e-9)
}

func TestSimulate_DifferentWorkloadMisses(t *testing.T) {
	s := newTestService(t, testConfig())
	ctx := context.Background()

	_, err := s.Simulate(ctx, schedulers.FCFS, []*core.Process{core.NewProcess(1, 0, 2, 0)})
	require.NoError(t, err)
	result, err := s.Simulate(ctx, schedulers.FCFS, []*core.Process{core.NewProcess(1, 0, 3, 0)})
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalTime)
	assert.Equal(t, 0.0, testutil.ToFloat64(s.metrics.cacheHits.WithLabelValues(schedulers.FCFS)))
}

func TestSimulate_ZeroTTLDisablesCache(t *testing.T) {
	cfg := testConfig()
	cfg.ResultCacheTTL = 0
	s := newTestService(t, cfg)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := s.Simulate(ctx, schedulers.SJF, requests.DefaultWorkload().Processes())
		require.NoError(t, err)
	}

	assert.Equal(t, 0.0, testutil.ToFloat64(s.metrics.cacheHits.WithLabelValues(schedulers.SJF)))
}

func TestSimulate_Errors(t *testing.T) {
	s := newTestService(t, testConfig())

	_, err := s.Simulate(context.Background(), "lottery", requests.DefaultWorkload().Processes())
	assert.True(t, errors.Is(err, schedulers.ErrUnknownScheduler))

	_, err = s.Simulate(context.Background(), schedulers.RR, nil)
	assert.True(t, errors.Is(err, schedulers.ErrInvalidInput))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.runs.WithLabelValues(schedulers.RR, outcomeError)))
}

func TestSimulate_CancelledContext(t *testing.T) {
	s := newTestService(t, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Simulate(ctx, schedulers.HRRN, requests.DefaultWorkload().Processes())

	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCompare(t *testing.T) {
	s := newTestService(t, testConfig())
	input := requests.DefaultWorkload().Processes()

	results, err := s.Compare(context.Background(), []string{schedulers.MLFQ, schedulers.HRRN}, input)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, schedulers.MLFQ, results[0].Algorithm)
	assert.Equal(t, schedulers.HRRN, results[1].Algorithm)
	assert.Equal(t, requests.DefaultWorkload().Processes(), input)
}

func TestCompare_StopsAtFirstError(t *testing.T) {
	s := newTestService(t, testConfig())

	_, err := s.Compare(context.Background(), []string{schedulers.HRRN, "lottery"}, requests.DefaultWorkload().Processes())
	assert.True(t, errors.Is(err, schedulers.ErrUnknownScheduler))

	_, err = s.Compare(context.Background(), nil, requests.DefaultWorkload().Processes())
	assert.True(t, errors.Is(err, schedulers.ErrInvalidInput))
}

func TestNewSimulationService_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.RoundRobinTimeQuantum = 0

	_, err := NewSimulationService(cfg, prometheus.NewRegistry())

	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
}
