package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/core"
)

func completedProcess(id, arrival, burst, start, completion int) *core.Process {
	p := core.NewProcess(id, arrival, burst, 0)
	p.StartTime = core.At(start)
	p.RemainingTime = 0
	p.CompletionTime = core.At(completion)
	calculateProcessMetrics(p)
	return p
}

func TestCalculateProcessMetrics(t *testing.T) {
	p := completedProcess(1, 2, 5, 4, 12)
	assert.Equal(t, 10, p.TurnaroundTime)
	assert.Equal(t, 5, p.WaitingTime)
	assert.Equal(t, 2, p.ResponseTime.MustValue())
}

func TestCalculateProcessMetrics_NoStartLeavesResponseUnset(t *testing.T) {
	p := core.NewProcess(1, 0, 3, 0)
	p.RemainingTime = 0
	p.CompletionTime = core.At(3)
	calculateProcessMetrics(p)
	assert.False(t, p.ResponseTime.IsSet())
	assert.Equal(t, 3, p.TurnaroundTime)
}

func TestCalculateIdleTime_GapsBetweenStarts(t *testing.T) {
	// GIVEN runs [0,2) idle [2,5) [5,8) idle [8,10) [10,11), listed out of start order
	completed := []*core.Process{
		completedProcess(3, 10, 1, 10, 11),
		completedProcess(1, 0, 2, 0, 2),
		completedProcess(2, 5, 3, 5, 8),
	}

	// THEN both gaps are counted
	assert.Equal(t, 5, calculateIdleTime(completed))
}

func TestCalculateIdleTime_LeadingGap(t *testing.T) {
	assert.Equal(t, 3, calculateIdleTime([]*core.Process{completedProcess(1, 3, 5, 3, 8)}))
}

func TestCalculateIdleTime_PreemptedProcessCoversItsSpan(t *testing.T) {
	// GIVEN pid 1 runs [0,4) and [6,12), pid 2 runs [4,6), then idle until pid 3 at 20
	completed := []*core.Process{
		completedProcess(2, 1, 2, 4, 6),
		completedProcess(1, 0, 10, 0, 12),
		completedProcess(3, 20, 1, 20, 21),
	}

	// THEN only [12,20) is idle
	assert.Equal(t, 8, calculateIdleTime(completed))
}

func TestSummarize(t *testing.T) {
	completed := []*core.Process{
		completedProcess(1, 0, 2, 0, 2),
		completedProcess(2, 5, 3, 5, 8),
	}

	s := summarize(completed, 2, 8)

	assert.Equal(t, Summary{
		TotalTime:             8,
		IdleTime:              3,
		AverageWaitingTime:    0,
		AverageTurnaroundTime: 2.5,
		AverageResponseTime:   0,
		CpuUtilizationPercent: 62.5,
		Throughput:            0.25,
	}, s)
}

func TestSummarize_AveragesOverProcessCount(t *testing.T) {
	completed := []*core.Process{completedProcess(1, 0, 2, 1, 3)}

	s := summarize(completed, 2, 3)

	assert.Equal(t, 0.5, s.AverageWaitingTime)
	assert.Equal(t, 1.5, s.AverageTurnaroundTime)
	assert.Equal(t, 1.0, s.AverageResponseTime, "response time averages over processes that started")
}

func TestSummarize_ZeroTotalTimeIsGuarded(t *testing.T) {
	s := summarize(nil, 0, 0)

	require.Equal(t, Summary{}, s)
}
