package schedulers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/core"
)

// scenarioProcesses is the eight-process reference workload.
func scenarioProcesses() []*core.Process {
	return processes(
		[3]int{1, 0, 8}, [3]int{2, 1, 4}, [3]int{3, 2, 9}, [3]int{4, 3, 5},
		[3]int{5, 4, 7}, [3]int{6, 5, 2}, [3]int{7, 6, 6}, [3]int{8, 7, 3},
	)
}

// processes builds a set from (id, arrival, burst) triples.
func processes(specs ...[3]int) []*core.Process {
	out := make([]*core.Process, len(specs))
	for i, s := range specs {
		out[i] = core.NewProcess(s[0], s[1], s[2], 0)
	}
	return out
}

type dispatch struct {
	id, start, completion int
}

func dispatches(result *Result) []dispatch {
	out := make([]dispatch, len(result.CompletedProcesses))
	for i, p := range result.CompletedProcesses {
		out[i] = dispatch{p.ProcessID, p.StartTime.MustValue(), p.CompletionTime.MustValue()}
	}
	return out
}

// requireConsistent checks the identities every finished run must satisfy.
func requireConsistent(t *testing.T, input []*core.Process, result *Result) {
	t.Helper()
	require.Len(t, result.CompletedProcesses, len(input))

	var waiting, turnaround, response float64
	cpuTime := map[int]int{}
	for _, slice := range result.Timeline {
		if !slice.Idle {
			cpuTime[slice.ProcessID] += slice.End - slice.Start
		}
	}
	for _, p := range result.CompletedProcesses {
		start, completion := p.StartTime.MustValue(), p.CompletionTime.MustValue()
		require.Equal(t, completion-p.ArrivalTime, p.TurnaroundTime, "pid %d turnaround", p.ProcessID)
		require.Equal(t, p.TurnaroundTime-p.BurstTime, p.WaitingTime, "pid %d waiting", p.ProcessID)
		require.Equal(t, start-p.ArrivalTime, p.ResponseTime.MustValue(), "pid %d response", p.ProcessID)
		require.GreaterOrEqual(t, p.WaitingTime, 0, "pid %d waiting", p.ProcessID)
		require.GreaterOrEqual(t, completion, start)
		require.GreaterOrEqual(t, start, p.ArrivalTime)
		require.Zero(t, p.RemainingTime)
		require.Equal(t, p.BurstTime, cpuTime[p.ProcessID], "pid %d total cpu time", p.ProcessID)
		waiting += float64(p.WaitingTime)
		turnaround += float64(p.TurnaroundTime)
		response += float64(p.ResponseTime.MustValue())
	}
	n := float64(len(input))
	require.InDelta(t, waiting/n, result.AverageWaitingTime, 1e-9)
	require.InDelta(t, turnaround/n, result.AverageTurnaroundTime, 1e-9)
	require.InDelta(t, response/n, result.AverageResponseTime, 1e-9)
	require.GreaterOrEqual(t, result.CpuUtilizationPercent, 0.0)
	require.LessOrEqual(t, result.CpuUtilizationPercent, 100.0)
	require.Equal(t, result.TotalTime, result.CpuMetric.TotalTime)
	require.Equal(t, result.IdleTime, result.CpuMetric.IdleTime)
}
