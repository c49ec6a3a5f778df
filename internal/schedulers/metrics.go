package schedulers

import (
	"sort"

	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/core"
	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/util"
)

// Summary holds the aggregate statistics of a run.
type Summary struct {
	TotalTime             int
	IdleTime              int
	AverageWaitingTime    float64
	AverageTurnaroundTime float64
	AverageResponseTime   float64
	CpuUtilizationPercent float64
	Throughput            float64 // processes completed per unit of simulated time
}

// calculateProcessMetrics fills turnaround, waiting and response time of a
// completed process.
func calculateProcessMetrics(p *core.Process) {
	completion := p.CompletionTime.MustValue()
	p.TurnaroundTime = completion - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
	if start, ok := p.StartTime.Value(); ok {
		p.ResponseTime = core.At(start - p.ArrivalTime)
	}
}

// summarize aggregates a finished run. Averages of waiting and turnaround
// time are taken over processCount, not over the completed slice.
func summarize(completed []*core.Process, processCount int, totalTime int) Summary {
	waiting := make([]int, 0, len(completed))
	turnaround := make([]int, 0, len(completed))
	response := make([]int, 0, len(completed))
	for _, p := range completed {
		waiting = append(waiting, p.WaitingTime)
		turnaround = append(turnaround, p.TurnaroundTime)
		if r, ok := p.ResponseTime.Value(); ok {
			response = append(response, r)
		}
	}

	idle := calculateIdleTime(completed)
	s := Summary{
		TotalTime:             totalTime,
		IdleTime:              idle,
		AverageWaitingTime:    util.CalculateAverage(waiting, processCount),
		AverageTurnaroundTime: util.CalculateAverage(turnaround, processCount),
		AverageResponseTime:   util.Mean(response),
	}
	if totalTime > 0 {
		s.CpuUtilizationPercent = float64(totalTime-idle) / float64(totalTime) * 100
		s.Throughput = float64(processCount) / float64(totalTime)
	}
	return s
}

// calculateIdleTime walks the completed processes in start order and sums
// every positive gap between a start and the latest completion seen so far.
// Unlike a sweep that sets the cursor to each process's completion time, the
// cursor here never moves backwards. A preempted process that started early
// and completes late would otherwise pull the cursor back and count busy
// time as idle. For non-preemptive runs both sweeps agree.
func calculateIdleTime(completed []*core.Process) int {
	byStart := make([]*core.Process, 0, len(completed))
	for _, p := range completed {
		if p.StartTime.IsSet() && p.CompletionTime.IsSet() {
			byStart = append(byStart, p)
		}
	}
	sort.SliceStable(byStart, func(i, j int) bool {
		return byStart[i].StartTime.MustValue() < byStart[j].StartTime.MustValue()
	})

	idle, previousCompletion := 0, 0
	for _, p := range byStart {
		if gap := p.StartTime.MustValue() - previousCompletion; gap > 0 {
			idle += gap
		}
		previousCompletion = max(previousCompletion, p.CompletionTime.MustValue())
	}
	return idle
}
