package schedulers

import (
	"github.com/sirupsen/logrus"

	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/core"
)

// ShortestJobFirst is the non-preemptive shortest-burst policy. Equal bursts
// go to the process that became ready first.
// Long processes can starve under a steady stream of short ones.
type ShortestJobFirst struct{}

func (s *ShortestJobFirst) Name() string {
	return SJF
}

func (s *ShortestJobFirst) Schedule(processes []*core.Process) (*Result, error) {
	working, err := prepare(processes)
	if err != nil {
		return nil, err
	}

	cpu := core.NewCPU()
	pending := newArrivals(working)
	ready := &readyQueue{}
	completed := make([]*core.Process, 0, len(working))

	for len(completed) < len(working) {
		for _, p := range pending.Admit(cpu.Now()) {
			ready.Enqueue(p)
		}
		if ready.Len() == 0 {
			idleUntilNextArrival(cpu, pending)
			continue
		}
		next := ready.RemoveAt(shortestJob(ready.Items()))
		logrus.WithFields(logrus.Fields{"pid": next.ProcessID, "tick": cpu.Now(), "burst": next.BurstTime}).Debug("sjf dispatch")
		cpu.Execute(next, next.RemainingTime)
		calculateProcessMetrics(next)
		completed = append(completed, next)
	}

	return finish(s.Name(), completed, len(working), cpu), nil
}

func shortestJob(ready []*core.Process) int {
	shortest := 0
	for i := 1; i < len(ready); i++ {
		if ready[i].BurstTime < ready[shortest].BurstTime {
			shortest = i
		}
	}
	return shortest
}
