package schedulers

import (
	"github.com/sirupsen/logrus"

	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/core"
)

// FirstComeFirstServe runs processes to completion in arrival order.
type FirstComeFirstServe struct{}

func (f *FirstComeFirstServe) Name() string {
	return FCFS
}

func (f *FirstComeFirstServe) Schedule(processes []*core.Process) (*Result, error) {
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
		next := ready.Dequeue()
		if next == nil {
			idleUntilNextArrival(cpu, pending)
			continue
		}
		logrus.WithFields(logrus.Fields{"pid": next.ProcessID, "tick": cpu.Now()}).Debug("fcfs dispatch")
		cpu.Execute(next, next.RemainingTime)
		calculateProcessMetrics(next)
		completed = append(completed, next)
	}

	return finish(f.Name(), completed, len(working), cpu), nil
}
