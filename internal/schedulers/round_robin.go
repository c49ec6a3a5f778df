package schedulers

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/core"
)

// RoundRobin time-slices a single FIFO. Processes that arrive while a slice
// runs are queued ahead of the process being preempted.
type RoundRobin struct {
	timeQuantum int
}

func NewRoundRobin(timeQuantum int) (*RoundRobin, error) {
	if timeQuantum <= 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "round robin quantum must be positive, got %d", timeQuantum)
	}
	return &RoundRobin{timeQuantum: timeQuantum}, nil
}

func (r *RoundRobin) Name() string {
	return RR
}

func (r *RoundRobin) TimeQuantum() int {
	return r.timeQuantum
}

func (r *RoundRobin) Schedule(processes []*core.Process) (*Result, error) {
	working, err := prepare(processes)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("running roundRobin over %d processes with timeQuantum = %d", len(working), r.timeQuantum)

	cpu := core.NewCPU()
	pending := newArrivals(working)
	ready := &readyQueue{}
	completed := make([]*core.Process, 0, len(working))

	admit := func() {
		for _, p := range pending.Admit(cpu.Now()) {
			ready.Enqueue(p)
		}
	}

	admit()
	for len(completed) < len(working) {
		next := ready.Dequeue()
		if next == nil {
			idleUntilNextArrival(cpu, pending)
			admit()
			continue
		}

		slice := min(next.RemainingTime, r.timeQuantum)
		logrus.WithFields(logrus.Fields{"pid": next.ProcessID, "tick": cpu.Now(), "slice": slice}).Debug("rr dispatch")
		done := cpu.Execute(next, slice)
		admit()
		if done {
			calculateProcessMetrics(next)
			completed = append(completed, next)
			continue
		}
		ready.Enqueue(next)
	}

	return finish(r.Name(), completed, len(working), cpu), nil
}
