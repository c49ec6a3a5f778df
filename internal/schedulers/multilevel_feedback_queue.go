package schedulers

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/core"
)

// MultilevelFeedbackQueue is a preemptive policy over FIFO levels with
// growing time quanta. New arrivals enter level 0; a process that uses its
// whole quantum without finishing drops one level, and the bottom level
// round-robins among its own members.
//
// Arrivals are admitted once per dispatch decision, so a process that arrives
// while a slice is running becomes visible only after that slice ends.
type MultilevelFeedbackQueue struct {
	timeQuantumList []int
}

// NewMultilevelFeedbackQueue builds an MLFQ with one level per quantum,
// highest priority first.
func NewMultilevelFeedbackQueue(timeQuantumList []int) (*MultilevelFeedbackQueue, error) {
	if len(timeQuantumList) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "mlfq needs at least one level")
	}
	for level, q := range timeQuantumList {
		if q <= 0 {
			return nil, errors.Wrapf(ErrInvalidInput, "mlfq level %d quantum must be positive, got %d", level, q)
		}
	}
	quanta := make([]int, len(timeQuantumList))
	copy(quanta, timeQuantumList)
	return &MultilevelFeedbackQueue{timeQuantumList: quanta}, nil
}

func (m *MultilevelFeedbackQueue) Name() string {
	return MLFQ
}

// TimeQuantumList returns a copy of the per-level quanta.
func (m *MultilevelFeedbackQueue) TimeQuantumList() []int {
	out := make([]int, len(m.timeQuantumList))
	copy(out, m.timeQuantumList)
	return out
}

func (m *MultilevelFeedbackQueue) Schedule(processes []*core.Process) (*Result, error) {
	working, err := prepare(processes)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("running mlfq over %d processes with timeQuantum = %v", len(working), m.timeQuantumList)

	cpu := core.NewCPU()
	pending := newArrivals(working)
	levels := make([]*readyQueue, len(m.timeQuantumList))
	for i := range levels {
		levels[i] = &readyQueue{}
	}
	completed := make([]*core.Process, 0, len(working))

	for len(completed) < len(working) {
		for _, p := range pending.Admit(cpu.Now()) {
			levels[0].Enqueue(p)
		}

		level, next := m.dequeueHighest(levels)
		if next == nil {
			idleUntilNextArrival(cpu, pending)
			continue
		}

		slice := min(next.RemainingTime, m.timeQuantumList[level])
		logrus.WithFields(logrus.Fields{"pid": next.ProcessID, "tick": cpu.Now(), "level": level, "slice": slice}).Debug("mlfq dispatch")
		if cpu.Execute(next, slice) {
			calculateProcessMetrics(next)
			completed = append(completed, next)
			continue
		}

		demoted := min(level+1, len(levels)-1)
		logrus.WithFields(logrus.Fields{"pid": next.ProcessID, "from": level, "to": demoted}).Debug("mlfq demote")
		levels[demoted].Enqueue(next)
	}

	return finish(m.Name(), completed, len(working), cpu), nil
}

// dequeueHighest pops the front of the first non-empty level.
func (m *MultilevelFeedbackQueue) dequeueHighest(levels []*readyQueue) (int, *core.Process) {
	for level, q := range levels {
		if q.Len() > 0 {
			return level, q.Dequeue()
		}
	}
	return -1, nil
}
