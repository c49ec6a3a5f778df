package schedulers

import (
	"fmt"
	"strings"

	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/core"
)

// readyQueue is a FIFO of processes waiting for the CPU.
type readyQueue struct {
	queue []*core.Process
}

func (q *readyQueue) Enqueue(p *core.Process) {
	q.queue = append(q.queue, p)
}

// Dequeue removes the process at the front, or returns nil if the queue is empty.
func (q *readyQueue) Dequeue() *core.Process {
	if len(q.queue) == 0 {
		return nil
	}
	p := q.queue[0]
	q.queue = q.queue[1:]
	return p
}

// RemoveAt removes and returns the i-th process, preserving the order of the rest.
func (q *readyQueue) RemoveAt(i int) *core.Process {
	p := q.queue[i]
	q.queue = append(q.queue[:i:i], q.queue[i+1:]...)
	return p
}

func (q *readyQueue) Len() int {
	return len(q.queue)
}

// Items returns the queue contents in FIFO order. Callers must not modify it.
func (q *readyQueue) Items() []*core.Process {
	return q.queue
}

func (q *readyQueue) String() string {
	ids := make([]string, len(q.queue))
	for i, p := range q.queue {
		ids[i] = fmt.Sprint(p.ProcessID)
	}
	return "[" + strings.Join(ids, " ") + "]"
}

// arrivals hands out processes, already sorted by arrival time, once the
// clock has reached their arrival.
type arrivals struct {
	pending []*core.Process
}

func newArrivals(sorted []*core.Process) *arrivals {
	return &arrivals{pending: sorted}
}

// Admit removes and returns every pending process with ArrivalTime <= now,
// in arrival order.
func (a *arrivals) Admit(now int) []*core.Process {
	n := 0
	for n < len(a.pending) && a.pending[n].ArrivalTime <= now {
		n++
	}
	admitted := a.pending[:n:n]
	a.pending = a.pending[n:]
	return admitted
}

func (a *arrivals) Len() int {
	return len(a.pending)
}

// NextArrival returns the arrival time of the earliest pending process.
func (a *arrivals) NextArrival() (int, bool) {
	if a.Len() == 0 {
		return 0, false
	}
	return a.pending[0].ArrivalTime, true
}

// idleUntilNextArrival fast-forwards an idle CPU to the next arrival. Engines
// only call it with nothing runnable and work left, so a process must still
// be pending.
func idleUntilNextArrival(cpu *core.CPU, pending *arrivals) {
	next, ok := pending.NextArrival()
	if !ok {
		panic("schedulers: cpu idle with no pending arrivals")
	}
	cpu.IdleUntil(next)
}
