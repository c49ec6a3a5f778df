package core

import (
	"fmt"
	"strconv"
)

// Tick is a point on the simulated clock that may not have happened yet.
// The zero value is unset.
type Tick struct {
	value int
	set   bool
}

// At returns a Tick set to t.
func At(t int) Tick {
	return Tick{value: t, set: true}
}

// IsSet reports whether the tick has been recorded.
func (t Tick) IsSet() bool {
	return t.set
}

// Value returns the recorded tick and whether it was set.
func (t Tick) Value() (int, bool) {
	return t.value, t.set
}

// MustValue returns the recorded tick and panics when it is unset.
func (t Tick) MustValue() int {
	if !t.set {
		panic("core: read of unset tick")
	}
	return t.value
}

// Ptr returns a pointer to a copy of the value, or nil when unset.
func (t Tick) Ptr() *int {
	if !t.set {
		return nil
	}
	v := t.value
	return &v
}

func (t Tick) String() string {
	if !t.set {
		return "-"
	}
	return strconv.Itoa(t.value)
}

// Process is a single simulated task. Static fields are fixed at creation,
// the rest is owned by whichever engine is driving the simulation.
type Process struct {
	ProcessID   int
	ArrivalTime int
	BurstTime   int
	Priority    int // carried for reporting, not read by any policy

	RemainingTime  int
	StartTime      Tick
	CompletionTime Tick

	TurnaroundTime int
	WaitingTime    int
	ResponseTime   Tick
}

// NewProcess creates a process that has not yet been dispatched.
func NewProcess(id, arrivalTime, burstTime, priority int) *Process {
	return &Process{
		ProcessID:     id,
		ArrivalTime:   arrivalTime,
		BurstTime:     burstTime,
		Priority:      priority,
		RemainingTime: burstTime,
	}
}

// Clone returns an independent copy, simulation state included.
func (p *Process) Clone() *Process {
	c := *p
	return &c
}

// Reset returns a fresh, never-dispatched copy with the same static fields.
func (p *Process) Reset() *Process {
	return NewProcess(p.ProcessID, p.ArrivalTime, p.BurstTime, p.Priority)
}

// MarkStarted records the first dispatch. Later calls are no-ops.
// It reports whether this call set the start time.
func (p *Process) MarkStarted(now int) bool {
	if p.StartTime.IsSet() {
		return false
	}
	p.StartTime = At(now)
	return true
}

// Run consumes slice units of remaining CPU demand.
func (p *Process) Run(slice int) {
	if slice <= 0 || slice > p.RemainingTime {
		panic(fmt.Sprintf("core: pid %d cannot run %d units with %d remaining", p.ProcessID, slice, p.RemainingTime))
	}
	p.RemainingTime -= slice
}

// Complete records the completion tick. A process completes exactly once and
// only after it has consumed its whole burst.
func (p *Process) Complete(now int) {
	if p.CompletionTime.IsSet() {
		panic(fmt.Sprintf("core: pid %d completed twice", p.ProcessID))
	}
	if p.RemainingTime != 0 {
		panic(fmt.Sprintf("core: pid %d completed with %d units remaining", p.ProcessID, p.RemainingTime))
	}
	p.CompletionTime = At(now)
}

// Done reports whether the process has completed.
func (p *Process) Done() bool {
	return p.CompletionTime.IsSet()
}

func (p *Process) String() string {
	return fmt.Sprintf("ID: %d, Arrival: %d, Burst: %d, Priority: %d", p.ProcessID, p.ArrivalTime, p.BurstTime, p.Priority)
}

// CloneAll deep-copies a process set. Nil entries stay nil.
func CloneAll(processes []*Process) []*Process {
	out := make([]*Process, len(processes))
	for i, p := range processes {
		if p != nil {
			out[i] = p.Clone()
		}
	}
	return out
}
