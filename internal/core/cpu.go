package core

import (
	"github.com/sirupsen/logrus"
)

// ScheduleTime is one contiguous stretch of CPU time, [Start, End).
// ProcessID is meaningless for idle slices.
type ScheduleTime struct {
	ProcessID int  `json:"process_id"`
	Start     int  `json:"start"`
	End       int  `json:"end"`
	Idle      bool `json:"idle,omitempty"`
}

// CpuMetric is the CPU's own view of how the simulated time was spent.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// CPU is a single simulated core driven by an integer clock. It never runs
// more than one process at a time and never advances on its own.
type CPU struct {
	clock    int
	timeline []ScheduleTime
	metric   CpuMetric
}

func NewCPU() *CPU {
	return &CPU{timeline: make([]ScheduleTime, 0)}
}

// Now returns the current tick.
func (c *CPU) Now() int {
	return c.clock
}

// Idle advances the clock by one tick without running anything.
func (c *CPU) Idle() {
	c.IdleUntil(c.clock + 1)
}

// IdleUntil advances the clock to tick t without running anything.
// Consecutive idle stretches are merged into one timeline slice. It is a
// no-op when t is not in the future.
func (c *CPU) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.WithFields(logrus.Fields{"tick": c.clock, "until": t}).Debug("cpu idle")
	}
	if n := len(c.timeline); n > 0 && c.timeline[n-1].Idle && c.timeline[n-1].End == c.clock {
		c.timeline[n-1].End = t
	} else {
		c.timeline = append(c.timeline, ScheduleTime{Start: c.clock, End: t, Idle: true})
	}
	gap := t - c.clock
	c.clock = t
	c.metric.IdleTime += gap
	c.metric.TotalTime += gap
}

// Execute dispatches p for slice units: it records the first dispatch,
// consumes the slice, advances the clock and marks completion when the
// process has no demand left. It reports whether p completed.
func (c *CPU) Execute(p *Process, slice int) bool {
	debug := logrus.IsLevelEnabled(logrus.DebugLevel)
	if p.MarkStarted(c.clock) && debug {
		logrus.WithFields(logrus.Fields{"pid": p.ProcessID, "tick": c.clock}).Debug("first dispatch")
	}
	p.Run(slice)

	c.timeline = append(c.timeline, ScheduleTime{ProcessID: p.ProcessID, Start: c.clock, End: c.clock + slice})
	c.clock += slice
	c.metric.UtilizationTime += slice
	c.metric.TotalTime += slice

	if debug {
		logrus.WithFields(logrus.Fields{"pid": p.ProcessID, "tick": c.clock, "slice": slice, "remaining": p.RemainingTime}).Debug("slice done")
	}
	if p.RemainingTime == 0 {
		p.Complete(c.clock)
		return true
	}
	return false
}

// Timeline returns a copy of the recorded slices in execution order.
func (c *CPU) Timeline() []ScheduleTime {
	out := make([]ScheduleTime, len(c.timeline))
	copy(out, c.timeline)
	return out
}

// Metric returns the busy/idle totals accumulated so far.
func (c *CPU) Metric() CpuMetric {
	return c.metric
}
