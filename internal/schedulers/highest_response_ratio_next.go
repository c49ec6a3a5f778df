package schedulers

import (
	"math/bits"

	"github.com/sirupsen/logrus"

	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/core"
)

// HighestResponseRatioNext is a non-preemptive policy that dispatches the
// ready process with the greatest (waiting + burst) / burst ratio.
// Ties go to the process that became ready first.
type HighestResponseRatioNext struct{}

func (h *HighestResponseRatioNext) Name() string {
	return HRRN
}

func (h *HighestResponseRatioNext) Schedule(processes []*core.Process) (*Result, error) {
	working, err := prepare(processes)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("running hrrn over %d processes", len(working))

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

		next := ready.RemoveAt(highestResponseRatio(ready.Items(), cpu.Now()))
		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			logrus.WithFields(logrus.Fields{
				"pid":   next.ProcessID,
				"tick":  cpu.Now(),
				"ratio": ResponseRatio(next, cpu.Now()),
				"ready": ready.String(),
			}).Debug("hrrn dispatch")
		}

		cpu.Execute(next, next.RemainingTime)
		calculateProcessMetrics(next)
		completed = append(completed, next)
	}

	return finish(h.Name(), completed, len(working), cpu), nil
}

// ResponseRatio is (waiting time + burst time) / burst time at tick now.
func ResponseRatio(p *core.Process, now int) float64 {
	return float64(now-p.ArrivalTime+p.BurstTime) / float64(p.BurstTime)
}

// highestResponseRatio returns the index of the first process holding the
// strictly greatest ratio. Ratios are compared by 128-bit cross-multiplication
// so equal ratios compare equal exactly and large ticks cannot overflow.
func highestResponseRatio(ready []*core.Process, now int) int {
	best := 0
	for i := 1; i < len(ready); i++ {
		if ratioGreater(ready[i], ready[best], now) {
			best = i
		}
	}
	return best
}

func ratioGreater(a, b *core.Process, now int) bool {
	leftHi, leftLo := bits.Mul64(uint64(now-a.ArrivalTime+a.BurstTime), uint64(b.BurstTime))
	rightHi, rightLo := bits.Mul64(uint64(now-b.ArrivalTime+b.BurstTime), uint64(a.BurstTime))
	if leftHi != rightHi {
		return leftHi > rightHi
	}
	return leftLo > rightLo
}
