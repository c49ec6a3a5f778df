package schedulers

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/core"
)

// Scheduler runs one policy over a fully known process set until every
// process has completed.
//
// Implementations validate the input, simulate on their own copy sorted by
// arrival time and never mutate the caller's processes.
type Scheduler interface {
	Name() string
	Schedule(processes []*core.Process) (*Result, error)
}

// Result is the outcome of one simulation run.
type Result struct {
	Algorithm string

	// CompletedProcesses is in completion order.
	CompletedProcesses []*core.Process
	Timeline           []core.ScheduleTime
	CpuMetric          core.CpuMetric

	Summary
}

// Options carries the tunable parameters of the preemptive policies.
type Options struct {
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
}

// DefaultOptions returns a 4-unit round robin quantum and the 4/8/16 MLFQ levels.
func DefaultOptions() Options {
	return Options{
		RoundRobinTimeQuantum:                    4,
		MultilevelFeedbackQueueLevelsTimeQuantum: []int{4, 8, 16},
	}
}

const (
	HRRN = "hrrn"
	MLFQ = "mlfq"
	FCFS = "fcfs"
	SJF  = "sjf"
	RR   = "rr"
)

// ValidSchedulers is the set of recognized scheduler names.
var ValidSchedulers = map[string]bool{HRRN: true, MLFQ: true, FCFS: true, SJF: true, RR: true}

// IsValidScheduler returns true if name is a recognized scheduler.
func IsValidScheduler(name string) bool {
	return ValidSchedulers[name]
}

// SchedulerNames returns the recognized names in a stable order.
func SchedulerNames() []string {
	names := make([]string, 0, len(ValidSchedulers))
	for name := range ValidSchedulers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewScheduler creates a Scheduler by name.
func NewScheduler(name string, opts Options) (Scheduler, error) {
	switch name {
	case HRRN:
		return &HighestResponseRatioNext{}, nil
	case MLFQ:
		return NewMultilevelFeedbackQueue(opts.MultilevelFeedbackQueueLevelsTimeQuantum)
	case FCFS:
		return &FirstComeFirstServe{}, nil
	case SJF:
		return &ShortestJobFirst{}, nil
	case RR:
		return NewRoundRobin(opts.RoundRobinTimeQuantum)
	default:
		return nil, errors.Wrapf(ErrUnknownScheduler, "%q", name)
	}
}

// prepare validates the input and returns fresh copies sorted by arrival
// time. Equal arrivals keep their input order. Any simulation state left on
// the input processes is discarded.
func prepare(processes []*core.Process) ([]*core.Process, error) {
	if err := ValidateProcesses(processes); err != nil {
		return nil, err
	}
	working := make([]*core.Process, len(processes))
	for i, p := range processes {
		working[i] = p.Reset()
	}
	sort.SliceStable(working, func(i, j int) bool {
		return working[i].ArrivalTime < working[j].ArrivalTime
	})
	return working, nil
}

// finish assembles the result of a run whose processes all completed.
func finish(algorithm string, completed []*core.Process, processCount int, cpu *core.CPU) *Result {
	return &Result{
		Algorithm:          algorithm,
		CompletedProcesses: completed,
		Timeline:           cpu.Timeline(),
		CpuMetric:          cpu.Metric(),
		Summary:            summarize(completed, processCount, cpu.Now()),
	}
}

// Clone returns a deep copy of the result.
func (r *Result) Clone() *Result {
	c := *r
	c.CompletedProcesses = core.CloneAll(r.CompletedProcesses)
	c.Timeline = append([]core.ScheduleTime(nil), r.Timeline...)
	return &c
}
