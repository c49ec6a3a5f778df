package schedulers

import (
	"fmt"
	"math"

	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/core"
)

// ValidateProcesses rejects sets that would make the simulation undefined:
// an empty set, duplicate ids, non-positive bursts or negative arrivals.
// The latest arrival plus all bursts bounds the final clock value, so a set
// whose bound exceeds math.MaxInt is rejected as well.
func ValidateProcesses(processes []*core.Process) error {
	if len(processes) == 0 {
		return &ValidationError{Reason: "empty process list"}
	}
	seen := make(map[int]bool, len(processes))
	for _, p := range processes {
		if p == nil {
			return &ValidationError{Reason: "nil process"}
		}
		if seen[p.ProcessID] {
			return &ValidationError{ProcessID: p.ProcessID, Field: "process_id", Reason: "is duplicated"}
		}
		seen[p.ProcessID] = true
		if p.BurstTime <= 0 {
			return &ValidationError{ProcessID: p.ProcessID, Field: "burst_time", Reason: fmt.Sprintf("must be positive, got %d", p.BurstTime)}
		}
		if p.ArrivalTime < 0 {
			return &ValidationError{ProcessID: p.ProcessID, Field: "arrival_time", Reason: fmt.Sprintf("must be non-negative, got %d", p.ArrivalTime)}
		}
	}

	end := 0
	for _, p := range processes {
		end = max(end, p.ArrivalTime)
	}
	for _, p := range processes {
		if p.BurstTime > math.MaxInt-end {
			return &ValidationError{ProcessID: p.ProcessID, Field: "burst_time", Reason: "overflows the simulated clock"}
		}
		end += p.BurstTime
	}
	return nil
}
