package requests

import "github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/core"

type Job struct {
	ProcessID   int `json:"process_id" yaml:"process_id"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
	Priority    int `json:"priority" yaml:"priority"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs" yaml:"jobs"`
}

// Processes converts the jobs into fresh, undispatched processes. Validation
// is left to the schedulers.
func (r *ScheduleRequests) Processes() []*core.Process {
	out := make([]*core.Process, len(r.Jobs))
	for i, j := range r.Jobs {
		out[i] = core.NewProcess(j.ProcessID, j.ArrivalTime, j.BurstTime, j.Priority)
	}
	return out
}

// DefaultWorkload is the eight-process workload used when no file is given.
func DefaultWorkload() *ScheduleRequests {
	return &ScheduleRequests{Jobs: []Job{
		{ProcessID: 1, ArrivalTime: 0, BurstTime: 8},
		{ProcessID: 2, ArrivalTime: 1, BurstTime: 4},
		{ProcessID: 3, ArrivalTime: 2, BurstTime: 9},
		{ProcessID: 4, ArrivalTime: 3, BurstTime: 5},
		{ProcessID: 5, ArrivalTime: 4, BurstTime: 7},
		{ProcessID: 6, ArrivalTime: 5, BurstTime: 2},
		{ProcessID: 7, ArrivalTime: 6, BurstTime: 6},
		{ProcessID: 8, ArrivalTime: 7, BurstTime: 3},
	}}
}
