package responses

import (
	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/core"
	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/schedulers"
)

// ProcessResponse is one process of a run. Start, completion and response
// time encode as null for a process that has not been dispatched.
type ProcessResponse struct {
	ProcessID      int  `json:"process_id"`
	ArrivalTime    int  `json:"arrival_time"`
	BurstTime      int  `json:"burst_time"`
	Priority       int  `json:"priority"`
	StartTime      *int `json:"start_time"`
	CompletionTime *int `json:"completion_time"`
	ResponseTime   *int `json:"response_time"`
	TurnAroundTime int  `json:"turn_around_time"`
	WaitingTime    int  `json:"waiting_time"`
}

type ScheduleResponse struct {
	Algorithm             string              `json:"algorithm"`
	TotalTime             int                 `json:"total_time"`
	IdleTime              int                 `json:"idle_time"`
	AverageWaitingTime    float64             `json:"average_waiting_time"`
	AverageResponseTime   float64             `json:"average_response_time"`
	AverageTurnAroundTime float64             `json:"average_turn_around_time"`
	CpuUtilization        float64             `json:"cpu_utilization"`
	CpuThroughput         float64             `json:"cpu_throughput"`
	Details               []ProcessResponse   `json:"details"`
	Timeline              []core.ScheduleTime `json:"timeline"`
}

func NewProcessResponse(p *core.Process) ProcessResponse {
	return ProcessResponse{
		ProcessID:      p.ProcessID,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		Priority:       p.Priority,
		StartTime:      p.StartTime.Ptr(),
		CompletionTime: p.CompletionTime.Ptr(),
		ResponseTime:   p.ResponseTime.Ptr(),
		TurnAroundTime: p.TurnaroundTime,
		WaitingTime:    p.WaitingTime,
	}
}

func NewScheduleResponse(result *schedulers.Result) *ScheduleResponse {
	details := make([]ProcessResponse, len(result.CompletedProcesses))
	for i, p := range result.CompletedProcesses {
		details[i] = NewProcessResponse(p)
	}
	return &ScheduleResponse{
		Algorithm:             result.Algorithm,
		TotalTime:             result.TotalTime,
		IdleTime:              result.IdleTime,
		AverageWaitingTime:    result.AverageWaitingTime,
		AverageResponseTime:   result.AverageResponseTime,
		AverageTurnAroundTime: result.AverageTurnaroundTime,
		CpuUtilization:        result.CpuUtilizationPercent,
		CpuThroughput:         result.Throughput,
		Details:               details,
		Timeline:              result.Timeline,
	}
}

// AllAlgorithmsResponse holds one response per policy, keyed by name.
type AllAlgorithmsResponse struct {
	Results map[string]*ScheduleResponse `json:"results"`
}

// AlgorithmsResponse lists the available policies and the quanta they run with.
type AlgorithmsResponse struct {
	Algorithms                               []string `json:"algorithms"`
	RoundRobinTimeQuantum                    int      `json:"round_robin_time_quantum"`
	MultilevelFeedbackQueueLevelsTimeQuantum []int    `json:"multilevel_feedback_queue_levels_time_quantum"`
}
