package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/core"
	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/schedulers"
)

var titles = map[string]string{
	schedulers.HRRN: "Highest Response Ratio Next",
	schedulers.MLFQ: "Multi-Level Feedback Queue",
	schedulers.FCFS: "First Come First Serve",
	schedulers.SJF:  "Shortest Job First",
	schedulers.RR:   "Round Robin",
}

// Title returns the display name of a policy, falling back to the name itself.
func Title(algorithm string) string {
	if title, ok := titles[algorithm]; ok {
		return title
	}
	return algorithm
}

// WriteResult renders the title, the per-process table and the summary lines
// of one run, optionally followed by a Gantt chart.
func WriteResult(w io.Writer, result *schedulers.Result, gantt bool) error {
	writeTitle(w, Title(result.Algorithm))
	WriteTable(w, result.CompletedProcesses)
	if err := WriteSummary(w, result.Summary); err != nil {
		return err
	}
	if gantt {
		WriteGantt(w, result.Timeline)
	}
	return nil
}

func writeTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// WriteTable lists the processes in the given order, which for a result is
// completion order.
func WriteTable(w io.Writer, processes []*core.Process) {
	rows := make([][]string, 0, len(processes))
	for _, p := range processes {
		rows = append(rows, []string{
			strconv.Itoa(p.ProcessID),
			strconv.Itoa(p.ArrivalTime),
			strconv.Itoa(p.BurstTime),
			p.StartTime.String(),
			p.CompletionTime.String(),
			strconv.Itoa(p.WaitingTime),
			strconv.Itoa(p.TurnaroundTime),
			p.ResponseTime.String(),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Process", "AT", "BT", "ST", "CT", "WT", "TAT", "RT"})
	table.AppendBulk(rows)
	table.Render()
}

func WriteSummary(w io.Writer, s schedulers.Summary) error {
	_, err := fmt.Fprintf(w,
		"Average Waiting Time: %.2f\nAverage Turnaround Time: %.2f\nCPU Utilization: %.2f%%\nThroughput: %.4f processes/unit time\nAverage Response Time: %.2f\n",
		s.AverageWaitingTime, s.AverageTurnaroundTime, s.CpuUtilizationPercent, s.Throughput, s.AverageResponseTime)
	return err
}

// WriteGantt draws one cell per timeline slice with the slice boundaries
// underneath. Idle slices are labelled "idle".
func WriteGantt(w io.Writer, timeline []core.ScheduleTime) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprintln(w, "|")
		return
	}

	var cells, ticks strings.Builder
	cells.WriteString("|")
	for _, slice := range timeline {
		label := strconv.Itoa(slice.ProcessID)
		if slice.Idle {
			label = "idle"
		}
		width := max(len(label)+2, 6)
		left := (width - len(label)) / 2
		cells.WriteString(strings.Repeat(" ", left) + label + strings.Repeat(" ", width-len(label)-left) + "|")

		start := strconv.Itoa(slice.Start)
		ticks.WriteString(start + strings.Repeat(" ", width+1-len(start)))
	}
	ticks.WriteString(strconv.Itoa(timeline[len(timeline)-1].End))

	_, _ = fmt.Fprintln(w, cells.String())
	_, _ = fmt.Fprintln(w, ticks.String())
}
