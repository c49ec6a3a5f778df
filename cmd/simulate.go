package cmd

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/report"
	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/requests"
	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/schedulers"
	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/service"
)

func newSimulateCommand() *cobra.Command {
	var (
		workloadPath string   // YAML or CSV workload, the built-in workload when empty
		algorithms   []string // Policies to run, in output order
		gantt        bool     // Print a Gantt chart after each table
	)

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run scheduling policies over a workload and print their reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			workload := requests.DefaultWorkload()
			if workloadPath != "" {
				loaded, err := requests.LoadWorkload(workloadPath)
				if err != nil {
					return err
				}
				workload = loaded
			}
			processes := workload.Processes()

			svc, err := service.NewSimulationService(cfg, prometheus.NewRegistry())
			if err != nil {
				return err
			}
			results, err := svc.Compare(cmd.Context(), algorithms, processes)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "Processes:")
			for _, p := range processes {
				_, _ = fmt.Fprintln(out, p)
			}
			for _, result := range results {
				_, _ = fmt.Fprintln(out)
				if err := report.WriteResult(out, result, gantt); err != nil {
					return err
				}
			}
			return nil
		},
	}

	simulateCmd.Flags().StringVar(&workloadPath, "workload", "", "Workload file (.yaml, .yml or .csv)")
	simulateCmd.Flags().StringSliceVar(&algorithms, "algorithms", []string{schedulers.HRRN, schedulers.MLFQ}, "Scheduling policies to run")
	simulateCmd.Flags().BoolVar(&gantt, "gantt", false, "Print a Gantt chart for each policy")
	return simulateCmd
}
