// Package render prints simulation results for terminals.
package render

import (
	"fmt"
	"io"
	"strconv"

	"cpu-scheduler/internal/responses"
	"github.com/olekukonko/tablewriter"
)

// Table prints the per-process results with averages in the footer,
// followed by the cpu summary line.
func Table(w io.Writer, title string, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, title)

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Priority", "Start", "Finish", "Wait", "Turnaround", "Response"})
	for _, d := range response.Details {
		table.Append([]string{
			d.ProcessId,
			strconv.Itoa(d.ArrivalTime),
			strconv.Itoa(d.BurstTime),
			strconv.Itoa(d.Priority),
			strconv.Itoa(d.StartTime),
			strconv.Itoa(d.CompletionTime),
			strconv.Itoa(d.WaitingTime),
			strconv.Itoa(d.TurnAroundTime),
			strconv.Itoa(d.ResponseTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "Average",
		fmt.Sprintf("%.2f", response.AverageWaitingTime),
		fmt.Sprintf("%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("%.2f", response.AverageResponseTime),
	})
	table.Render()

	_, _ = fmt.Fprintf(w, "Total time: %d  Idle: %d  CPU utilization: %.2f%%  Throughput: %.2f/t\n\n",
		response.TotalTime, response.IdleTime, response.CpuUtilization*100, response.CpuThroughput)
}

// Comparison prints one summary row per policy so several runs over the same
// input can be read side by side.
func Comparison(w io.Writer, all []responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Comparison")

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Algorithm", "Total", "Idle", "Avg Wait", "Avg Turnaround", "Avg Response", "Utilization"})
	for _, r := range all {
		table.Append([]string{
			r.Algorithm,
			strconv.Itoa(r.TotalTime),
			strconv.Itoa(r.IdleTime),
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprintf("%.2f%%", r.CpuUtilization*100),
		})
	}
	table.Render()
}
