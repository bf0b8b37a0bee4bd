// Package export writes simulation results as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"cpu-scheduler/internal/responses"
)

const title = "CPU Scheduling Simulation Results"

var resultHeader = []string{"PID", "Arrival", "Burst", "Priority", "Start", "Finish", "Wait", "Turnaround", "Response"}

// WriteCSV writes the per-process table, an averages row and the timeline.
func WriteCSV(w io.Writer, algorithm string, response responses.ScheduleResponse) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{title},
		{"Algorithm:", algorithm},
		{},
		resultHeader,
	}
	for _, d := range response.Details {
		rows = append(rows, []string{
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
	rows = append(rows,
		[]string{},
		[]string{"Averages", "", "", "", "", "",
			fmt.Sprintf("%.2f", response.AverageWaitingTime),
			fmt.Sprintf("%.2f", response.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", response.AverageResponseTime)},
	)

	if len(response.Timeline) > 0 {
		rows = append(rows, []string{}, []string{"Timeline"}, []string{"PID", "Start", "End"})
		for _, iv := range response.Timeline {
			rows = append(rows, []string{iv.ProcessId, strconv.Itoa(iv.Start), strconv.Itoa(iv.End)})
		}
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// WriteFile creates path and writes the results into it.
func WriteFile(path, algorithm string, response responses.ScheduleResponse) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return WriteCSV(f, algorithm, response)
}
