package render

import (
	"bytes"
	"strings"
	"testing"

	"cpu-scheduler/internal/responses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGantt(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Gantt(&buf, []responses.IntervalResponse{
		{ProcessId: "A", Start: 0, End: 5},
		{ProcessId: "B", Start: 5, End: 8},
	}))

	want := "A |#####   |\n" +
		"B |     ###|\n" +
		"   0       8\n"
	assert.Equal(t, want, buf.String())
}

func TestGanttIdleGapAndRepeatedProcess(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Gantt(&buf, []responses.IntervalResponse{
		{ProcessId: "P10", Start: 1, End: 2},
		{ProcessId: "P2", Start: 2, End: 3},
		{ProcessId: "P10", Start: 4, End: 6},
	}))

	want := "P10 | #  ##|\n" +
		"P2  |  #   |\n" +
		"     0     6\n"
	assert.Equal(t, want, buf.String())
}

func TestGanttScalesLongRuns(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Gantt(&buf, []responses.IntervalResponse{{ProcessId: "A", Start: 0, End: 1000}}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "A |"+strings.Repeat("#", MaxGanttWidth)+"|", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "1000"))
}

func TestGanttEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Gantt(&buf, nil))
	assert.Equal(t, "No data to plot.\n", buf.String())
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, "FCFS", responses.ScheduleResponse{
		TotalTime: 8,
		Details: []responses.ProcessResponse{
			{ProcessId: "P1", BurstTime: 5, CompletionTime: 5, TurnAroundTime: 5},
			{ProcessId: "P2", ArrivalTime: 1, BurstTime: 3, StartTime: 5, CompletionTime: 8, WaitingTime: 4, TurnAroundTime: 7, ResponseTime: 4},
		},
		AverageWaitingTime:    2,
		AverageTurnAroundTime: 6,
		AverageResponseTime:   2,
		CpuUtilization:        1,
		CpuThroughput:         0.25,
	})

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "FCFS\n"))
	for _, s := range []string{"PID", "Turnaround", "P1", "P2", "Average", "2.00", "6.00", "CPU utilization: 100.00%", "Throughput: 0.25/t"} {
		assert.Contains(t, out, s)
	}
}

func TestComparison(t *testing.T) {
	var buf bytes.Buffer
	Comparison(&buf, []responses.ScheduleResponse{
		{Algorithm: "fcfs", TotalTime: 8, AverageWaitingTime: 2, CpuUtilization: 1},
		{Algorithm: "rr", TotalTime: 8, AverageWaitingTime: 3.5, CpuUtilization: 0.5},
	})

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Comparison\n"))
	for _, s := range []string{"Algorithm", "fcfs", "rr", "2.00", "3.50", "100.00%", "50.00%"} {
		assert.Contains(t, out, s)
	}
}
