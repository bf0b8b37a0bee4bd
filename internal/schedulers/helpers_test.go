package schedulers

import (
	"testing"

	"cpu-scheduler/internal/core"
	"github.com/stretchr/testify/require"
)

type job struct {
	id      string
	arrival int
	burst   int
}

func fresh(jobs ...job) []core.Process {
	processes := make([]core.Process, len(jobs))
	for i, j := range jobs {
		processes[i] = core.NewProcess(j.id, j.arrival, j.burst, 0)
	}
	return processes
}

func byID(t *testing.T, processes []core.Process, id string) core.Process {
	t.Helper()
	for _, p := range processes {
		if p.ID == id {
			return p
		}
	}
	require.FailNow(t, "process not found", id)
	return core.Process{}
}

func iv(pid string, start, end int) core.Interval {
	return core.Interval{ProcessId: pid, Start: start, End: end}
}
