package schedulers

import (
	"log/slog"

	"cpu-scheduler/internal/core"
)

// ScheduleFirstComeFirstServe runs processes to completion in arrival order.
// processes must carry fresh simulation state; they are advanced in place.
func ScheduleFirstComeFirstServe(processes []core.Process) ([]core.Process, []core.Interval) {
	timeline := core.NewTimeline()
	clock := 0

	for _, i := range arrivalOrder(processes) {
		p := &processes[i]
		if clock < p.ArrivalTime {
			clock = p.ArrivalTime // cpu idles until the next arrival
		}
		start := clock
		clock = p.Execute(start, p.BurstTime)
		timeline.Add(p.ID, start, clock)
		slog.Debug("fcfs dispatch", slog.String("pid", p.ID), slog.Int("start", start), slog.Int("completion", clock))
	}

	return processes, timeline.Intervals()
}
