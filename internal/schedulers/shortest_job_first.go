package schedulers

import (
	"log/slog"

	"cpu-scheduler/internal/core"
)

// ScheduleShortestJobFirst is the non-preemptive SJF policy. Among the arrived
// processes the one with the smallest burst runs to completion; equal bursts
// go to whichever came first in the input.
func ScheduleShortestJobFirst(processes []core.Process) ([]core.Process, []core.Interval) {
	timeline := core.NewTimeline()
	clock := 0

	for completed := 0; completed < len(processes); {
		next := shortestReadyJob(processes, clock)
		if next == -1 {
			clock = nextArrival(processes, clock)
			continue
		}

		p := &processes[next]
		start := clock
		clock = p.Execute(start, p.BurstTime)
		timeline.Add(p.ID, start, clock)
		completed++
		slog.Debug("sjf dispatch", slog.String("pid", p.ID), slog.Int("start", start), slog.Int("completion", clock))
	}

	return processes, timeline.Intervals()
}

// shortestReadyJob returns the index of the arrived, unfinished process with
// the smallest burst, or -1 when nothing is ready.
func shortestReadyJob(processes []core.Process, clock int) int {
	next := -1
	for i, p := range processes {
		if p.Finished() || p.ArrivalTime > clock {
			continue
		}
		if next == -1 || p.BurstTime < processes[next].BurstTime {
			next = i
		}
	}
	return next
}

// nextArrival is the earliest arrival among unfinished processes that have not
// arrived by clock.
func nextArrival(processes []core.Process, clock int) int {
	next := -1
	for _, p := range processes {
		if p.Finished() || p.ArrivalTime <= clock {
			continue
		}
		if next == -1 || p.ArrivalTime < next {
			next = p.ArrivalTime
		}
	}
	if next == -1 {
		panic("schedulers: no pending arrival while processes remain")
	}
	return next
}
