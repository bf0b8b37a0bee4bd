package schedulers

import (
	"cpu-scheduler/internal/core"
)

// ScheduleShortestRemainingTime is preemptive SJF simulated one tick at a
// time. Each tick the arrived process with the least remaining time runs;
// ties go to the earlier arrival, then to input order.
func ScheduleShortestRemainingTime(processes []core.Process) ([]core.Process, []core.Interval) {
	order := arrivalOrder(processes)
	timeline := core.NewTimeline()
	clock := 0

	for completed := 0; completed < len(processes); {
		next := -1
		for _, i := range order {
			p := processes[i]
			if p.ArrivalTime > clock || p.RemainingTime == 0 {
				continue
			}
			if next == -1 || shorterRemaining(p, processes[next]) {
				next = i
			}
		}

		if next == -1 {
			timeline.Flush()
			clock++
			continue
		}

		p := &processes[next]
		timeline.Tick(p.ID, clock)
		clock = p.Execute(clock, 1)
		if p.RemainingTime == 0 {
			timeline.Flush()
			completed++
		}
	}

	return processes, timeline.Intervals()
}

func shorterRemaining(a, b core.Process) bool {
	if a.RemainingTime != b.RemainingTime {
		return a.RemainingTime < b.RemainingTime
	}
	return a.ArrivalTime < b.ArrivalTime
}
