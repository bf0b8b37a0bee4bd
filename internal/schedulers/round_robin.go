package schedulers

import (
	"log/slog"

	"cpu-scheduler/internal/core"
)

// ScheduleRoundRobin serves a FIFO ready queue, giving each dispatch at most
// timeQuantum ticks. Processes arriving during a slice are queued ahead of the
// process whose slice just expired.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) ([]core.Process, []core.Interval) {
	if timeQuantum <= 0 {
		panic("schedulers: round robin needs a positive time quantum")
	}

	order := arrivalOrder(processes)
	timeline := core.NewTimeline()
	clock := 0

	readyQueue := make([]int, 0, len(processes))
	enqueued := make([]bool, len(processes))
	admitArrivals := func() {
		for _, i := range order {
			if !enqueued[i] && processes[i].ArrivalTime <= clock {
				readyQueue = append(readyQueue, i)
				enqueued[i] = true
			}
		}
	}

	admitArrivals()
	for completed := 0; completed < len(processes); {
		if len(readyQueue) == 0 {
			clock++
			admitArrivals()
			continue
		}

		i := readyQueue[0]
		readyQueue = readyQueue[1:]
		p := &processes[i]

		run := min(timeQuantum, p.RemainingTime)
		start := clock
		clock = p.Execute(start, run)
		timeline.Add(p.ID, start, clock)
		slog.Debug("rr slice", slog.String("pid", p.ID), slog.Int("start", start), slog.Int("end", clock), slog.Int("remaining", p.RemainingTime))

		admitArrivals()
		if p.RemainingTime == 0 {
			completed++
			continue
		}
		readyQueue = append(readyQueue, i)
	}

	return processes, timeline.Intervals()
}
