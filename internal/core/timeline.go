package core

import "fmt"

// Interval is a contiguous span [Start, End) during which one process held
// the CPU.
type Interval struct {
	ProcessId string
	Start     int
	End       int
}

func (i Interval) Duration() int { return i.End - i.Start }

// Timeline records CPU occupancy. Idle time is never recorded; it shows up as
// a gap between two intervals.
type Timeline struct {
	intervals []Interval
	open      bool
}

func NewTimeline() *Timeline {
	return &Timeline{intervals: make([]Interval, 0)}
}

// Add records one dispatch span as its own interval.
func (t *Timeline) Add(pid string, start, end int) {
	t.Flush()
	t.append(Interval{ProcessId: pid, Start: start, End: end})
}

// Tick records pid running over [clock, clock+1). The open interval is
// extended while the same process keeps the CPU.
func (t *Timeline) Tick(pid string, clock int) {
	if t.open {
		last := &t.intervals[len(t.intervals)-1]
		if last.ProcessId == pid && last.End == clock {
			last.End++
			return
		}
	}
	t.append(Interval{ProcessId: pid, Start: clock, End: clock + 1})
	t.open = true
}

// Flush closes the open interval, if any.
func (t *Timeline) Flush() { t.open = false }

func (t *Timeline) Intervals() []Interval {
	t.Flush()
	out := make([]Interval, len(t.intervals))
	copy(out, t.intervals)
	return out
}

func (t *Timeline) append(iv Interval) {
	if iv.Start >= iv.End {
		panic(fmt.Sprintf("core: empty interval %+v", iv))
	}
	if n := len(t.intervals); n > 0 && iv.Start < t.intervals[n-1].End {
		panic(fmt.Sprintf("core: interval %+v overlaps %+v", iv, t.intervals[n-1]))
	}
	t.intervals = append(t.intervals, iv)
}
