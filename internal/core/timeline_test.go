package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimelineTickMergesContiguousSpans(t *testing.T) {
	tl := NewTimeline()
	tl.Tick("A", 0)
	tl.Tick("B", 1)
	tl.Tick("B", 2)
	tl.Tick("B", 3)
	tl.Tick("A", 4)

	assert.Equal(t, []Interval{
		{ProcessId: "A", Start: 0, End: 1},
		{ProcessId: "B", Start: 1, End: 4},
		{ProcessId: "A", Start: 4, End: 5},
	}, tl.Intervals())
}

func TestTimelineFlushSplitsAcrossIdleGap(t *testing.T) {
	tl := NewTimeline()
	tl.Tick("A", 0)
	tl.Flush()
	tl.Tick("A", 2)

	assert.Equal(t, []Interval{
		{ProcessId: "A", Start: 0, End: 1},
		{ProcessId: "A", Start: 2, End: 3},
	}, tl.Intervals())
}

func TestTimelineAddKeepsDispatchSpans(t *testing.T) {
	tl := NewTimeline()
	tl.Add("A", 0, 2)
	tl.Add("A", 2, 4)
	tl.Tick("A", 4)

	got := tl.Intervals()
	assert.Len(t, got, 3)
	assert.Equal(t, Interval{ProcessId: "A", Start: 4, End: 5}, got[2])
}

func TestTimelineRejectsBadIntervals(t *testing.T) {
	tl := NewTimeline()
	assert.Panics(t, func() { tl.Add("A", 3, 3) })

	tl.Add("A", 0, 5)
	assert.Panics(t, func() { tl.Add("B", 4, 6) })
}

func TestMeasureCpu(t *testing.T) {
	m := MeasureCpu([]Interval{
		{ProcessId: "A", Start: 1, End: 4},
		{ProcessId: "B", Start: 6, End: 10},
	})
	assert.Equal(t, CpuMetric{TotalTime: 10, UtilizationTime: 7, IdleTime: 3}, m)
	assert.InDelta(t, 0.7, m.Utilization(), 1e-9)
	assert.InDelta(t, 0.2, m.Throughput(2), 1e-9)

	empty := MeasureCpu(nil)
	assert.Zero(t, empty.Utilization())
	assert.Zero(t, empty.Throughput(0))
}
