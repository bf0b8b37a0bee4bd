package schedulers

import (
	"testing"

	"cpu-scheduler/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestShortestJobFirst(t *testing.T) {
	processes, timeline := ScheduleShortestJobFirst(fresh(
		job{"P1", 0, 5}, job{"P2", 1, 3}, job{"P3", 2, 8}, job{"P4", 3, 6},
	))

	assert.Equal(t, []core.Interval{
		iv("P1", 0, 5), iv("P2", 5, 8), iv("P4", 8, 14), iv("P3", 14, 22),
	}, timeline)
	assert.Equal(t, 12, byID(t, processes, "P3").WaitingTime)
	assert.Equal(t, 5, byID(t, processes, "P4").WaitingTime)
}

func TestShortestJobFirstTieGoesToInputOrder(t *testing.T) {
	_, timeline := ScheduleShortestJobFirst(fresh(job{"A", 0, 3}, job{"B", 0, 3}))
	assert.Equal(t, []core.Interval{iv("A", 0, 3), iv("B", 3, 6)}, timeline)

	_, timeline = ScheduleShortestJobFirst(fresh(job{"B", 0, 3}, job{"A", 0, 3}))
	assert.Equal(t, []core.Interval{iv("B", 0, 3), iv("A", 3, 6)}, timeline)
}

func TestShortestJobFirstTieIgnoresArrivalOrder(t *testing.T) {
	// A and C tie on burst at t=1; A is first in the input although C arrived earlier.
	_, timeline := ScheduleShortestJobFirst(fresh(job{"A", 1, 3}, job{"B", 0, 1}, job{"C", 0, 3}))
	assert.Equal(t, []core.Interval{iv("B", 0, 1), iv("A", 1, 4), iv("C", 4, 7)}, timeline)
}

func TestShortestJobFirstIdleSkip(t *testing.T) {
	processes, timeline := ScheduleShortestJobFirst(fresh(job{"A", 0, 2}, job{"B", 5, 1}))
	assert.Equal(t, []core.Interval{iv("A", 0, 2), iv("B", 5, 6)}, timeline)
	assert.Equal(t, 0, byID(t, processes, "B").ResponseTime)
}
