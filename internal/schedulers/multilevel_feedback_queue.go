package schedulers

import (
	"log/slog"

	"cpu-scheduler/internal/core"
)

// Quantum is the number of ticks a level lets a process run before demoting
// it. Unbounded never expires.
type Quantum int

const Unbounded Quantum = 0

func (q Quantum) Expired(ticks int) bool {
	return q != Unbounded && ticks >= int(q)
}

const mlfqLevels = 3

// level 0 and 1 are round robin, level 2 is first come first serve
var mlfqQuanta = [mlfqLevels]Quantum{2, 4, Unbounded}

const noProcess = -1

type mlfqState struct {
	processes     []core.Process
	order         []int
	agingInterval int

	clock     int
	queues    [mlfqLevels][]int
	level     []int
	running   int
	timeSlice int
	completed int
	timeline  *core.Timeline
}

func newMLFQState(processes []core.Process, agingInterval int) *mlfqState {
	return &mlfqState{
		processes:     processes,
		order:         arrivalOrder(processes),
		agingInterval: agingInterval,
		level:         make([]int, len(processes)),
		running:       noProcess,
		timeline:      core.NewTimeline(),
	}
}

// ScheduleMultilevelFeedbackQueue runs three feedback levels with quanta 2, 4
// and unbounded. A process that uses up its quantum drops one level; every
// agingInterval ticks the waiting processes of the lower levels are lifted
// back to level 0.
func ScheduleMultilevelFeedbackQueue(processes []core.Process, agingInterval int) ([]core.Process, []core.Interval) {
	if agingInterval <= 0 {
		panic("schedulers: mlfq needs a positive aging interval")
	}
	st := newMLFQState(processes, agingInterval)
	for !st.done() {
		st.step()
	}
	return st.processes, st.timeline.Intervals()
}

func (st *mlfqState) done() bool { return st.completed == len(st.processes) }

// step advances the simulation by exactly one tick.
func (st *mlfqState) step() {
	st.admitArrivals()
	st.age()

	top := st.highestReadyLevel()
	if st.running != noProcess && top != noProcess && top < st.level[st.running] {
		st.preempt()
	}
	if st.running == noProcess && top != noProcess {
		st.dispatch(top)
	}

	if st.running == noProcess {
		st.timeline.Flush()
		st.clock++
		return
	}

	i := st.running
	p := &st.processes[i]
	st.timeline.Tick(p.ID, st.clock)
	st.clock = p.Execute(st.clock, 1)
	st.timeSlice++

	switch {
	case p.RemainingTime == 0:
		st.completed++
		st.release()
	case mlfqQuanta[st.level[i]].Expired(st.timeSlice):
		st.level[i] = min(mlfqLevels-1, st.level[i]+1)
		st.queues[st.level[i]] = append(st.queues[st.level[i]], i)
		slog.Debug("mlfq demote", slog.String("pid", p.ID), slog.Int("level", st.level[i]), slog.Int("clock", st.clock))
		st.release()
	}
}

func (st *mlfqState) admitArrivals() {
	for _, i := range st.order {
		if st.processes[i].ArrivalTime == st.clock {
			st.level[i] = 0
			st.queues[0] = append(st.queues[0], i)
		}
	}
}

// age lifts every waiting process of the lower levels to level 0. The running
// process keeps its level.
func (st *mlfqState) age() {
	if st.clock == 0 || st.clock%st.agingInterval != 0 {
		return
	}
	for lvl := 1; lvl < mlfqLevels; lvl++ {
		for _, i := range st.queues[lvl] {
			st.level[i] = 0
			slog.Debug("mlfq aging", slog.String("pid", st.processes[i].ID), slog.Int("from", lvl), slog.Int("clock", st.clock))
		}
		st.queues[0] = append(st.queues[0], st.queues[lvl]...)
		st.queues[lvl] = nil
	}
}

func (st *mlfqState) highestReadyLevel() int {
	for lvl := 0; lvl < mlfqLevels; lvl++ {
		if len(st.queues[lvl]) > 0 {
			return lvl
		}
	}
	return noProcess
}

// preempt puts the running process back at the tail of its own level.
func (st *mlfqState) preempt() {
	i := st.running
	st.queues[st.level[i]] = append(st.queues[st.level[i]], i)
	st.release()
}

func (st *mlfqState) dispatch(lvl int) {
	if st.running != noProcess {
		panic("schedulers: mlfq dispatch while a process is running")
	}
	st.running = st.queues[lvl][0]
	st.queues[lvl] = st.queues[lvl][1:]
	st.timeSlice = 0
}

func (st *mlfqState) release() {
	st.running = noProcess
	st.timeSlice = 0
}
