package core

import (
	"errors"
	"fmt"
)

// NotSet marks a timing field that has not been assigned yet.
const NotSet = -1

var ErrInvalidDescriptor = errors.New("invalid process descriptor")

// Process is the static description of a simulated process plus the state a
// scheduling policy advances while it runs.
type Process struct {
	ID          string
	ArrivalTime int
	BurstTime   int
	Priority    int // carried through, no policy orders by it

	RemainingTime  int
	StartTime      int
	CompletionTime int
	WaitingTime    int
	TurnaroundTime int
	ResponseTime   int
}

func NewProcess(id string, arrivalTime, burstTime, priority int) Process {
	p := Process{
		ID:          id,
		ArrivalTime: arrivalTime,
		BurstTime:   burstTime,
		Priority:    priority,
	}
	return p.Reset()
}

// Reset returns a copy of p with the simulation state cleared.
func (p Process) Reset() Process {
	p.RemainingTime = p.BurstTime
	p.StartTime = NotSet
	p.CompletionTime = NotSet
	p.WaitingTime = NotSet
	p.TurnaroundTime = NotSet
	p.ResponseTime = NotSet
	return p
}

// Clone returns fresh copies of processes, ready for one simulation run.
func Clone(processes []Process) []Process {
	cloned := make([]Process, len(processes))
	for i, p := range processes {
		cloned[i] = p.Reset()
	}
	return cloned
}

func (p Process) Started() bool { return p.StartTime != NotSet }

func (p Process) Finished() bool { return p.CompletionTime != NotSet }

// Execute runs p for units ticks starting at clock and returns the clock after
// the run. The first call records the start time; the call that drains the
// remaining time records completion and the derived metrics.
func (p *Process) Execute(clock, units int) int {
	if p.Finished() {
		panic(fmt.Sprintf("core: process %q executed after completion", p.ID))
	}
	if units <= 0 || units > p.RemainingTime {
		panic(fmt.Sprintf("core: process %q cannot run %d units with %d remaining", p.ID, units, p.RemainingTime))
	}
	if clock < p.ArrivalTime {
		panic(fmt.Sprintf("core: process %q dispatched at %d before arrival %d", p.ID, clock, p.ArrivalTime))
	}
	if !p.Started() {
		p.StartTime = clock
	}
	p.RemainingTime -= units
	clock += units
	if p.RemainingTime == 0 {
		p.CompletionTime = clock
		p.TurnaroundTime, p.WaitingTime, p.ResponseTime = CalculateMetrics(p.CompletionTime, p.ArrivalTime, p.BurstTime, p.StartTime)
	}
	return clock
}

// CalculateMetrics derives turnaround, waiting and response time of a
// completed process.
func CalculateMetrics(completion, arrival, burst, start int) (turnaround, waiting, response int) {
	turnaround = completion - arrival
	waiting = turnaround - burst
	response = start - arrival
	return
}

// ValidateDescriptor checks the caller supplied part of a process.
func ValidateDescriptor(id string, arrivalTime, burstTime int) error {
	if id == "" {
		return fmt.Errorf("%w: empty process id", ErrInvalidDescriptor)
	}
	if arrivalTime < 0 {
		return fmt.Errorf("%w: process %q has negative arrival time %d", ErrInvalidDescriptor, id, arrivalTime)
	}
	if burstTime <= 0 {
		return fmt.Errorf("%w: process %q has non-positive burst time %d", ErrInvalidDescriptor, id, burstTime)
	}
	return nil
}
