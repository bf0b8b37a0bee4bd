package schedulers

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/metrics"
)

var (
	ErrInvalidConfig        = errors.New("invalid scheduler configuration")
	ErrEmptyInput           = fmt.Errorf("%w: no processes to schedule", ErrInvalidConfig)
	ErrDuplicateProcessID   = fmt.Errorf("%w: duplicate process id", ErrInvalidConfig)
	ErrInvalidTimeQuantum   = fmt.Errorf("%w: time quantum must be positive", ErrInvalidConfig)
	ErrInvalidAgingInterval = fmt.Errorf("%w: aging interval must be positive", ErrInvalidConfig)
	ErrUnknownAlgorithm     = fmt.Errorf("%w: unknown algorithm", ErrInvalidConfig)
)

type Algorithm int

const (
	FirstComeFirstServe Algorithm = iota
	ShortestJobFirst
	ShortestRemainingTime
	RoundRobin
	MultilevelFeedbackQueue
)

// Algorithms lists every policy in presentation order.
var Algorithms = []Algorithm{
	FirstComeFirstServe,
	ShortestJobFirst,
	ShortestRemainingTime,
	RoundRobin,
	MultilevelFeedbackQueue,
}

func (a Algorithm) String() string {
	switch a {
	case FirstComeFirstServe:
		return "fcfs"
	case ShortestJobFirst:
		return "sjf"
	case ShortestRemainingTime:
		return "srt"
	case RoundRobin:
		return "rr"
	case MultilevelFeedbackQueue:
		return "mlfq"
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// Title is the human readable name used in tables and exports.
func (a Algorithm) Title() string {
	switch a {
	case FirstComeFirstServe:
		return "FCFS"
	case ShortestJobFirst:
		return "SJF (Non-Preemptive)"
	case ShortestRemainingTime:
		return "SRT (Preemptive)"
	case RoundRobin:
		return "Round Robin"
	case MultilevelFeedbackQueue:
		return "MLFQ"
	}
	return a.String()
}

func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs", "first_come_first_serve", "first-come-first-serve":
		return FirstComeFirstServe, nil
	case "sjf", "shortest_job_first", "shortest-job-first":
		return ShortestJobFirst, nil
	case "srt", "shortest_remaining_time", "shortest-remaining-time":
		return ShortestRemainingTime, nil
	case "rr", "round_robin", "round-robin":
		return RoundRobin, nil
	case "mlfq", "multilevel_feedback_queue", "multilevel-feedback-queue":
		return MultilevelFeedbackQueue, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Policy selects an algorithm together with the parameters it needs.
// TimeQuantum is read only by RoundRobin, AgingInterval only by
// MultilevelFeedbackQueue.
type Policy struct {
	Algorithm     Algorithm
	TimeQuantum   int
	AgingInterval int
}

func FCFS() Policy { return Policy{Algorithm: FirstComeFirstServe} }

func SJF() Policy { return Policy{Algorithm: ShortestJobFirst} }

func SRT() Policy { return Policy{Algorithm: ShortestRemainingTime} }

func RR(timeQuantum int) Policy {
	return Policy{Algorithm: RoundRobin, TimeQuantum: timeQuantum}
}

func MLFQ(agingInterval int) Policy {
	return Policy{Algorithm: MultilevelFeedbackQueue, AgingInterval: agingInterval}
}

func (p Policy) Validate() error {
	switch p.Algorithm {
	case FirstComeFirstServe, ShortestJobFirst, ShortestRemainingTime:
		return nil
	case RoundRobin:
		if p.TimeQuantum <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidTimeQuantum, p.TimeQuantum)
		}
		return nil
	case MultilevelFeedbackQueue:
		if p.AgingInterval <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidAgingInterval, p.AgingInterval)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownAlgorithm, p.Algorithm)
}

// Result is the outcome of one simulation run. Processes are in the order the
// caller supplied them.
type Result struct {
	Policy    Policy
	Processes []core.Process
	Timeline  []core.Interval
}

type scheduleFunc func(processes []core.Process) ([]core.Process, []core.Interval)

func (p Policy) scheduler() scheduleFunc {
	switch p.Algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe
	case ShortestJobFirst:
		return ScheduleShortestJobFirst
	case ShortestRemainingTime:
		return ScheduleShortestRemainingTime
	case RoundRobin:
		return func(processes []core.Process) ([]core.Process, []core.Interval) {
			return ScheduleRoundRobin(processes, p.TimeQuantum)
		}
	case MultilevelFeedbackQueue:
		return func(processes []core.Process) ([]core.Process, []core.Interval) {
			return ScheduleMultilevelFeedbackQueue(processes, p.AgingInterval)
		}
	}
	panic(fmt.Sprintf("schedulers: no scheduler for %s", p.Algorithm))
}

// Schedule validates the policy and the input, then simulates it on a fresh
// copy of processes. The caller's slice is left untouched.
func (p Policy) Schedule(processes []core.Process) (Result, error) {
	if err := p.Validate(); err != nil {
		metrics.IncRejected(p.Algorithm.String())
		return Result{}, err
	}
	if err := validateProcesses(processes); err != nil {
		metrics.IncRejected(p.Algorithm.String())
		return Result{}, err
	}

	slog.Debug("running scheduling policy",
		slog.String("algorithm", p.Algorithm.String()),
		slog.Int("processes", len(processes)),
		slog.Int("time_quantum", p.TimeQuantum),
		slog.Int("aging_interval", p.AgingInterval))

	done, timeline := p.scheduler()(core.Clone(processes))

	cpu := core.MeasureCpu(timeline)
	metrics.ObserveRun(p.Algorithm.String(), len(done), cpu.TotalTime, meanWaiting(done))
	slog.Debug("scheduling policy finished",
		slog.String("algorithm", p.Algorithm.String()),
		slog.Int("total_time", cpu.TotalTime),
		slog.Int("idle_time", cpu.IdleTime),
		slog.Int("intervals", len(timeline)))

	return Result{Policy: p, Processes: done, Timeline: timeline}, nil
}

func validateProcesses(processes []core.Process) error {
	if len(processes) == 0 {
		return ErrEmptyInput
	}
	seen := make(map[string]struct{}, len(processes))
	for _, p := range processes {
		if err := core.ValidateDescriptor(p.ID, p.ArrivalTime, p.BurstTime); err != nil {
			return err
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateProcessID, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// arrivalOrder returns the indexes of processes sorted by arrival time, ties
// kept in input order.
func arrivalOrder(processes []core.Process) []int {
	order := make([]int, len(processes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return processes[order[i]].ArrivalTime < processes[order[j]].ArrivalTime
	})
	return order
}

func meanWaiting(processes []core.Process) float64 {
	if len(processes) == 0 {
		return 0
	}
	var sum int
	for _, p := range processes {
		sum += p.WaitingTime
	}
	return float64(sum) / float64(len(processes))
}
