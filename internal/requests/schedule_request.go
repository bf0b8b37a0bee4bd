package requests

import (
	"fmt"

	"cpu-scheduler/internal/core"
)

type Job struct {
	ProcessId   string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
}

// ScheduleRequest is the body of every scheduling endpoint. TimeQuantum and
// AgingInterval are nil when the field is absent, in which case the
// configured default applies. Present values are used as given.
type ScheduleRequest struct {
	Jobs          []Job `json:"jobs"`
	TimeQuantum   *int  `json:"time_quantum,omitempty"`
	AgingInterval *int  `json:"aging_interval,omitempty"`
}

// Processes validates the jobs and turns them into fresh process records.
func (r ScheduleRequest) Processes() ([]core.Process, error) {
	processes := make([]core.Process, 0, len(r.Jobs))
	for i, job := range r.Jobs {
		if err := core.ValidateDescriptor(job.ProcessId, job.ArrivalTime, job.BurstTime); err != nil {
			return nil, fmt.Errorf("job %d: %w", i, err)
		}
		processes = append(processes, core.NewProcess(job.ProcessId, job.ArrivalTime, job.BurstTime, job.Priority))
	}
	return processes, nil
}
