package history

import (
	"context"
	"time"

	"cpu-scheduler/internal/responses"
)

// Event is one finished simulation run.
type Event struct {
	OccurredAt time.Time                  `json:"occurred_at"`
	Response   responses.ScheduleResponse `json:"response"`
}

// Run is the stored summary of a past simulation.
type Run struct {
	ID                    int64     `json:"id"`
	OccurredAt            time.Time `json:"occurred_at"`
	Algorithm             string    `json:"algorithm"`
	ProcessCount          int       `json:"process_count"`
	TotalTime             int       `json:"total_time"`
	AverageWaitingTime    float64   `json:"average_waiting_time"`
	AverageTurnAroundTime float64   `json:"average_turn_around_time"`
	AverageResponseTime   float64   `json:"average_response_time"`
}

// Sink is a destination for finished runs.
// Implementations must be safe for concurrent use.
type Sink interface {
	Send(ctx context.Context, e Event) error
}

// Store is a Sink that can also list what it recorded, newest first.
type Store interface {
	Sink
	Recent(ctx context.Context, limit int) ([]Run, error)
	Close() error
}
