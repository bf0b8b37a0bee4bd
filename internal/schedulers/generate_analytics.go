package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// GenerateResponse derives the per-process details, the timeline and the run
// wide analytics of a simulation result.
func GenerateResponse(result Result) responses.ScheduleResponse {
	details := make([]responses.ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		details = append(details, generateProcessDetails(p))
	}
	timeline := make([]responses.IntervalResponse, 0, len(result.Timeline))
	for _, iv := range result.Timeline {
		timeline = append(timeline, responses.IntervalResponse{ProcessId: iv.ProcessId, Start: iv.Start, End: iv.End})
	}

	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(details)
	cpu := core.MeasureCpu(result.Timeline)

	response := responses.ScheduleResponse{
		Algorithm:             result.Policy.Algorithm.String(),
		TotalTime:             cpu.TotalTime,
		IdleTime:              cpu.IdleTime,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuUtilization:        cpu.Utilization(),
		CpuThroughput:         cpu.Throughput(len(details)),
		Details:               details,
		Timeline:              timeline,
	}
	switch result.Policy.Algorithm {
	case RoundRobin:
		response.TimeQuantum = result.Policy.TimeQuantum
	case MultilevelFeedbackQueue:
		response.AgingInterval = result.Policy.AgingInterval
	}
	return response
}

func generateProcessDetails(p core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      p.ID,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		Priority:       p.Priority,
		StartTime:      p.StartTime,
		CompletionTime: p.CompletionTime,
		WaitingTime:    p.WaitingTime,
		TurnAroundTime: p.TurnaroundTime,
		ResponseTime:   p.ResponseTime,
	}
}
