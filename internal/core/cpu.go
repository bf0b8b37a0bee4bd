package core

// CpuMetric summarises CPU occupancy of one simulation run in time units.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// MeasureCpu derives the metric from a timeline. The run is measured from
// clock 0 to the end of the last interval.
func MeasureCpu(timeline []Interval) CpuMetric {
	var metric CpuMetric
	for _, iv := range timeline {
		metric.UtilizationTime += iv.Duration()
		if iv.End > metric.TotalTime {
			metric.TotalTime = iv.End
		}
	}
	metric.IdleTime = metric.TotalTime - metric.UtilizationTime
	return metric
}

// Utilization is the busy share of the total time, 0 for an empty run.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is completed processes per time unit.
func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}
