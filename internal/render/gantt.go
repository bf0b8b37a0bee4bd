package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"cpu-scheduler/internal/responses"
)

// MaxGanttWidth caps the chart width; longer runs are scaled down.
const MaxGanttWidth = 100

// Gantt draws one row per process in order of first appearance. Each column
// is one time unit unless the run is longer than MaxGanttWidth.
func Gantt(w io.Writer, timeline []responses.IntervalResponse) error {
	if len(timeline) == 0 {
		_, err := fmt.Fprintln(w, "No data to plot.")
		return err
	}

	total := 0
	labelWidth := 0
	pids := make([]string, 0)
	spans := make(map[string][]responses.IntervalResponse)
	for _, iv := range timeline {
		if _, ok := spans[iv.ProcessId]; !ok {
			pids = append(pids, iv.ProcessId)
			labelWidth = max(labelWidth, len(iv.ProcessId))
		}
		spans[iv.ProcessId] = append(spans[iv.ProcessId], iv)
		total = max(total, iv.End)
	}
	width := min(total, MaxGanttWidth)

	var b strings.Builder
	for _, pid := range pids {
		_, _ = fmt.Fprintf(&b, "%-*s |", labelWidth, pid)
		for col := 0; col < width; col++ {
			from, to := col*total/width, (col+1)*total/width
			if covered(spans[pid], from, max(to, from+1)) {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString("|\n")
	}

	end := strconv.Itoa(total)
	b.WriteString(strings.Repeat(" ", labelWidth+2))
	b.WriteString("0")
	b.WriteString(strings.Repeat(" ", max(1, width-len(end))))
	b.WriteString(end)
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func covered(spans []responses.IntervalResponse, from, to int) bool {
	for _, s := range spans {
		if s.Start < to && from < s.End {
			return true
		}
	}
	return false
}
