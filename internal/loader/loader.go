// Package loader reads process descriptors from delimited text.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cpu-scheduler/internal/core"
)

var (
	ErrFormat = errors.New("invalid process file format")
	ErrParse  = errors.New("invalid process field")
)

const (
	colID = iota
	colArrival
	colBurst
	colPriority
	columnCount
)

var headerAliases = map[string]int{
	"pid":          colID,
	"id":           colID,
	"process_id":   colID,
	"arrival_time": colArrival,
	"arrival":      colArrival,
	"burst_time":   colBurst,
	"burst":        colBurst,
	"priority":     colPriority,
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string) ([]core.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open process file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

// Load parses rows of id, arrival, burst and an optional priority. A leading
// header row may name the columns in any order.
func Load(r io.Reader) ([]core.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrFormat)
	}

	columns := []int{colID, colArrival, colBurst, colPriority}
	first := 0
	if isHeader(rows[0]) {
		if columns, err = headerColumns(rows[0]); err != nil {
			return nil, err
		}
		first = 1
	}
	if len(rows) == first {
		return nil, fmt.Errorf("%w: no process rows", ErrFormat)
	}

	processes := make([]core.Process, 0, len(rows)-first)
	for n, row := range rows[first:] {
		line := first + n + 1
		p, err := parseRow(row, columns)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		processes = append(processes, p)
	}
	return processes, nil
}

// isHeader reports whether row names at least one known column. Anything else
// is parsed as data so a bad first row fails with its line number.
func isHeader(row []string) bool {
	for _, cell := range row {
		if _, ok := headerAliases[strings.ToLower(strings.TrimSpace(cell))]; ok {
			return true
		}
	}
	return false
}

// headerColumns maps field positions in the file to logical columns.
func headerColumns(header []string) ([]int, error) {
	positions := make([]int, columnCount)
	for i := range positions {
		positions[i] = -1
	}
	for i, name := range header {
		col, ok := headerAliases[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			continue
		}
		positions[col] = i
	}
	for col, name := range []string{"pid", "arrival_time", "burst_time"} {
		if positions[col] == -1 {
			return nil, fmt.Errorf("%w: header is missing %q", ErrFormat, name)
		}
	}
	return positions, nil
}

func parseRow(row []string, columns []int) (core.Process, error) {
	field := func(col int) (string, bool) {
		pos := columns[col]
		if pos < 0 || pos >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[pos]), true
	}
	number := func(col int, name string) (int, error) {
		raw, _ := field(col)
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q is not an integer", ErrParse, name, raw)
		}
		return v, nil
	}

	for _, col := range []int{colID, colArrival, colBurst} {
		if _, ok := field(col); !ok {
			return core.Process{}, fmt.Errorf("%w: expected at least 3 fields, got %d", ErrFormat, len(row))
		}
	}

	id, _ := field(colID)
	arrival, err := number(colArrival, "arrival time")
	if err != nil {
		return core.Process{}, err
	}
	burst, err := number(colBurst, "burst time")
	if err != nil {
		return core.Process{}, err
	}
	priority := 0
	if raw, ok := field(colPriority); ok && raw != "" {
		if priority, err = number(colPriority, "priority"); err != nil {
			return core.Process{}, err
		}
	}
	if err := core.ValidateDescriptor(id, arrival, burst); err != nil {
		return core.Process{}, err
	}
	return core.NewProcess(id, arrival, burst, priority), nil
}
