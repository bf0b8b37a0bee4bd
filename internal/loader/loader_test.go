package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cpu-scheduler/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithHeader(t *testing.T) {
	in := "pid,arrival_time,burst_time,priority\nP1,0,5,0\nP2, 1, 3, 2\n"
	processes, err := Load(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []core.Process{
		core.NewProcess("P1", 0, 5, 0),
		core.NewProcess("P2", 1, 3, 2),
	}, processes)
}

func TestLoadHeaderInAnyOrder(t *testing.T) {
	in := "priority,burst,id,arrival\n4,6,P9,2\n"
	processes, err := Load(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []core.Process{core.NewProcess("P9", 2, 6, 4)}, processes)
}

func TestLoadWithoutHeader(t *testing.T) {
	processes, err := Load(strings.NewReader("A,0,5\nB,1,3,7\n"))
	require.NoError(t, err)
	require.Len(t, processes, 2)
	assert.Equal(t, 0, processes[0].Priority)
	assert.Equal(t, 7, processes[1].Priority)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
		line string
	}{
		{"empty", "", ErrFormat, ""},
		{"header only", "pid,arrival_time,burst_time,priority\n", ErrFormat, ""},
		{"missing column", "pid,arrival_time,priority\nP1,0,1\n", ErrFormat, ""},
		{"short row", "P1,0\n", ErrFormat, "line 1"},
		{"non numeric burst", "pid,arrival_time,burst_time\nP1,0,x\n", ErrParse, "line 2"},
		{"non numeric priority", "P1,0,1,high\n", ErrParse, "line 1"},
		{"non numeric arrival on first row", "P1,x,3,1\nP2,0,2,1\n", ErrParse, "line 1"},
		{"non numeric burst on first row", "P1,0,three\n", ErrParse, "line 1"},
		{"negative arrival", "P1,-2,1\n", core.ErrInvalidDescriptor, "line 1"},
		{"zero burst", "P1,0,1\nP2,0,0\n", core.ErrInvalidDescriptor, "line 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			if tc.line != "" {
				assert.Contains(t, err.Error(), tc.line)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte("pid,arrival_time,burst_time,priority\nP1,0,5,0\n"), 0o644))

	processes, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, processes, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
