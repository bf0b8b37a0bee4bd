package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIdempotentAndHelpersRecord(t *testing.T) {
	regOK.Store(false)
	reg := prometheus.NewRegistry()
	require.NoError(t, Register(reg))
	require.NoError(t, Register(reg))

	ObserveRun("fcfs", 3, 17, 4.5)
	IncRejected("rr")

	mfs, err := reg.Gather()
	require.NoError(t, err)

	want := map[string]bool{
		"scheduler_simulation_runs_total":            false,
		"scheduler_simulation_rejected_total":        false,
		"scheduler_simulation_processes_total":       false,
		"scheduler_simulation_makespan_ticks":        false,
		"scheduler_simulation_average_waiting_ticks": false,
	}
	for _, mf := range mfs {
		if _, ok := want[mf.GetName()]; ok {
			want[mf.GetName()] = true
			assert.NotEmpty(t, mf.GetMetric(), mf.GetName())
		}
	}
	for name, seen := range want {
		assert.True(t, seen, "expected metric %s", name)
	}
}

func TestHandlerServesMetrics(t *testing.T) {
	regOK.Store(false)
	require.NoError(t, Register(prometheus.DefaultRegisterer))

	ObserveRun("mlfq", 1, 5, 0)

	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `scheduler_simulation_runs_total{algorithm="mlfq"}`))
}

func TestHelpersNoopBeforeRegister(t *testing.T) {
	regOK.Store(false)
	assert.NotPanics(t, func() {
		ObserveRun("sjf", 1, 1, 0)
		IncRejected("sjf")
	})
}
