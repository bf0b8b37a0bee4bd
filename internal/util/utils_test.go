package util

import (
	"testing"

	"cpu-scheduler/internal/responses"
	"github.com/stretchr/testify/assert"
)

func TestCalculateAverage(t *testing.T) {
	wait, resp, turn := CalculateAverage([]responses.ProcessResponse{
		{WaitingTime: 0, ResponseTime: 0, TurnAroundTime: 5},
		{WaitingTime: 4, ResponseTime: 3, TurnAroundTime: 7},
	})
	assert.InDelta(t, 2.0, wait, 1e-9)
	assert.InDelta(t, 1.5, resp, 1e-9)
	assert.InDelta(t, 6.0, turn, 1e-9)
}

func TestCalculateAverageEmpty(t *testing.T) {
	wait, resp, turn := CalculateAverage(nil)
	assert.Zero(t, wait)
	assert.Zero(t, resp)
	assert.Zero(t, turn)
}
