package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFCFS_Scenario(t *testing.T) {
	input := scenarioProcesses()

	result, err := (&FirstComeFirstServe{}).Schedule(input)
	require.NoError(t, err)
	requireConsistent(t, input, result)

	assert.Equal(t, []dispatch{
		{1, 0, 8}, {2, 8, 12}, {3, 12, 21}, {4, 21, 26},
		{5, 26, 33}, {6, 33, 35}, {7, 35, 41}, {8, 41, 44},
	}, dispatches(result))
	assert.InDelta(t, 18.5, result.AverageWaitingTime, 1e-9)
	assert.InDelta(t, 24.0, result.AverageTurnaroundTime, 1e-9)
	assert.InDelta(t, 18.5, result.AverageResponseTime, 1e-9)
}

func TestFCFS_EqualArrivalsKeepInputOrder(t *testing.T) {
	input := processes([3]int{7, 0, 2}, [3]int{3, 0, 1})

	result, err := (&FirstComeFirstServe{}).Schedule(input)
	require.NoError(t, err)

	assert.Equal(t, []dispatch{{7, 0, 2}, {3, 2, 3}}, dispatches(result))
}

func TestFCFS_IdleGap(t *testing.T) {
	input := processes([3]int{1, 0, 2}, [3]int{2, 5, 3})

	result, err := (&FirstComeFirstServe{}).Schedule(input)
	require.NoError(t, err)
	requireConsistent(t, input, result)

	assert.Equal(t, 3, result.IdleTime)
	assert.InDelta(t, 2.5, result.AverageTurnaroundTime, 1e-9)
}
