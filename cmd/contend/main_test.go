package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMs(t *testing.T) {
	assert.Equal(t, "1.500ms", ms(0.0015))
	assert.Equal(t, "0.000ms", ms(0))
}

func TestRunScenariosUnknownName(t *testing.T) {
	runTrials = 1
	runIters = 10
	err := runScenarios(runCmd, []string{"no-such-scenario"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-scenario")
}

func TestRunScenariosSmoke(t *testing.T) {
	runTrials = 2
	runIters = 100
	runParked = false
	require.NoError(t, runScenarios(runCmd, []string{"atomic"}))
}
