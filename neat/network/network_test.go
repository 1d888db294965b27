package network

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sigmoidRef(x float64) float64 {
	return 2.0/(1.0+math.Exp(-4.9*x)) - 1.0
}

// S1 — a simple feedforward network: inputs 0,1 -> hidden 3 -> output 2.
func TestEvaluateFeedforward(t *testing.T) {
	links := []Link{
		{Into: 0, Out: 3, Weight: 1},
		{Into: 1, Out: 3, Weight: 1},
		{Into: 3, Out: 2, Weight: 1},
	}
	n := New(links, 2, 1)
	outputs := n.Evaluate([]float64{1, 1})
	require.Len(t, outputs, 1)

	hidden := sigmoidRef(1*1 + 1*1)
	expected := sigmoidRef(1 * hidden)
	assert.InDelta(t, expected, outputs[0], 1e-9)
}

// S2 — a network with a feedback cycle (2 -> 3 -> 2; input 1 also
// feeds 3) terminates and resolves to a single finite value in range.
func TestEvaluateTerminatesOnCycle(t *testing.T) {
	links := []Link{
		{Into: 1, Out: 3, Weight: 1},
		{Into: 2, Out: 3, Weight: 1},
		{Into: 3, Out: 2, Weight: 1},
	}
	n := New(links, 2, 1)
	outputs := n.Evaluate([]float64{1, 1})
	require.Len(t, outputs, 1)
	assert.False(t, math.IsNaN(outputs[0]))
	assert.True(t, outputs[0] > -1 && outputs[0] < 1)
}

func TestEvaluatePanicsOnWrongInputLength(t *testing.T) {
	n := New(nil, 2, 1)
	assert.Panics(t, func() { n.Evaluate([]float64{1}) })
}

func TestNetworkIncludesUnconnectedInputsAndOutputs(t *testing.T) {
	n := New(nil, 2, 2)
	assert.Len(t, n.Neurons(), 4)
	outputs := n.Evaluate([]float64{0, 0})
	for _, o := range outputs {
		assert.Equal(t, sigmoidRef(0), o)
	}
}

func TestComplexityCountsEnabledLinks(t *testing.T) {
	links := []Link{
		{Into: 0, Out: 2, Weight: 1},
		{Into: 1, Out: 2, Weight: 1},
	}
	n := New(links, 2, 1)
	assert.Equal(t, 2, n.Complexity())
}

func TestSigmoidRangeAndMonotonic(t *testing.T) {
	assert.InDelta(t, 0, sigmoid(0), 1e-9)
	assert.True(t, sigmoid(10) > sigmoid(0))
	assert.True(t, sigmoid(-10) < sigmoid(0))
	assert.True(t, sigmoid(100) < 1 && sigmoid(100) > 0.99)
	assert.True(t, sigmoid(-100) > -1 && sigmoid(-100) < -0.99)
}
