package pmf

import (
	"testing"

	"github.com/parrotls/parrotls/internal/model"
	"github.com/parrotls/parrotls/internal/randomize/testrng"
	"github.com/stretchr/testify/require"
)

func TestSampleFromPMFConvergesToExpectedValue(t *testing.T) {
	entries := []model.PMFEntry{
		{Value: 0, Weight: 0.1},
		{Value: 128, Weight: 0.2},
		{Value: 256, Weight: 0.25},
		{Value: 512, Weight: 0.25},
		{Value: 1024, Weight: 0.2},
	}

	rng := testrng.New(42)
	var sum float64
	const n = 200000
	for i := 0; i < n; i++ {
		sum += float64(SampleFromPMF(entries, rng))
	}
	mean := sum / n

	var expected float64
	for _, e := range entries {
		expected += float64(e.Value) * e.Weight
	}

	require.InDelta(t, expected, mean, expected*0.05)
}

func TestSampleFromPMFEmptyReturnsZero(t *testing.T) {
	require.Equal(t, 0, SampleFromPMF(nil, testrng.New(1)))
}

func TestSnapBiasAlwaysWithinRange(t *testing.T) {
	rng := testrng.New(7)
	for i := 0; i < 1000; i++ {
		l := SnapBias(300, 0, 1500, 0.7, rng)
		require.GreaterOrEqual(t, l, 0)
		require.LessOrEqual(t, l, 1500)
	}
}

func TestSnapBiasZeroBiasLeavesValueUnchanged(t *testing.T) {
	rng := testrng.New(3)
	require.Equal(t, 300, SnapBias(300, 0, 1500, 0, rng))
}

func TestNearestPowerOfTwoRoundsTiesUp(t *testing.T) {
	require.Equal(t, 4, SnapBias(3, 0, 1500, 1.0, testrng.New(1)))
	require.Equal(t, 1, SnapBias(1, 0, 1500, 1.0, testrng.New(1)))
}
