package stats_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wilsonci/internal/stats"
)

func mustQuantile(t *testing.T, p float64) float64 {
	t.Helper()
	z, err := stats.Quantile(p)
	require.NoError(t, err, "Quantile(%v)", p)
	return z
}

func TestQuantile_KnownValues(t *testing.T) {
	tests := []struct {
		p    float64
		want float64
	}{
		{0.5, 0},
		{0.975, 1.959963984540054},
		{0.95, 1.6448536269514722},
		{0.995, 2.5758293035489004},
		{0.01, -2.3263478740408408},
		{0.99, 2.3263478740408408},
		{0.001, -3.090232306167813},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, mustQuantile(t, tt.p), 1e-6, "Quantile(%v)", tt.p)
	}
}

func TestQuantile_Symmetric(t *testing.T) {
	for _, p := range []float64{1e-12, 1e-6, 0.001, 0.01, 0.02425, 0.03, 0.1, 0.25, 0.4, 0.49} {
		lo := mustQuantile(t, p)
		hi := mustQuantile(t, 1-p)
		assert.InDelta(t, -lo, hi, 1e-6, "p=%v", p)
	}
}

func TestQuantile_StrictlyIncreasing(t *testing.T) {
	prev := math.Inf(-1)
	// Crosses both breakpoints.
	for i := 1; i < 10000; i++ {
		p := float64(i) / 10000
		z := mustQuantile(t, p)
		require.Greater(t, z, prev, "not increasing at p=%v", p)
		prev = z
	}
}

func TestQuantile_Breakpoints(t *testing.T) {
	// Both sides of each breakpoint should agree closely.
	for _, p := range []float64{0.02425, 0.97575} {
		below := mustQuantile(t, math.Nextafter(p, 0))
		above := mustQuantile(t, math.Nextafter(p, 1))
		assert.InDelta(t, below, above, 1e-8, "discontinuity at %v", p)
	}
}

func TestQuantile_OutOfDomain(t *testing.T) {
	for _, p := range []float64{0, 1, -0.1, 1.5, math.NaN(), math.Inf(1)} {
		_, err := stats.Quantile(p)
		require.Error(t, err, "p=%v", p)
		assert.True(t, errors.Is(err, stats.ErrDomain), "p=%v: %v", p, err)

		var de *stats.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, "p", de.Arg)
	}
}
