package vision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFitRobustLine_Perfect(t *testing.T) {
	var pts []samplePoint
	for i := 0; i < 9; i++ {
		x := float64(40 * (i + 1))
		pts = append(pts, samplePoint{T: x, V: 0.5*x + 3})
	}

	line := fitRobustLine(pts, 2.0)
	require.True(t, line.Valid)
	require.InDelta(t, 0.5, line.Slope, 1e-9)
	require.InDelta(t, 3.0, line.Intercept, 1e-9)
}

func TestFitRobustLine_IgnoresOutliers(t *testing.T) {
	var pts []samplePoint
	for i := 0; i < 8; i++ {
		pts = append(pts, samplePoint{T: float64(10 * i), V: 100})
	}
	// Два грубых выброса — например, сечения, задевшие вторую линию.
	pts = append(pts, samplePoint{T: 35, V: 250}, samplePoint{T: 55, V: 10})

	line := fitRobustLine(pts, 2.0)
	require.True(t, line.Valid)
	require.InDelta(t, 0.0, line.Slope, 1e-9)
	require.InDelta(t, 100.0, line.Intercept, 1e-9)
}

func TestFitRobustLine_TooFewPoints(t *testing.T) {
	require.False(t, fitRobustLine(nil, 2.0).Valid)
	require.False(t, fitRobustLine([]samplePoint{{T: 1, V: 1}}, 2.0).Valid)
}

func TestFitRobustLine_SingularSamePosition(t *testing.T) {
	pts := []samplePoint{{T: 5, V: 1}, {T: 5, V: 2}, {T: 5, V: 3}}
	require.False(t, fitRobustLine(pts, 2.0).Valid)
}

func TestFitRobustLine_TwoPoints(t *testing.T) {
	line := fitRobustLine([]samplePoint{{T: 0, V: 10}, {T: 10, V: 20}}, 2.0)
	require.True(t, line.Valid)
	require.InDelta(t, 1.0, line.Slope, 1e-9)
	require.InDelta(t, 10.0, line.Intercept, 1e-9)
}
