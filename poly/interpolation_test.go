package poly

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterpolate(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = sample.Evaluate(x)
	}

	p, err := Interpolate(xs, ys)
	require.NoError(t, err)
	require.LessOrEqual(t, p.Degree(), 3)
	for i, x := range xs {
		require.InDelta(t, ys[i], p.Evaluate(x), 1e-9)
	}

	// four nodes determine the degree-3 polynomial up to rounding
	prec := GetPrecisionStats(sample, p)
	require.Less(t, prec.MaxDelta, 1e-9)
}

func TestInterpolateConstant(t *testing.T) {
	p, err := Interpolate([]float64{2}, []float64{5})
	require.NoError(t, err)
	require.True(t, p.Equal(NewConstant(5)))
}

func TestInterpolateErrors(t *testing.T) {
	_, err := Interpolate([]float64{1, 2}, []float64{1})
	require.Error(t, err)

	_, err = Interpolate(nil, nil)
	require.Error(t, err)

	_, err = Interpolate([]float64{1, 1}, []float64{2, 3})
	require.Error(t, err)
}
