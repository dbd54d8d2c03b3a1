package poly

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetPrecisionStats(t *testing.T) {
	prec := GetPrecisionStats(sample, sample)
	require.Equal(t, 0.0, prec.MaxDelta)
	require.True(t, math.IsInf(prec.MinPrecision, 1))

	prec = GetPrecisionStats(zero, zero)
	require.True(t, math.IsInf(prec.MinPrecision, 1))

	// perturbing the constant term by 2^-2 leaves 2 bits of precision
	have := sample.Add(NewConstant(0.25))
	prec = GetPrecisionStats(sample, have)
	require.Equal(t, 0.25, prec.MaxDelta)
	require.Equal(t, 2.0, prec.MinPrecision)
	require.Equal(t, 0.0625, prec.MeanDelta)
	require.Equal(t, 0.0, prec.MedianDelta)
	require.InDelta(t, 0.10825317547305482, prec.STDDelta, 1e-15)

	// polynomials of different degrees compare over the longer sequence
	prec = GetPrecisionStats(sample, zero)
	require.Equal(t, 4.0, prec.MaxDelta)

	require.Contains(t, prec.String(), "MIN Prec")
}
