package poly

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyops/univar/utils/bignum"
	"github.com/polyops/univar/utils/sampling"
)

func TestEvaluate(t *testing.T) {
	require.Equal(t, 0.0, zero.Evaluate(2))
	require.Equal(t, 1.0, sample.Evaluate(0))
	require.Equal(t, -1.0, sample.Evaluate(1))
	require.Equal(t, 9.0, sample.Evaluate(2))
	require.Equal(t, 128.0, X(7).Evaluate(2))
	require.Equal(t, 9.0, X(2).Evaluate(-3))
}

func TestEvaluateBig(t *testing.T) {
	// on values where float64 arithmetic is exact, both evaluations agree
	for _, x := range []float64{0, 1, 2, -2, 0.5, -3.25} {
		want := sample.Evaluate(x)
		got, _ := sample.EvaluateBig(big.NewFloat(x)).Float64()
		require.Equal(t, want, got, "x = %v", x)
	}

	got, _ := X(3).EvaluateBig(big.NewFloat(-2)).Float64()
	require.Equal(t, -8.0, got)

	y := zero.EvaluateBig(bignum.NewFloat(7.0, 128))
	require.Equal(t, 0, y.Sign())
	require.Equal(t, uint(128), y.Prec())
}

func TestEvaluateAgreement(t *testing.T) {
	prng, err := sampling.NewKeyedPRNG([]byte("evaluate"))
	require.NoError(t, err)
	sampler := NewUniformSampler(prng, -1, 1)

	// Horner in float64 stays within accumulated rounding of the
	// arbitrary-precision reference
	for i := 0; i < 20; i++ {
		p := sampler.ReadNew(8)
		for _, x := range []float64{-1.5, -0.5, 0.25, 1.25} {
			want, _ := p.EvaluateBig(bignum.NewFloat(x, 128)).Float64()
			require.InDelta(t, want, p.Evaluate(x), 1e-12)
		}
	}
}
