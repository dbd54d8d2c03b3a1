package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFloat(t *testing.T) {
	for _, x := range []interface{}{int(3), int64(3), uint(3), uint64(3), float64(3), big.NewInt(3), big.NewFloat(3)} {
		y, _ := NewFloat(x, 128).Float64()
		require.Equal(t, 3.0, y)
	}

	require.True(t, NewFloat(nil, 128).Sign() == 0)
	require.Equal(t, uint(128), NewFloat(1.0, 128).Prec())
	require.Panics(t, func() { NewFloat("3", 128) })
}

func TestPow(t *testing.T) {
	for _, xy := range [][2]float64{{2, 0.5}, {2, 10}, {1.4142135623730951, 3}, {10, -2}} {
		pow, _ := Pow(NewFloat(xy[0], 53), NewFloat(xy[1], 53)).Float64()
		require.InDelta(t, math.Pow(xy[0], xy[1]), pow, 1e-15)
	}
}
