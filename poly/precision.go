package poly

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/polyops/univar/utils"
)

// PrecisionStats is a struct storing statistics about the coefficient-wise
// error of a polynomial relative to a reference polynomial.
type PrecisionStats struct {
	MaxDelta    float64
	MeanDelta   float64
	MedianDelta float64
	STDDelta    float64

	// MinPrecision is -log2 of MaxDelta, the number of exact mantissa bits
	// of the worst coefficient. It is +Inf when the polynomials are equal.
	MinPrecision float64
}

// GetPrecisionStats computes the coefficient-wise absolute error of have
// relative to the reference polynomial want.
func GetPrecisionStats(want, have Polynomial) (prec PrecisionStats) {
	n := utils.Max(len(want.coeffs), len(have.coeffs))
	if n == 0 {
		prec.MinPrecision = math.Inf(1)
		return
	}

	deltas := make([]float64, n)
	for i := range deltas {
		deltas[i] = math.Abs(want.Coefficient(i) - have.Coefficient(i))
	}

	prec.MaxDelta, _ = stats.Max(deltas)
	prec.MeanDelta, _ = stats.Mean(deltas)
	prec.MedianDelta, _ = stats.Median(deltas)
	prec.STDDelta, _ = stats.StandardDeviation(deltas)

	if prec.MaxDelta == 0 {
		prec.MinPrecision = math.Inf(1)
	} else {
		prec.MinPrecision = -math.Log2(prec.MaxDelta)
	}

	return
}

func (prec PrecisionStats) String() string {
	return fmt.Sprintf(`
┌──────────┬───────────┐
│    Delta │   Value   │
├──────────┼───────────┤
│      MAX │ %9.2e │
│     MEAN │ %9.2e │
│   MEDIAN │ %9.2e │
│      STD │ %9.2e │
└──────────┴───────────┘
MIN Prec : %5.2f Log2
`,
		prec.MaxDelta,
		prec.MeanDelta,
		prec.MedianDelta,
		prec.STDDelta,
		prec.MinPrecision)
}
