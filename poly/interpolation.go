package poly

import (
	"fmt"

	"github.com/polyops/univar/utils"
)

// Interpolate returns the Lagrange interpolation polynomial through the
// points (xs[i], ys[i]): the unique polynomial of degree at most len(xs)-1
// taking value ys[i] at each node xs[i]. It returns an error if the two
// slices have different lengths, are empty, or if the nodes are not
// pairwise distinct.
func Interpolate(xs, ys []float64) (Polynomial, error) {
	if len(xs) != len(ys) {
		return Polynomial{}, fmt.Errorf("cannot Interpolate: %d nodes for %d values", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return Polynomial{}, fmt.Errorf("cannot Interpolate: empty node list")
	}
	if !utils.AllDistinct(xs) {
		return Polynomial{}, fmt.Errorf("cannot Interpolate: nodes must be pairwise distinct")
	}

	var out Polynomial
	for i, xi := range xs {
		basis := Polynomial{coeffs: []float64{1}}
		den := 1.0
		for j, xj := range xs {
			if j == i {
				continue
			}
			basis = basis.Mul(Polynomial{coeffs: []float64{-xj, 1}})
			den *= xi - xj
		}
		out = out.Add(basis.MulScalar(ys[i] / den))
	}
	return out, nil
}
