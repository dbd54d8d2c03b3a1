package poly

import (
	"math/big"

	"github.com/polyops/univar/utils/bignum"
)

// Evaluate returns p(x), computed with Horner's rule in float64 arithmetic.
func (p Polynomial) Evaluate(x float64) float64 {
	if len(p.coeffs) == 0 {
		return 0
	}
	y := p.coeffs[len(p.coeffs)-1]
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		y = y*x + p.coeffs[i]
	}
	return y
}

// EvaluateBig returns p(x) computed in arbitrary precision. The precision
// of x is used as the reference precision of the result. Each term is
// evaluated separately, avoiding the intermediate rounding of Horner's
// rule, which makes EvaluateBig a reference to measure the error of
// [Polynomial.Evaluate].
func (p Polynomial) EvaluateBig(x *big.Float) (y *big.Float) {
	prec := x.Prec()
	y = bignum.NewFloat(nil, prec)

	if len(p.coeffs) == 0 {
		return
	}

	// bignum.Pow requires a non-negative base: powers are taken on |x| and
	// the sign restored from the parity of the exponent.
	ax := new(big.Float).Abs(x)
	neg := x.Sign() < 0

	for i, c := range p.coeffs {
		if c == 0 {
			continue
		}
		term := bignum.NewFloat(c, prec)
		if i > 0 {
			xi := bignum.Pow(ax, bignum.NewFloat(i, prec))
			if neg && i&1 == 1 {
				xi.Neg(xi)
			}
			term.Mul(term, xi)
		}
		y.Add(y, term)
	}

	return
}
