package poly

import (
	"fmt"
)

// Div performs the Euclidean division of p by divisor, returning the unique
// quotient and remainder such that p = quo*divisor + rem with the degree of
// rem strictly smaller than the degree of divisor. It returns
// ErrDivisionByZero if divisor is the zero polynomial.
func (p Polynomial) Div(divisor Polynomial) (quo, rem Polynomial, err error) {
	if divisor.IsZero() {
		return Polynomial{}, Polynomial{}, fmt.Errorf("cannot Div: %w", ErrDivisionByZero)
	}
	quo, rem = p.div(divisor)
	return quo, rem, nil
}

// div runs the schoolbook long division loop. The divisor must not be the
// zero polynomial. Each round eliminates the lead of the running remainder
// by truncation rather than by subtraction, so that rounding noise cannot
// keep the remainder degree from strictly decreasing; the loop runs at most
// deg(p)-deg(divisor)+1 rounds.
func (p Polynomial) div(divisor Polynomial) (quo, rem Polynomial) {
	m := len(divisor.coeffs) - 1
	if len(p.coeffs)-1 < m {
		return Polynomial{variable: p.variable}, p
	}

	lead := divisor.coeffs[m]
	quoCoeffs := make([]float64, len(p.coeffs)-m)
	remCoeffs := make([]float64, len(p.coeffs))
	copy(remCoeffs, p.coeffs)

	for len(remCoeffs) > m {
		k := len(remCoeffs) - 1
		c := remCoeffs[k] / lead
		quoCoeffs[k-m] = c
		for j := 0; j < m; j++ {
			remCoeffs[k-m+j] -= c * divisor.coeffs[j]
		}
		remCoeffs = remCoeffs[:k]
		for len(remCoeffs) > 0 && remCoeffs[len(remCoeffs)-1] == 0 {
			remCoeffs = remCoeffs[:len(remCoeffs)-1]
		}
	}

	quo = Polynomial{coeffs: normalize(quoCoeffs), variable: p.variable}
	rem = Polynomial{coeffs: normalize(remCoeffs), variable: p.variable}
	return
}

// GCD returns the greatest common divisor of p and q, normalized to be
// monic so that the result is unique. The GCD of two zero polynomials is
// the zero polynomial. The computation follows the Euclidean algorithm,
// iterating p, q = q, p mod q until q vanishes; with float64 coefficients
// an exact common factor can be missed when rounding leaves a tiny non-zero
// remainder, which is inherent to the coefficient type and not reported as
// an error.
func GCD(p, q Polynomial) Polynomial {
	for !q.IsZero() {
		_, r := p.div(q)
		p, q = q, r
	}
	if p.IsZero() {
		return p
	}
	monic, _ := p.Monic() // p is non-zero here
	return monic
}
