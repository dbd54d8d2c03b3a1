package poly

import (
	"fmt"

	"github.com/polyops/univar/utils"
)

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	return p.MulScalar(-1)
}

// MulScalar returns u*p.
func (p Polynomial) MulScalar(u float64) Polynomial {
	coeffs := make([]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = u * c
	}
	return Polynomial{coeffs: normalize(coeffs), variable: p.variable}
}

// Add returns p + q. Coefficients are added degree-wise and trailing
// cancellations are trimmed, so the degree of the sum can be smaller than
// the degree of both operands.
func (p Polynomial) Add(q Polynomial) Polynomial {
	coeffs := make([]float64, utils.Max(len(p.coeffs), len(q.coeffs)))
	for i := range coeffs {
		if i < len(p.coeffs) {
			coeffs[i] += p.coeffs[i]
		}
		if i < len(q.coeffs) {
			coeffs[i] += q.coeffs[i]
		}
	}
	return Polynomial{coeffs: normalize(coeffs), variable: p.variable}
}

// Sub returns p - q, computed as p + (-q).
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return p.Add(q.Neg())
}

// Mul returns p * q, the discrete convolution of the two coefficient
// sequences.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p.coeffs) == 0 || len(q.coeffs) == 0 {
		return Polynomial{variable: p.variable}
	}
	coeffs := make([]float64, len(p.coeffs)+len(q.coeffs)-1)
	for i, c := range p.coeffs {
		if c == 0 {
			continue
		}
		for j, d := range q.coeffs {
			coeffs[i+j] += c * d
		}
	}
	return Polynomial{coeffs: normalize(coeffs), variable: p.variable}
}

// Pow returns p raised to the power n, computed as n successive
// multiplications so that p.Pow(n) matches p.Pow(n-1).Mul(p) exactly, also
// for coefficients subject to rounding. Any polynomial to the power 0 is the
// constant polynomial 1, including the zero polynomial. It returns
// ErrInvalidExponent if n is negative.
func (p Polynomial) Pow(n int) (Polynomial, error) {
	if n < 0 {
		return Polynomial{}, fmt.Errorf("cannot Pow: %w: %d", ErrInvalidExponent, n)
	}
	pow := Polynomial{coeffs: []float64{1}, variable: p.variable}
	for i := 0; i < n; i++ {
		pow = pow.Mul(p)
	}
	return pow, nil
}

// Derivative returns the n-th derivative of p. The first derivative maps
// each term c*X^k to k*c*X^(k-1); constants derive to the zero polynomial.
// It returns ErrInvalidExponent if n is negative.
func (p Polynomial) Derivative(n int) (Polynomial, error) {
	if n < 0 {
		return Polynomial{}, fmt.Errorf("cannot Derivative: %w: %d", ErrInvalidExponent, n)
	}
	d := p
	for i := 0; i < n; i++ {
		d = d.derivative()
	}
	return d, nil
}

func (p Polynomial) derivative() Polynomial {
	if len(p.coeffs) <= 1 {
		return Polynomial{variable: p.variable}
	}
	coeffs := make([]float64, len(p.coeffs)-1)
	for k := range coeffs {
		coeffs[k] = float64(k+1) * p.coeffs[k+1]
	}
	return Polynomial{coeffs: normalize(coeffs), variable: p.variable}
}

// Compose returns the polynomial p(q), substituting q for the variable of p.
func (p Polynomial) Compose(q Polynomial) Polynomial {
	out := Polynomial{variable: p.variable}
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		out = out.Mul(q).Add(NewConstant(p.coeffs[i]))
	}
	return out
}
