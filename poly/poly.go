// Package poly implements arithmetic over dense univariate polynomials with
// float64 coefficients.
//
// A polynomial is stored as the sequence of its coefficients in ascending
// degree order, in canonical form: the coefficient of highest degree is never
// zero and the zero polynomial is the empty sequence. All coefficient
// arithmetic follows IEEE-754 float64 semantics. Operations on polynomials
// with integer coefficients are exact as long as every intermediate value
// stays below 2^53; past that point results carry the usual floating-point
// rounding error, which [GetPrecisionStats] can quantify.
//
// Polynomial values are immutable. Every operation returns a new value and
// never mutates its operands, so values can be shared freely across
// goroutines.
package poly

import (
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"
)

// MinusInfinity is the degree of the zero polynomial.
const MinusInfinity = math.MinInt

// defaultVariable is the variable symbol used when none is set.
const defaultVariable = "X"

// Polynomial represents a dense univariate polynomial by the sequence of its
// coefficients, the entry at index i holding the coefficient of degree i.
// The sequence is kept in canonical form: no trailing zero, nil for the zero
// polynomial. The zero value of the type is the zero polynomial and is ready
// to use.
type Polynomial struct {
	coeffs   []float64
	variable string
}

// NewPolynomial creates a new Polynomial from the given coefficients,
// coeffs[i] holding the coefficient of degree i. The slice is deep-copied
// and trailing zero coefficients are dropped, so [1, 2] and [1, 2, 0]
// construct the same polynomial.
func NewPolynomial(coeffs []float64) Polynomial {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return Polynomial{coeffs: normalize(c)}
}

// NewConstant creates the degree-zero polynomial with constant term c, or
// the zero polynomial if c is zero.
func NewConstant(c float64) Polynomial {
	if c == 0 {
		return Polynomial{}
	}
	return Polynomial{coeffs: []float64{c}}
}

// Zero returns the zero polynomial.
func Zero() Polynomial {
	return Polynomial{}
}

// X returns the monomial of the given degree with coefficient 1.
// It panics if degree is negative.
func X(degree int) Polynomial {
	if degree < 0 {
		panic(fmt.Errorf("cannot X: negative degree %d", degree))
	}
	coeffs := make([]float64, degree+1)
	coeffs[degree] = 1
	return Polynomial{coeffs: coeffs}
}

// normalize trims trailing zero coefficients and maps the all-zero sequence
// to nil, the canonical form of the zero polynomial. Negative zeros are
// rewritten to +0 so that equal polynomials share a single coefficient bit
// pattern, which [Polynomial.Digest] relies on. The returned slice aliases
// coeffs, which must be owned by the caller.
func normalize(coeffs []float64) []float64 {
	n := len(coeffs)
	for n > 0 && coeffs[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil
	}
	coeffs = coeffs[:n]
	for i, c := range coeffs {
		if c == 0 {
			// -0.0 compares equal to 0; the assignment clears the sign bit
			coeffs[i] = 0
		}
	}
	return coeffs
}

// Degree returns the degree of p, the largest exponent carrying a non-zero
// coefficient. The degree of the zero polynomial is [MinusInfinity].
func (p Polynomial) Degree() int {
	if len(p.coeffs) == 0 {
		return MinusInfinity
	}
	return len(p.coeffs) - 1
}

// IsZero returns true if p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.coeffs) == 0
}

// Coefficient returns the coefficient of degree k, or 0 if p has no term of
// that degree.
func (p Polynomial) Coefficient(k int) float64 {
	if k < 0 || k >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[k]
}

// Coefficients returns a copy of the coefficients of p in ascending degree
// order, or nil if p is the zero polynomial.
func (p Polynomial) Coefficients() []float64 {
	if len(p.coeffs) == 0 {
		return nil
	}
	coeffs := make([]float64, len(p.coeffs))
	copy(coeffs, p.coeffs)
	return coeffs
}

// Equal returns true if p and q have identical canonical coefficients. The
// comparison is coefficient-wise with ==, so NaN coefficients compare
// unequal. The variable symbol is ignored.
func (p Polynomial) Equal(q Polynomial) bool {
	return cmp.Equal(p.coeffs, q.coeffs)
}

// Variable returns the variable symbol of p, which is "X" unless overridden
// with [Polynomial.WithVariable] or set by a [Parser] bound to another
// symbol.
func (p Polynomial) Variable() string {
	if p.variable == "" {
		return defaultVariable
	}
	return p.variable
}

// WithVariable returns p with its variable symbol set to name. The symbol
// only affects the textual form and is ignored by [Polynomial.Equal].
// It panics if name is empty.
func (p Polynomial) WithVariable(name string) Polynomial {
	if name == "" {
		panic(fmt.Errorf("cannot WithVariable: empty variable symbol"))
	}
	coeffs := make([]float64, len(p.coeffs))
	copy(coeffs, p.coeffs)
	return Polynomial{coeffs: normalize(coeffs), variable: name}
}

// LeadCoefficient returns the non-zero coefficient of highest degree of p.
// It returns ErrZeroPolynomial if p is the zero polynomial, which has no
// such coefficient.
func (p Polynomial) LeadCoefficient() (float64, error) {
	if len(p.coeffs) == 0 {
		return 0, fmt.Errorf("cannot LeadCoefficient: %w", ErrZeroPolynomial)
	}
	return p.coeffs[len(p.coeffs)-1], nil
}

// IsMonic returns true if the lead coefficient of p is exactly 1. The zero
// polynomial is not monic.
func (p Polynomial) IsMonic() bool {
	return len(p.coeffs) != 0 && p.coeffs[len(p.coeffs)-1] == 1
}

// Monic returns the monic polynomial obtained by dividing every coefficient
// of p by its lead coefficient. Coefficients are divided by the lead rather
// than multiplied by its reciprocal, as a*(1/a) does not always round to 1
// in float64, and the lead of the result must be exactly 1. It returns
// ErrZeroPolynomial if p is the zero polynomial.
func (p Polynomial) Monic() (Polynomial, error) {
	lead, err := p.LeadCoefficient()
	if err != nil {
		return Polynomial{}, fmt.Errorf("cannot Monic: %w", ErrZeroPolynomial)
	}
	coeffs := make([]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = c / lead
	}
	return Polynomial{coeffs: normalize(coeffs), variable: p.variable}, nil
}
