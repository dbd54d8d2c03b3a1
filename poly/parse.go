package poly

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser parses textual polynomials written as sequences of signed monomials
// in a fixed variable, such as "2*X^2 - 4*X + 6*X^0".
type Parser struct {
	variable string
}

// NewParser creates a new Parser for polynomials written in the given
// variable. It panics if variable is empty.
func NewParser(variable string) *Parser {
	if variable == "" {
		panic(fmt.Errorf("cannot NewParser: empty variable symbol"))
	}
	return &Parser{variable: variable}
}

// Parse parses s with the default variable "X". See [Parser.Parse].
func Parse(s string) (Polynomial, error) {
	return NewParser(defaultVariable).Parse(s)
}

// Parse parses s into a Polynomial. The input is a sequence of signed
// monomials, a missing sign on the first monomial meaning +. Each monomial
// is of the form "coefficient*variable^exponent" where the coefficient is a
// float literal and the exponent a non-negative integer literal; the
// variable alone stands for variable^1, and a bare string of digits for a
// constant term. Monomials landing on the same exponent accumulate, so
// "2*X^2 - 2*X^2" parses to the zero polynomial. It returns ErrParse if any
// monomial is malformed or written in another variable.
func (psr *Parser) Parse(s string) (Polynomial, error) {
	coeffs := []float64{0}
	for _, st := range SplitSignedTerms(s, "+-", '+') {
		exponent, coeff, err := psr.parseMonomial(st.Term)
		if err != nil {
			return Polynomial{}, err
		}
		if st.Sign == '-' {
			coeff = -coeff
		}
		for exponent >= len(coeffs) {
			coeffs = append(coeffs, 0)
		}
		coeffs[exponent] += coeff
	}
	return Polynomial{coeffs: normalize(coeffs), variable: psr.variable}, nil
}

// parseMonomial parses a single unsigned monomial into its exponent and
// coefficient.
func (psr *Parser) parseMonomial(term string) (exponent int, coeff float64, err error) {
	if isNumeric(term) {
		// all-digit input can still exceed the float64 range
		if coeff, err = strconv.ParseFloat(term, 64); err != nil {
			return 0, 0, fmt.Errorf("%w: coefficient %q is out of range", ErrParse, term)
		}
		return 0, coeff, nil
	}

	coeffStr, power, found := strings.Cut(term, "*")
	if !found {
		coeffStr, power = "1", term
	}

	if coeff, err = strconv.ParseFloat(coeffStr, 64); err != nil {
		return 0, 0, fmt.Errorf("%w: coefficient %q is not a number", ErrParse, coeffStr)
	}

	if power == psr.variable {
		power += "^1"
	}

	rest, ok := strings.CutPrefix(power, psr.variable+"^")
	if !ok || !isNumeric(rest) {
		return 0, 0, fmt.Errorf("%w: %q is not a valid power of %s", ErrParse, power, psr.variable)
	}

	if exponent, err = strconv.Atoi(rest); err != nil {
		return 0, 0, fmt.Errorf("%w: exponent %q is out of range", ErrParse, rest)
	}

	return exponent, coeff, nil
}

// isNumeric returns true if s is a non-empty string of decimal digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
