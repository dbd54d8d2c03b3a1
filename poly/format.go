package poly

import (
	"fmt"
	"strings"
)

// String returns the textual form of p: its non-zero monomials in ascending
// degree order, each carrying an explicit sign, such as
// "+ 1*X^0 - 4*X^1 + 2*X^3". The zero polynomial prints as "0". The output
// parses back to the same polynomial with [Parse], as long as no
// coefficient prints in exponent notation.
func (p Polynomial) String() string {
	if len(p.coeffs) == 0 {
		return "0"
	}

	parts := make([]string, 0, len(p.coeffs))
	for i, c := range p.coeffs {
		if c > 0 {
			parts = append(parts, fmt.Sprintf("+ %v*%s^%d", c, p.Variable(), i))
		} else if c < 0 {
			parts = append(parts, fmt.Sprintf("- %v*%s^%d", -c, p.Variable(), i))
		}
	}
	return strings.Join(parts, " ")
}
