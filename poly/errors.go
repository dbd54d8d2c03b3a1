package poly

import "errors"

// Sentinel errors returned by the operations of this package. Returned
// errors wrap one of these values with call-site context and should be
// matched with [errors.Is].
var (
	// ErrInvalidExponent is returned when an operation receives a negative
	// exponent or derivation order.
	ErrInvalidExponent = errors.New("invalid exponent")

	// ErrZeroPolynomial is returned by operations that are undefined for the
	// zero polynomial, such as [Polynomial.LeadCoefficient] and
	// [Polynomial.Monic].
	ErrZeroPolynomial = errors.New("zero polynomial")

	// ErrDivisionByZero is returned by [Polynomial.Div] when the divisor is
	// the zero polynomial.
	ErrDivisionByZero = errors.New("division by the zero polynomial")

	// ErrParse is returned by [Parser.Parse] when the input is not a valid
	// textual polynomial.
	ErrParse = errors.New("cannot parse")
)
