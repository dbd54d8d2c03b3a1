package poly

import (
	"encoding/binary"
	"fmt"
	"math"
)

// BinarySize returns the size in bytes of the binary form of p: a uint32
// coefficient count, the IEEE-754 bits of each coefficient, and the
// length-prefixed variable symbol.
func (p Polynomial) BinarySize() int {
	return 4 + 8*len(p.coeffs) + 1 + len(p.variable)
}

// MarshalBinary encodes p into a byte slice of length [Polynomial.BinarySize].
// All integers are written in big-endian order. It returns an error if the
// variable symbol exceeds 255 bytes.
func (p Polynomial) MarshalBinary() ([]byte, error) {
	if len(p.variable) > 255 {
		return nil, fmt.Errorf("cannot MarshalBinary: variable symbol exceeds 255 bytes")
	}
	data := make([]byte, p.BinarySize())
	binary.BigEndian.PutUint32(data, uint32(len(p.coeffs)))
	encodeCoefficients(data[4:], p.coeffs)
	ptr := 4 + 8*len(p.coeffs)
	data[ptr] = uint8(len(p.variable))
	copy(data[ptr+1:], p.variable)
	return data, nil
}

// UnmarshalBinary decodes a byte slice produced by
// [Polynomial.MarshalBinary] on p. The decoded coefficient sequence is
// normalized, so a non-canonical encoding still decodes to the canonical
// polynomial.
func (p *Polynomial) UnmarshalBinary(data []byte) error {
	if len(data) < 5 {
		return fmt.Errorf("cannot UnmarshalBinary: truncated header")
	}
	// the bound is checked in uint64: 8*count can overflow int on 32-bit targets
	count := binary.BigEndian.Uint32(data)
	if 8*uint64(count) > uint64(len(data)-5) {
		return fmt.Errorf("cannot UnmarshalBinary: truncated coefficients")
	}
	ptr := 4 + 8*int(count)
	if vlen := int(data[ptr]); len(data) != ptr+1+vlen {
		return fmt.Errorf("cannot UnmarshalBinary: invalid variable symbol length")
	}
	p.coeffs = normalize(decodeCoefficients(data[4:], int(count)))
	p.variable = string(data[ptr+1:])
	return nil
}

func encodeCoefficients(data []byte, coeffs []float64) {
	for i, c := range coeffs {
		binary.BigEndian.PutUint64(data[8*i:], math.Float64bits(c))
	}
}

func decodeCoefficients(data []byte, count int) []float64 {
	coeffs := make([]float64, count)
	for i := range coeffs {
		coeffs[i] = math.Float64frombits(binary.BigEndian.Uint64(data[8*i:]))
	}
	return coeffs
}
