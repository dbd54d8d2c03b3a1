// Package sampling implements sampling of bytes, integers and floats from an
// arbitrary source of randomness, deterministic or secure.
package sampling

import (
	"encoding/binary"
	"io"
)

// Uint64 reads the next 8 bytes of r and returns them as a value between 0 and 0xFFFFFFFFFFFFFFFF.
func Uint64(r io.Reader) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := io.ReadFull(r, b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// Float64 reads the next 8 bytes of r and returns them as a float between min and max.
func Float64(r io.Reader, min, max float64) float64 {
	f := float64(Uint64(r)) / 1.8446744073709552e+19
	return min + f*(max-min)
}
