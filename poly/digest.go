package poly

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Digest returns the blake3 hash of the canonical coefficient encoding of
// p. Two polynomials that are [Polynomial.Equal] have the same digest; the
// variable symbol is not hashed, consistently with its exclusion from
// equality.
func (p Polynomial) Digest() [32]byte {
	data := make([]byte, 4+8*len(p.coeffs))
	binary.BigEndian.PutUint32(data, uint32(len(p.coeffs)))
	encodeCoefficients(data[4:], p.coeffs)

	hasher := blake3.New()
	hasher.Write(data)

	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))
	return digest
}
