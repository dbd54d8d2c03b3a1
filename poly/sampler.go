package poly

import (
	"fmt"

	"github.com/polyops/univar/utils/sampling"
)

// UniformSampler samples polynomials whose coefficients are uniformly
// distributed between min and max, reading its randomness from a
// [sampling.PRNG]. Deterministic sequences of polynomials are obtained by
// providing a [sampling.KeyedPRNG].
type UniformSampler struct {
	prng     sampling.PRNG
	min, max float64
}

// NewUniformSampler creates a new UniformSampler drawing coefficients
// between min and max from prng. It panics if max <= min.
func NewUniformSampler(prng sampling.PRNG, min, max float64) *UniformSampler {
	if max <= min {
		panic(fmt.Errorf("cannot NewUniformSampler: max (%v) <= min (%v)", max, min))
	}
	return &UniformSampler{prng: prng, min: min, max: max}
}

// ReadNew samples a new polynomial of exactly the given degree, resampling
// the lead coefficient until it is non-zero. A negative degree yields the
// zero polynomial.
func (s *UniformSampler) ReadNew(degree int) Polynomial {
	if degree < 0 {
		return Polynomial{}
	}
	coeffs := make([]float64, degree+1)
	for i := range coeffs {
		coeffs[i] = sampling.Float64(s.prng, s.min, s.max)
	}
	for coeffs[degree] == 0 {
		coeffs[degree] = sampling.Float64(s.prng, s.min, s.max)
	}
	return Polynomial{coeffs: coeffs}
}
