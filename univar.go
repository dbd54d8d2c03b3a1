/*
Package univar is a pure Go library for dense univariate polynomial arithmetic
over float64 coefficients. It provides construction, evaluation, the ring
operations, Euclidean division, greatest common divisors, differentiation and
a textual parser/printer, together with samplers and numerical-precision
diagnostics for testing.
*/
package univar
