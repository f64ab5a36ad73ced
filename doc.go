// Package gf2x implements arithmetic in the ring R_p = F2[x]/(x^p - 1) for
// an odd prime p fixed at build configuration time, and five independent
// algorithms for computing the multiplicative inverse of an element
// coprime to x^p - 1: BYI (Bernstein-Yang jump-divstep), FLT
// (Itoh-Tsujii/Fermat exponentiation), CEA (chained Euclidean exponent
// algorithm), TYT (multi-factor Itoh-Tsujii chain), and SAC (shortest
// addition chain).
//
// p is selected by the ExtDeg build constant in config.go; there is no
// runtime-configurable prime. Elements are represented as Poly values
// carrying a fixed-capacity limb sequence; see config.go for the
// inline-vs-heap storage discipline.
package gf2x
