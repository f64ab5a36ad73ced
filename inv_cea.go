package gf2x

import "math/bits"

// InvertCEA computes g^-1 mod x^p-1 via the chained Euclidean exponent
// algorithm: given the factorisation p-2 = CEAa*CEAb, it first computes
// gamma = g^(2^CEAa - 1) by a Horner sweep over the bits of CEAa and
// squares it, then runs a second Horner sweep over the bits of CEAb
// with gamma as the base and CEAa-scaled squarings, reaching
// g^(2*(2^(CEAa*CEAb) - 1)) = g^(2^(p-1) - 2), which is g^-1.
func InvertCEA(ctx *Ctx, g *Poly) *Poly {
	scratch := NewWideElement()
	a, b := ctx.CEAa, ctx.CEAb
	s := bits.Len(uint(a))
	t := bits.Len(uint(b))

	gamma := g.Clone()
	for i := s - 2; i >= 0; i-- {
		k := 1 << uint(i)
		tmp := gamma.Clone()
		ModSqrK(gamma, k, scratch)
		ModMul(gamma, tmp, gamma, scratch)
		if (a>>uint(i))&1 == 1 {
			ModSqrK(gamma, k, scratch)
			ModMul(gamma, g, gamma, scratch)
		}
	}
	ModSqrK(gamma, 1, scratch)

	delta := gamma.Clone()
	for i := t - 2; i >= 0; i-- {
		k := a * (1 << uint(i))
		tmp := delta.Clone()
		ModSqrK(delta, k, scratch)
		ModMul(delta, tmp, delta, scratch)
		if (b>>uint(i))&1 == 1 {
			ModSqrK(delta, k, scratch)
			ModMul(delta, gamma, delta, scratch)
		}
	}

	return delta
}
