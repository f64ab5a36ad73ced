package gf2x

import "math/bits"

// InvertSAC computes g^-1 mod x^p-1 from a precomputed shortest
// addition chain. SACC is a chain of exponents with SACC[0]=1 and
// SACC[SACLenC-1]=SACr; SACA names, for each chain entry beyond the
// first, the two earlier entries whose exponents sum to it. L[i] is
// built to equal g^(2^SACC[i] - 1) for every chain entry, giving
// L[SACLenC-1] = g^(2^SACr - 1) and L[SACHIdx] = g^(2^SACh - 1) without
// recomputing either from scratch. p-2 = SACr*SACn + SACh drives the
// final exponentiation: a Horner sweep over the bits of SACn extends
// the chain's top entry g^(2^SACr - 1) to g^(2^(SACr*SACn) - 1), then
// SACh folds in the remainder and a final squaring gives g^-1.
func InvertSAC(ctx *Ctx, g *Poly) *Poly {
	scratch := NewWideElement()
	mul := func(a, b, out *Poly) { ModMul(a, b, out, scratch) }

	l := make([]*Poly, ctx.SACLenC)
	l[0] = g.Clone()
	for i := 1; i < ctx.SACLenC; i++ {
		i1 := ctx.SACA[2*(i-1)]
		i2 := ctx.SACA[2*(i-1)+1]
		tmp := l[i1].Clone()
		ModSqrK(tmp, ctx.SACC[i2], scratch)
		out := NewElement()
		mul(l[i2], tmp, out)
		l[i] = out
	}

	deltaR := l[ctx.SACLenC-1]
	deltaH := l[ctx.SACHIdx]

	gamma := deltaR.Clone()
	nBits := bits.Len(uint(ctx.SACn))
	for i := nBits - 2; i >= 0; i-- {
		k := ctx.SACr * (1 << uint(i))

		tmp := gamma.Clone()
		ModSqrK(tmp, k, scratch)
		out := NewElement()
		mul(gamma, tmp, out)
		gamma = out

		if (ctx.SACn>>uint(i))&1 == 1 {
			tmp2 := gamma.Clone()
			ModSqrK(tmp2, k, scratch)
			out2 := NewElement()
			mul(deltaR, tmp2, out2)
			gamma = out2
		}
	}

	if ctx.SACh == 0 {
		return gamma
	}

	ModSqrK(gamma, ctx.SACh, scratch)
	delta := NewElement()
	mul(deltaH, gamma, delta)
	result := NewElement()
	ModSqr(delta, result, scratch)
	return result
}
