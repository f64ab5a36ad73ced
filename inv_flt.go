package gf2x

// InvertFLT computes g^-1 mod x^p-1 by Fermat's little theorem:
// g^-1 = g^(2^(p-1) - 2). The exponent is expanded via the
// Itoh-Tsujii doubling identity 2^(p-1) - 2 = 2*(2^(p-2) - 1), walked
// over the binary digits of r2 = (p-2)/2 (p-2 is odd since p is odd,
// so this division is exact after the initial right shift discards
// the low bit). Two running values are kept: c, which doubles its
// chain length (2^i - 1 style exponent) every outer step regardless of
// the current bit, and b, which only advances when the bit is set.
// The final result is b^2.
func InvertFLT(ctx *Ctx, g *Poly) *Poly {
	scratch := NewWideElement()

	b := g.Clone()
	c := g.Clone()
	r2 := (ctx.P - 2) >> 1
	i := 1
	for r2 > 0 {
		k := 1 << uint(i-1)

		tmp := c.Clone()
		ModSqrK(c, k, scratch)
		ModMul(c, tmp, c, scratch)

		if r2&1 == 1 {
			k <<= 1
			ModSqrK(b, k, scratch)
			ModMul(b, c, b, scratch)
		}

		i++
		r2 >>= 1
	}

	result := NewElement()
	ModSqr(b, result, scratch)
	return result
}
