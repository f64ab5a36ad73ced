package gf2x

// Add computes the elementwise XOR of a and b into c: addition in
// F2[x] never needs reduction, since XOR cannot raise the degree. a
// and b must have equal degree; c may alias either operand.
func Add(a, b, c *Poly) {
	requireSameDeg(a, b)
	requireSameSize(a, b)
	requireSameSize(a, c)
	for i := range a.data {
		c.data[i] = a.data[i] ^ b.data[i]
	}
	c.deg = a.deg
}

// Mul computes the full (unreduced) schoolbook product of a and b into
// c, using clmul64 on every limb pair. c must be zero on entry and
// sized to at least a.size64+b.size64 limbs.
func Mul(a, b, c *Poly) {
	if c.size64 < a.size64+b.size64 {
		panic("gf2x: Mul output buffer too small")
	}
	for i := 0; i < a.size64; i++ {
		ai := a.data[i]
		if ai == 0 {
			continue
		}
		for j := 0; j < b.size64; j++ {
			lo, hi := clmul64(ai, b.data[j])
			c.data[i+j] ^= lo
			c.data[i+j+1] ^= hi
		}
	}
}

// Red reduces h (degree up to 2(p-1)) modulo x^p - 1 into c (degree
// p-1), using x^p == 1: bits at index p+k fold onto index k. The low
// limbs of h below the prime's bit position are copied verbatim, the
// limb straddling bit p-1 is masked, and every higher limb is XORed
// into c after being realigned by lastBlockBits. The realignment's
// look-ahead read of h.data[i+1] is skipped when i+1 is past the end of
// h's buffer, so it never runs off the end even at the final fold; the
// buffers this package passes in are mulBufLimbs long.
func Red(h, c *Poly) {
	if c.size64 != numLimbs {
		panic("gf2x: Red output must have numLimbs limbs")
	}
	for i := 0; i < lastBlockIdx; i++ {
		c.data[i] = h.data[i]
	}
	c.data[lastBlockIdx] = h.data[lastBlockIdx] & lastBlockMask
	for i := lastBlockIdx + 1; i < numLimbs; i++ {
		c.data[i] = 0
	}

	for outIdx := 0; outIdx < numLimbs; outIdx++ {
		i := outIdx + lastBlockIdx
		lo := h.data[i] >> uint(lastBlockBits)
		var hi uint64
		if i+1 < len(h.data) {
			hi = h.data[i+1] << uint(64-lastBlockBits)
		}
		c.data[outIdx] ^= lo | hi
	}
	c.deg = ExtDeg - 1
}

// ModMul computes a*b mod x^p-1 into c, using a caller-provided wide
// scratch buffer (NewWideElement) for the unreduced product.
func ModMul(a, b, c *Poly, scratch *Poly) {
	scratch.Zeroize()
	Mul(a, b, scratch)
	Red(scratch, c)
}

// ModSqr computes a^2 mod x^p-1 into c, squaring each limb with
// clsqr64 directly into the double-width scratch buffer rather than
// going through the general Mul schoolbook loop.
func ModSqr(a, c *Poly, scratch *Poly) {
	scratch.Zeroize()
	for i := 0; i < a.size64; i++ {
		lo, hi := clsqr64(a.data[i])
		scratch.data[2*i] ^= lo
		scratch.data[2*i+1] ^= hi
	}
	Red(scratch, c)
}

// ModSqrK replaces c by c^(2^k) mod x^p-1, as k successive in-place
// squarings sharing one scratch buffer. This is the workhorse of
// FLT, CEA, TYT and SAC, where k ranges up to roughly p-2.
func ModSqrK(c *Poly, k int, scratch *Poly) {
	for i := 0; i < k; i++ {
		ModSqr(c, c, scratch)
	}
}
