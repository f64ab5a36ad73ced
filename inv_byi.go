package gf2x

// InvertBYI computes g^-1 mod x^p-1 by running a Bernstein-Yang
// divstep iteration on the reversed polynomials f_rev = x^d + 1 and
// g_rev = reverse(g, d-1), where d = p, accumulating a 2x2 matrix P
// over F2[x] such that P times the column (f_rev, g_rev) collapses to
// (gcd, 0) after 2d-1 divsteps. g^-1 is read off the matrix's
// upper-right entry after realignment and a final bit-reversal.
//
// The matrix bookkeeping here tracks its accumulated denominator in
// bits rather than in 64-bit limbs: each individual divstep divides by
// exactly one power of x, and composing bit-granularity shifts avoids
// the reference implementation's assumption that every recursive leaf
// processes a full 64-step block (the jumpdivstepx schedule below calls
// its leaf with n possibly less than 64, at the boundary between
// levels). The recursive divide-and-conquer shape (split at the
// largest power of two below n, recurse, compose matrices) matches the
// specification; the bottom-level "divstepx_64" is realised here as a
// direct loop over n individual divsteps on plain []uint64 buffers
// rather than the packed bit-parallel coefficient tracking of the
// reference C implementation. This also resolves the reference
// implementation's jnode workspace leak: every level's f/g/matrix
// temporaries are ordinary Go values that go out of scope (and are
// collected) when the recursive call returns, never an explicitly
// allocated and never-freed tree node.

// polyMat is a 2x2 matrix of F2[x] polynomials with an implicit shared
// factor of x^-denom: the true matrix is (1/x^denom) * [[p0,p1],[p2,p3]].
type polyMat struct {
	denom          int
	p0, p1, p2, p3 []uint64
}

func bpZero() []uint64       { return []uint64{0} }
func bpOne() []uint64        { return []uint64{1} }
func bpX() []uint64          { return []uint64{2} }
func bpConst(bit uint64) []uint64 {
	if bit&1 == 0 {
		return bpZero()
	}
	return bpOne()
}

// bpMul computes the full (unreduced) carry-less product of two raw
// limb sequences.
func bpMul(a, b []uint64) []uint64 {
	out := make([]uint64, len(a)+len(b))
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			lo, hi := clmul64(ai, bj)
			out[i+j] ^= lo
			out[i+j+1] ^= hi
		}
	}
	return out
}

// bpXor XORs two raw limb sequences of possibly differing length.
func bpXor(a, b []uint64) []uint64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]uint64, n)
	copy(out, a)
	for i, v := range b {
		out[i] ^= v
	}
	return out
}

// bpShiftRight performs a logical right shift of a raw limb sequence
// by s bits, discarding bits shifted past index 0.
func bpShiftRight(a []uint64, s int) []uint64 {
	if s <= 0 {
		return append([]uint64(nil), a...)
	}
	words := s / 64
	bits := uint(s % 64)
	n := len(a)
	if words >= n {
		return bpZero()
	}
	out := make([]uint64, n-words)
	copy(out, a[words:])
	if bits > 0 {
		for i := range out {
			lo := out[i] >> bits
			var hi uint64
			if i+1 < len(out) {
				hi = out[i+1] << (64 - bits)
			}
			out[i] = lo | hi
		}
	}
	return out
}

func bpCoef0(a []uint64) uint64 {
	if len(a) == 0 {
		return 0
	}
	return a[0] & 1
}

func identityMat() *polyMat {
	return &polyMat{denom: 0, p0: bpOne(), p1: bpZero(), p2: bpZero(), p3: bpOne()}
}

// matPolyMul left-multiplies the column vector (f, g) by m, then
// divides the result by x^m.denom (m's implicit shared factor).
func matPolyMul(m *polyMat, f, g []uint64) (nf, ng []uint64) {
	rawF := bpXor(bpMul(m.p0, f), bpMul(m.p1, g))
	rawG := bpXor(bpMul(m.p2, f), bpMul(m.p3, g))
	return bpShiftRight(rawF, m.denom), bpShiftRight(rawG, m.denom)
}

// matMatMul composes two matrices so that applying the result is
// equivalent to applying p1 first and then p2 (P = P2 . P1).
func matMatMul(p2, p1 *polyMat) *polyMat {
	return &polyMat{
		denom: p1.denom + p2.denom,
		p0:    bpXor(bpMul(p2.p0, p1.p0), bpMul(p2.p1, p1.p2)),
		p1:    bpXor(bpMul(p2.p0, p1.p1), bpMul(p2.p1, p1.p3)),
		p2:    bpXor(bpMul(p2.p2, p1.p0), bpMul(p2.p3, p1.p2)),
		p3:    bpXor(bpMul(p2.p2, p1.p1), bpMul(p2.p3, p1.p3)),
	}
}

// maxpow2 returns the largest power of two strictly less than n.
func maxpow2(n int) int {
	k := 1
	for k*2 < n {
		k *= 2
	}
	return k
}

func truncateRaw(p []uint64, limbs int) []uint64 {
	out := make([]uint64, limbs)
	copy(out, p)
	return out
}

// divstepRun runs n individual divsteps on (f, g), starting from the
// given delta, and returns the updated delta together with the
// accumulated 2x2 transformation matrix. This is the leaf of
// jumpdivstepx's recursion.
func divstepRun(n, delta int, f, g []uint64) (int, *polyMat) {
	acc := identityMat()
	curF := append([]uint64(nil), f...)
	curG := append([]uint64(nil), g...)

	for i := 0; i < n; i++ {
		fb := bpCoef0(curF)
		gb := bpCoef0(curG)

		// The swap is encoded entirely in the matrix's top row (which
		// of f, g carries forward unchanged): row two (the combine
		// step) has the same shape whether or not a swap occurs, so
		// f and g here stay in their original slots and must not
		// also be swapped by hand — matPolyMul applies the matrix
		// to them directly.
		var step *polyMat
		if delta > 0 && gb == 1 {
			delta = -delta
			step = &polyMat{denom: 1, p0: bpZero(), p1: bpX(), p2: bpConst(gb), p3: bpConst(fb)}
		} else {
			step = &polyMat{denom: 1, p0: bpX(), p1: bpZero(), p2: bpConst(gb), p3: bpConst(fb)}
		}

		nf, ng := matPolyMul(step, curF, curG)
		curF, curG = nf, ng
		delta++
		acc = matMatMul(step, acc)
	}

	return delta, acc
}

// jumpdivstepx recurses by splitting n at the largest power of two
// strictly below it, composing the two halves' matrices.
func jumpdivstepx(n, delta int, f, g []uint64) (int, *polyMat) {
	if n <= 64 {
		return divstepRun(n, delta, f, g)
	}
	j := maxpow2(n)
	delta1, p1 := jumpdivstepx(j, delta, f, g)

	f1, g1 := matPolyMul(p1, f, g)
	lim := (n - j + 63) / 64
	f1 = truncateRaw(f1, lim)
	g1 = truncateRaw(g1, lim)

	delta2, p2 := jumpdivstepx(n-j, delta1, f1, g1)
	return delta2, matMatMul(p2, p1)
}

// InvertBYI is the top-level entry point described above.
func InvertBYI(ctx *Ctx, g *Poly) *Poly {
	d := ctx.P

	fRev := make([]uint64, d/64+2)
	fRev[0] = 1
	fRev[d/64] |= uint64(1) << uint(d%64)

	gRevPoly := NewElement()
	Reverse(g, d-1, gRevPoly)
	gRev := append([]uint64(nil), gRevPoly.Data()...)

	n := 2*d - 1
	_, mat := jumpdivstepx(n, 1, fRev, gRev)

	raw := append([]uint64(nil), mat.p1...)
	shiftAmt := mat.denom - (2*d - 2)
	raw = bpShiftRight(raw, shiftAmt)

	rawPoly := NewElement()
	n2 := len(raw)
	if n2 > rawPoly.size64 {
		n2 = rawPoly.size64
	}
	copy(rawPoly.data[:n2], raw[:n2])

	result := NewElement()
	Reverse(rawPoly, d-1, result)
	return result
}
