package gf2x

import "math/bits"

// InvertTYT computes g^-1 mod x^p-1 for a prime decomposed as
// p-2 = r[0]*r[1]*...*r[TYTk-1] + TYTh. It builds a chain array F where
// F[i] = g^(2^(2^i) - 1) (an Itoh-Tsujii doubling chain seeded from g),
// then assembles two separate Horner sweeps against that chain: delta
// over the bits of r[0], and gamma over the bits of TYTh (TYTh never
// has more bits than r[0] in any supported parameter record, so the
// chain built for r[0] already has every entry gamma's sweep needs). Remaining factors r[1..TYTk-1] are folded in one at a time,
// each rebuilding a fresh chain scaled by the product of the factors
// already consumed (N), and re-assembling delta against it.
func InvertTYT(ctx *Ctx, g *Poly) *Poly {
	scratch := NewWideElement()
	mul := func(a, b, out *Poly) { ModMul(a, b, out, scratch) }
	sqrK := func(a *Poly, k int) *Poly {
		out := a.Clone()
		ModSqrK(out, k, scratch)
		return out
	}

	r0 := ctx.TYTr[0]
	q0 := bits.Len(uint(r0))
	t := bits.Len(uint(ctx.TYTh))
	q := q0
	if t > q {
		q = t
	}

	f := make([]*Poly, q)
	f[0] = g.Clone()
	for i := 1; i < q0; i++ {
		tmp := sqrK(f[i-1], 1<<uint(i-1))
		out := NewElement()
		mul(f[i-1], tmp, out)
		f[i] = out
	}

	delta := f[q0-1].Clone()
	for i := q0 - 2; i >= 0; i-- {
		if (r0>>uint(i))&1 == 1 {
			tmp := sqrK(delta, 1<<uint(i))
			out := NewElement()
			mul(tmp, f[i], out)
			delta = out
		}
	}

	h := ctx.TYTh
	gamma := f[t-1].Clone()
	for i := t - 2; i >= 0; i-- {
		if (h>>uint(i))&1 == 1 {
			tmp := sqrK(gamma, 1<<uint(i))
			out := NewElement()
			mul(tmp, f[i], out)
			gamma = out
		}
	}

	n := r0
	for j := 1; j < ctx.TYTk; j++ {
		rj := ctx.TYTr[j]
		qj := bits.Len(uint(rj))

		fj := make([]*Poly, qj)
		fj[0] = delta.Clone()
		for i := 1; i < qj; i++ {
			tmp := sqrK(fj[i-1], n*(1<<uint(i-1)))
			out := NewElement()
			mul(fj[i-1], tmp, out)
			fj[i] = out
		}

		nd := fj[qj-1].Clone()
		for i := qj - 2; i >= 0; i-- {
			if (rj>>uint(i))&1 == 1 {
				tmp := sqrK(nd, n*(1<<uint(i)))
				out := NewElement()
				mul(tmp, fj[i], out)
				nd = out
			}
		}
		delta = nd
		n *= rj
	}

	ModSqrK(gamma, ctx.P-2-h, scratch)
	final := NewElement()
	mul(gamma, delta, final)
	result := NewElement()
	ModSqr(final, result, scratch)
	return result
}
