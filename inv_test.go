package gf2x

import "testing"

// sampleCoprimes returns a small deterministic set of elements known to
// be coprime to x^p-1 (odd Hamming weight), without pulling in
// internal/randpoly, to keep this package's tests self-contained.
func sampleCoprimes() []*Poly {
	mk := func(bits ...int) *Poly {
		p := NewElement()
		for _, b := range bits {
			p.SetCoef(b, 1)
		}
		return p
	}
	return []*Poly{
		mk(0),
		mk(0, 1, 2),
		mk(0, 5, 50, 500, 1000),
		mk(0, 1, ExtDeg-1),
		mk(0, 1, 2, 3, 4, 5, 6),
	}
}

func checkIsInverse(t *testing.T, m Method, g, inv *Poly) {
	t.Helper()
	scratch := NewWideElement()
	product := NewElement()
	ModMul(g, inv, product, scratch)
	if !product.IsOne() {
		t.Errorf("%s: g*g^-1 is not 1", m)
	}
}

func TestInvertersProduceInverse(t *testing.T) {
	for _, g := range sampleCoprimes() {
		for _, m := range AllMethods {
			inv := Invert(m, g)
			checkIsInverse(t, m, g, inv)
		}
	}
}

func TestInvertersAgreeWithEachOther(t *testing.T) {
	for _, g := range sampleCoprimes() {
		var reference *Poly
		for _, m := range AllMethods {
			inv := Invert(m, g)
			if reference == nil {
				reference = inv
				continue
			}
			if !inv.Equal(reference) {
				t.Errorf("method %s disagrees with %s on g=%v", m, AllMethods[0], g.Data())
			}
		}
	}
}

func TestInvertersAreInvolutive(t *testing.T) {
	for _, g := range sampleCoprimes() {
		for _, m := range AllMethods {
			inv := Invert(m, g)
			invInv := Invert(m, inv)
			if !invInv.Equal(g) {
				t.Errorf("%s: inverting twice did not return g", m)
			}
		}
	}
}

func TestInvertOneIsOne(t *testing.T) {
	g := one()
	for _, m := range AllMethods {
		inv := Invert(m, g)
		if !inv.IsOne() {
			t.Errorf("%s: inverting 1 should yield 1", m)
		}
	}
}

func TestReverseRoundtrip(t *testing.T) {
	for _, g := range sampleCoprimes() {
		rev := NewElement()
		Reverse(g, ExtDeg-1, rev)
		back := NewElement()
		Reverse(rev, ExtDeg-1, back)
		if !back.Equal(g) {
			t.Error("reverse(reverse(g, p-1), p-1) should equal g")
		}
	}
}
