package gf2x

import "testing"

func TestInvertFLTMatchesModMulIdentity(t *testing.T) {
	ctx := Params()
	scratch := NewWideElement()
	for _, g := range sampleCoprimes() {
		inv := InvertFLT(ctx, g)
		product := NewElement()
		ModMul(g, inv, product, scratch)
		if !product.IsOne() {
			t.Error("FLT inverse did not multiply back to 1")
		}
	}
}
