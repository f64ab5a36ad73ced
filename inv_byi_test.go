package gf2x

import "testing"

func TestInvertBYIMatchesModMulIdentity(t *testing.T) {
	ctx := Params()
	scratch := NewWideElement()
	for _, g := range sampleCoprimes() {
		inv := InvertBYI(ctx, g)
		product := NewElement()
		ModMul(g, inv, product, scratch)
		if !product.IsOne() {
			t.Error("BYI inverse did not multiply back to 1")
		}
	}
}

func TestInvertBYIMatchesFLT(t *testing.T) {
	ctx := Params()
	for _, g := range sampleCoprimes() {
		if !InvertBYI(ctx, g).Equal(InvertFLT(ctx, g)) {
			t.Error("BYI and FLT should agree")
		}
	}
}

func TestMaxpow2(t *testing.T) {
	cases := map[int]int{2: 1, 3: 2, 4: 2, 5: 4, 64: 32, 65: 64, 127: 64, 128: 64}
	for n, want := range cases {
		if got := maxpow2(n); got != want {
			t.Errorf("maxpow2(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestBpShiftRightByZeroIsCopy(t *testing.T) {
	a := []uint64{1, 2, 3}
	got := bpShiftRight(a, 0)
	for i := range a {
		if got[i] != a[i] {
			t.Errorf("shift by 0 should copy input, index %d: got %d want %d", i, got[i], a[i])
		}
	}
}

func TestBpShiftRightWholeWords(t *testing.T) {
	a := []uint64{1, 2, 3}
	got := bpShiftRight(a, 128)
	if len(got) != 1 || got[0] != 3 {
		t.Errorf("shift by 128 bits should leave the top limb alone, got %v", got)
	}
}
