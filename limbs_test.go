package gf2x

import "testing"

func TestRev64Involution(t *testing.T) {
	cases := []uint64{0, 1, ^uint64(0), 0x0123456789abcdef, 1 << 63}
	for _, x := range cases {
		if got := rev64(rev64(x)); got != x {
			t.Errorf("rev64(rev64(%#x)) = %#x, want %#x", x, got, x)
		}
	}
}

func TestClmul64Commutative(t *testing.T) {
	cases := [][2]uint64{
		{0, 0}, {1, 1}, {7, 13}, {0xffffffffffffffff, 3}, {1 << 40, 1 << 30},
	}
	for _, c := range cases {
		lo1, hi1 := clmul64(c[0], c[1])
		lo2, hi2 := clmul64(c[1], c[0])
		if lo1 != lo2 || hi1 != hi2 {
			t.Errorf("clmul64(%#x,%#x) not commutative", c[0], c[1])
		}
	}
}

func TestClmul64Zero(t *testing.T) {
	lo, hi := clmul64(0, 12345)
	if lo != 0 || hi != 0 {
		t.Error("clmul64 by zero should be zero")
	}
}

func TestClmul64ByOneIsIdentity(t *testing.T) {
	cases := []uint64{0, 1, 42, 0xdeadbeefcafebabe}
	for _, x := range cases {
		lo, hi := clmul64(x, 1)
		if lo != x || hi != 0 {
			t.Errorf("clmul64(%#x, 1) = (%#x,%#x), want (%#x,0)", x, lo, hi, x)
		}
	}
}

func TestClsqr64MatchesClmul64Square(t *testing.T) {
	cases := []uint64{0, 1, 2, 255, 0x0123456789abcdef, ^uint64(0)}
	for _, x := range cases {
		wantLo, wantHi := clmul64(x, x)
		gotLo, gotHi := clsqr64(x)
		if gotLo != wantLo || gotHi != wantHi {
			t.Errorf("clsqr64(%#x) = (%#x,%#x), want (%#x,%#x)", x, gotLo, gotHi, wantLo, wantHi)
		}
	}
}
