package randpoly

import (
	"testing"

	gf2x "gf2xinv.dev"
)

func TestElementDeterministicFromSeed(t *testing.T) {
	a := New(42).Element()
	b := New(42).Element()
	if !a.Equal(b) {
		t.Error("the same seed should produce the same element")
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := New(1).Element()
	b := New(2).Element()
	if a.Equal(b) {
		t.Error("different seeds should (overwhelmingly likely) produce different elements")
	}
}

func TestCoprimeHasOddWeight(t *testing.T) {
	src := New(7)
	for i := 0; i < 20; i++ {
		g := src.Coprime()
		if gf2x.HammingWeight(g)%2 != 1 {
			t.Errorf("draw %d: Coprime() produced an even-weight element", i)
		}
	}
}

func TestElementRespectsTopMask(t *testing.T) {
	src := New(99)
	for i := 0; i < 5; i++ {
		g := src.Element()
		for bit := gf2x.ExtDeg; bit < g.Size64()*64; bit++ {
			if g.GetCoef(bit) != 0 {
				t.Errorf("draw %d: bit %d beyond ExtDeg should be masked off", i, bit)
			}
		}
	}
}
