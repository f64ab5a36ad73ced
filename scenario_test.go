package gf2x_test

import (
	"testing"

	gf2x "gf2xinv.dev"
	"gf2xinv.dev/internal/randpoly"
)

// TestScenarioFixedSeedAllMethodsAgree reproduces the fixed-seed
// scenario (p=10499, seed 42): every inverter must land on the same
// element and that element must multiply g back to 1.
func TestScenarioFixedSeedAllMethodsAgree(t *testing.T) {
	if gf2x.ExtDeg != 10499 {
		t.Skip("scenario is defined for ExtDeg=10499")
	}
	src := randpoly.New(42)
	g := src.Coprime()

	scratch := gf2x.NewWideElement()
	var reference *gf2x.Poly
	for _, m := range gf2x.AllMethods {
		inv := gf2x.Invert(m, g)
		product := gf2x.NewElement()
		gf2x.ModMul(g, inv, product, scratch)
		if !product.IsOne() {
			t.Fatalf("%s: g*g^-1 != 1 for fixed-seed scenario", m)
		}
		if reference == nil {
			reference = inv
		} else if !inv.Equal(reference) {
			t.Fatalf("%s disagrees with %s on fixed-seed g", m, gf2x.AllMethods[0])
		}
	}
}

// TestScenarioBIKECorrectnessCounts reproduces the p=12323 (BIKE)
// 10/10 correctness scenario: ten independently sampled coprime g's
// must each invert correctly under every enabled method.
func TestScenarioBIKECorrectnessCounts(t *testing.T) {
	if gf2x.ExtDeg != 12323 {
		t.Skip("scenario is defined for ExtDeg=12323 (BIKE)")
	}
	src := randpoly.New(1)
	scratch := gf2x.NewWideElement()
	for i := 0; i < 10; i++ {
		g := src.Coprime()
		for _, m := range gf2x.AllMethods {
			inv := gf2x.Invert(m, g)
			product := gf2x.NewElement()
			gf2x.ModMul(g, inv, product, scratch)
			if !product.IsOne() {
				t.Fatalf("%s: sample %d failed to invert correctly", m, i)
			}
		}
	}
}
