package gf2x

// Method identifies one of the five inversion algorithms. The library
// always exposes all five; Method exists only so callers that want to
// iterate over them (test harnesses, table-driven tests) have a value
// to range over. There is no build-time dispatch on Method — that was
// an artefact of the reference test driver's source layout, not a
// property of the algorithms themselves.
type Method int

const (
	MethodBYI Method = iota
	MethodFLT
	MethodCEA
	MethodTYT
	MethodSAC
)

func (m Method) String() string {
	switch m {
	case MethodBYI:
		return "BYI"
	case MethodFLT:
		return "FLT"
	case MethodCEA:
		return "CEA"
	case MethodTYT:
		return "TYT"
	case MethodSAC:
		return "SAC"
	default:
		return "unknown"
	}
}

// AllMethods lists every inverter this package implements, in a stable
// order.
var AllMethods = []Method{MethodBYI, MethodFLT, MethodCEA, MethodTYT, MethodSAC}

// Invert computes g^-1 mod x^p-1 using the named method, against the
// build's selected Ctx. g must be coprime to x^p-1. No method checks
// this: for a non-coprime g the returned element is not an inverse and
// no panic is raised.
func Invert(m Method, g *Poly) *Poly {
	ctx := Params()
	switch m {
	case MethodBYI:
		return InvertBYI(ctx, g)
	case MethodFLT:
		return InvertFLT(ctx, g)
	case MethodCEA:
		return InvertCEA(ctx, g)
	case MethodTYT:
		return InvertTYT(ctx, g)
	case MethodSAC:
		return InvertSAC(ctx, g)
	default:
		panic("gf2x: unknown inversion method")
	}
}
