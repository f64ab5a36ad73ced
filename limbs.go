package gf2x

// clmul64 computes the carry-less (F2[x]) product of two 64-bit limbs,
// returning the 128-bit result split into its low and high 64-bit
// halves: lo holds coefficients of degree 0..63, hi holds degree
// 64..126. The three build-tag-selected implementations (amd64, arm64,
// and the portable fallback) are required to be bit-exact with each
// other; none of the ring arithmetic above this layer cares which one
// is linked in.
//
// clsqr64 computes the carry-less square of a single limb, equivalent
// to clmul64(a, a) but implemented by bit-interleaving rather than by
// the general comb method, since squaring in F2[x] never needs to
// combine distinct source bits.
//
// rev64 reverses the bit order of a 64-bit word.
//
// These three functions are declared per architecture in limbs_amd64.go,
// limbs_arm64.go and limbs_generic.go.

// backendName reports which clmul64/clsqr64 implementation this build
// linked in, for internal/printer's diagnostic dump.
var backendName = "generic"

// BackendName returns the name of the word-primitive backend selected
// for this build: "amd64-table", "arm64-table", or "generic".
func BackendName() string { return backendName }

// hardwareClmulAvailable records whether this process's CPU was probed
// and found to advertise a hardware carry-less multiply instruction
// (PCLMULQDQ on amd64, PMULL on arm64). It is informational only: every
// backend in this package is pure Go, so the probe result does not
// change which code path runs. See DESIGN.md for why no Go assembly
// binds to the hardware instruction directly.
var hardwareClmulAvailable bool

// HardwareClmulAvailable reports the outcome of the CPU feature probe
// performed at package init.
func HardwareClmulAvailable() bool { return hardwareClmulAvailable }
