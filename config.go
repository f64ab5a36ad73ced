package gf2x

// ExtDeg selects the prime p = F2[x]/(x^p - 1) is built around. This is
// the Go analogue of the reference implementation's -DEXT_DEG compiler
// flag: there is no runtime knob, only this constant. Changing it and
// recompiling is the supported way to retarget the library.
const ExtDeg = 10499

// UseInlineStorage selects the storage discipline for Poly values. When
// true, every Poly carries its limbs in a fixed [maxLimbsInline]uint64 array
// embedded in the struct, trading memory for avoidance of the heap. When
// false, Poly.data is a freshly allocated slice sized at construction.
// Both disciplines share every arithmetic routine in this package; none
// of them inspects how data was backed.
const UseInlineStorage = false

// numLimbs is N = ceil(p/64), the number of 64-bit limbs in a reduced
// element.
const numLimbs = (ExtDeg + 63) / 64

// maxLimbs is M = 2N, the limb count of a double-width product buffer
// before reduction.
const maxLimbs = 2 * numLimbs

// mulBufLimbs is the limb count actually allocated for double-width
// product buffers: M+1, one limb beyond the minimum. Red's fold reads
// at most up to limb M-1 of its input and also bounds-checks its
// look-ahead read, so the extra limb is a spare cushion only.
const mulBufLimbs = maxLimbs + 1

// lastBlockIdx is the index of the limb holding bit p-1.
const lastBlockIdx = (ExtDeg - 1) / 64

// lastBlockBits is the number of live bits (1..64) in the limb at
// lastBlockIdx.
const lastBlockBits = ExtDeg - 64*lastBlockIdx

// lastBlockMask masks a limb down to its low lastBlockBits bits.
const lastBlockMask = (uint64(1)<<uint(lastBlockBits) - 1)

func init() {
	if ExtDeg <= 2 || ExtDeg%2 == 0 {
		panic("gf2x: ExtDeg must be an odd prime greater than 2")
	}
	if lastBlockBits == 0 || lastBlockBits > 64 {
		panic("gf2x: inconsistent last-block bit count")
	}
}
