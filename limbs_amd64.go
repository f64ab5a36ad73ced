//go:build amd64

package gf2x

import "github.com/klauspost/cpuid/v2"

func init() {
	backendName = "amd64-table"
	hardwareClmulAvailable = cpuid.CPU.Supports(cpuid.CLMUL)
}

// clmulTable holds a[0]*k .. a[15]*k, the carry-less product of a with
// every 4-bit digit, used to multiply 4 bits of b per iteration instead
// of one. hardwareClmulAvailable does not gate this: without hand-written
// assembly there is no faster code path to fall back from, so this
// nibble-table method is used in every amd64 build, selected by the
// build tag alone (see DESIGN.md).
type clmulTable struct {
	lo, hi [16]uint64
}

func buildClmulTable(a uint64) clmulTable {
	var t clmulTable
	t.lo[0], t.hi[0] = 0, 0
	t.lo[1], t.hi[1] = a, 0
	for k := 2; k < 16; k += 2 {
		lo2 := t.lo[k/2] << 1
		hi2 := t.hi[k/2]<<1 | t.lo[k/2]>>63
		t.lo[k], t.hi[k] = lo2, hi2
		t.lo[k+1] = t.lo[k] ^ a
		t.hi[k+1] = t.hi[k]
	}
	return t
}

// clmul64 computes the carry-less product of a and b by consuming b
// four bits at a time against a precomputed table of a's multiples by
// every nibble value.
func clmul64(a, b uint64) (lo, hi uint64) {
	tbl := buildClmulTable(a)
	for i := 15; i >= 0; i-- {
		nib := (b >> uint(4*i)) & 0xf
		hi = hi<<4 | lo>>60
		lo = lo << 4
		lo ^= tbl.lo[nib]
		hi ^= tbl.hi[nib]
	}
	return lo, hi
}

// clsqr64 spreads each bit of a into position 2i; squaring never
// combines distinct source bits so this path never needs the table.
func clsqr64(a uint64) (lo, hi uint64) {
	lo = spread32(uint32(a))
	hi = spread32(uint32(a >> 32))
	return lo, hi
}

func spread32(x uint32) uint64 {
	v := uint64(x)
	v = (v | (v << 16)) & 0x0000ffff0000ffff
	v = (v | (v << 8)) & 0x00ff00ff00ff00ff
	v = (v | (v << 4)) & 0x0f0f0f0f0f0f0f0f
	v = (v | (v << 2)) & 0x3333333333333333
	v = (v | (v << 1)) & 0x5555555555555555
	return v
}

func rev64(x uint64) uint64 {
	x = (x&0x5555555555555555)<<1 | (x>>1)&0x5555555555555555
	x = (x&0x3333333333333333)<<2 | (x>>2)&0x3333333333333333
	x = (x&0x0f0f0f0f0f0f0f0f)<<4 | (x>>4)&0x0f0f0f0f0f0f0f0f
	x = (x&0x00ff00ff00ff00ff)<<8 | (x>>8)&0x00ff00ff00ff00ff
	x = (x&0x0000ffff0000ffff)<<16 | (x>>16)&0x0000ffff0000ffff
	return x<<32 | x>>32
}
