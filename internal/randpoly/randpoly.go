// Package randpoly generates ring elements from a seed using a
// counter-mode SHA-256 DRBG, so test and benchmark scenarios pinned to
// a given seed reproduce the same limb pattern on every run.
package randpoly

import (
	"encoding/binary"

	sha256 "github.com/minio/sha256-simd"

	gf2x "gf2xinv.dev"
)

// Source is a deterministic generator of ring elements. Block i of its
// output stream is SHA256(seed || i); successive 32-byte blocks are
// concatenated and sliced into the limbs of each requested element.
type Source struct {
	seed    []byte
	counter uint64
}

// New returns a Source seeded from an arbitrary seed value.
func New(seed uint64) *Source {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, seed)
	return &Source{seed: b}
}

func (s *Source) nextBlock() [32]byte {
	buf := make([]byte, 0, len(s.seed)+8)
	buf = append(buf, s.seed...)
	var cb [8]byte
	binary.LittleEndian.PutUint64(cb[:], s.counter)
	buf = append(buf, cb[:]...)
	s.counter++
	return sha256.Sum256(buf)
}

// fillLimbs writes n pseudorandom 64-bit limbs into out, drawing as
// many 32-byte blocks from the DRBG as required.
func (s *Source) fillLimbs(out []uint64) {
	need := len(out)
	filled := 0
	for filled < need {
		block := s.nextBlock()
		for off := 0; off+8 <= len(block) && filled < need; off += 8 {
			out[filled] = binary.LittleEndian.Uint64(block[off : off+8])
			filled++
		}
	}
}

// Element draws a uniformly random ring element: every active limb is
// filled from the DRBG and the top limb is masked to the prime's bit
// width, per spec.md §4.8's "fill, then mask" contract.
func (s *Source) Element() *gf2x.Poly {
	p := gf2x.NewElement()
	data := p.Data()
	s.fillLimbs(data)
	gf2x.MaskTopLimb(p)
	return p
}

// Coprime draws a random element and repairs it to be coprime with
// x^p-1 by forcing odd Hamming weight when the draw comes up even,
// flipping the constant-term bit. x^p-1 = (x-1)*Phi(x) over F2 and a
// polynomial of even weight is always divisible by x-1=x+1, so forcing
// odd weight is sufficient to guarantee coprimality with the x-1
// factor; the parameter table's primes are chosen so this is also
// sufficient for the rest of the factorisation (spec.md §4.8).
func (s *Source) Coprime() *gf2x.Poly {
	p := s.Element()
	if gf2x.HammingWeight(p)%2 == 0 {
		p.SetCoef(0, p.GetCoef(0)^1)
	}
	return p
}
