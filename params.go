package gf2x

// sacMaxChain and sacMaxParent bound the length of the SAC addition
// chain and parenthood tables across all seven supported primes,
// mirroring the reference implementation's POLY_INV_SAC_MAX_C /
// POLY_INV_SAC_MAX_A; tytMaxK bounds the number of TYT factors.
const (
	sacMaxChain  = 20
	sacMaxParent = 2 * sacMaxChain
	tytMaxK      = 10
)

// Ctx is the immutable per-prime parameter record consumed by every
// inverter. One is selected at init time from paramTable according to
// ExtDeg; there is no mutable global state and no runtime construction.
type Ctx struct {
	P int

	// CEA: p-2 = CEAa * CEAb.
	CEAa, CEAb int

	// TYT: p-2 = (r[0] * r[1] * ... * r[TYTk-1]) + TYTh.
	TYTh int
	TYTk int
	TYTr [tytMaxK]int

	// SAC: p-2 = SACr * SACn + SACh, SACn a power of two. C is an
	// addition chain of length SACLenC with C[0]=1 and C[SACLenC-1] =
	// SACr; for i >= 1, A[2(i-1)], A[2(i-1)+1] are chain indices whose
	// C-values sum to C[i].
	SACr     int
	SACn     int
	SACh     int
	SACHIdx  int
	SACLenC  int
	SACC     [sacMaxChain]int
	SACA     [sacMaxParent]int
}

var paramTable = map[int]Ctx{
	10499: {
		P: 10499, CEAa: 3, CEAb: 3499,
		TYTh: 1, TYTk: 2, TYTr: [tytMaxK]int{41, 256},
		SACr: 41, SACn: 256, SACh: 1, SACHIdx: 0, SACLenC: 8,
		SACC: [sacMaxChain]int{1, 2, 3, 5, 10, 20, 40, 41},
		SACA: [sacMaxParent]int{0, 0, 0, 1, 1, 2, 3, 3, 4, 4, 5, 5, 0, 6},
	},
	12323: {
		P: 12323, CEAa: 9, CEAb: 1369,
		TYTh: 32, TYTk: 1, TYTr: [tytMaxK]int{12289},
		SACr: 48, SACn: 1 << 8, SACh: 33, SACHIdx: 6, SACLenC: 8,
		SACC: [sacMaxChain]int{1, 2, 4, 8, 16, 32, 33, 48},
		SACA: [sacMaxParent]int{0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 0, 5, 4, 5},
	},
	24659: {
		P: 24659, CEAa: 3, CEAb: 8219,
		TYTh: 4097, TYTk: 2, TYTr: [tytMaxK]int{4112, 5},
		SACr: 96, SACn: 1 << 8, SACh: 81, SACHIdx: 9, SACLenC: 11,
		SACC: [sacMaxChain]int{1, 2, 3, 6, 9, 12, 24, 33, 48, 81, 96},
		SACA: [sacMaxParent]int{0, 0, 0, 1, 2, 2, 2, 3, 2, 4, 5, 5, 4, 6, 6, 6, 7, 8, 8, 8},
	},
	24781: {
		P: 24781, CEAa: 71, CEAb: 349,
		TYTh: 8, TYTk: 2, TYTr: [tytMaxK]int{8257, 3},
		SACr: 193, SACn: 128, SACh: 75, SACHIdx: 8, SACLenC: 12,
		SACC: [sacMaxChain]int{1, 2, 3, 6, 12, 24, 48, 72, 75, 96, 192, 193},
		SACA: [sacMaxParent]int{0, 0, 0, 1, 2, 2, 3, 3, 4, 4, 5, 5, 5, 6, 2, 7, 6, 6, 9, 9, 0, 10},
	},
	27067: {
		P: 27067, CEAa: 5, CEAb: 5413,
		TYTh: 64, TYTk: 2, TYTr: [tytMaxK]int{67, 403},
		SACr: 211, SACn: 128, SACh: 57, SACHIdx: 9, SACLenC: 13,
		SACC: [sacMaxChain]int{1, 2, 3, 5, 6, 12, 13, 26, 52, 57, 104, 208, 211},
		SACA: [sacMaxParent]int{0, 0, 0, 1, 1, 2, 2, 2, 4, 4, 0, 5, 6, 6, 7, 7, 3, 8, 8, 8, 10, 10, 2, 11},
	},
	27581: {
		P: 27581, CEAa: 3, CEAb: 9193,
		TYTh: 32, TYTk: 2, TYTr: [tytMaxK]int{163, 169},
		SACr: 215, SACn: 128, SACh: 59, SACHIdx: 9, SACLenC: 13,
		SACC: [sacMaxChain]int{1, 2, 3, 6, 7, 12, 13, 26, 52, 59, 104, 208, 215},
		SACA: [sacMaxParent]int{0, 0, 0, 1, 2, 2, 0, 3, 3, 3, 0, 5, 6, 6, 7, 7, 4, 8, 8, 8, 10, 10, 4, 11},
	},
	40973: {
		P: 40973, CEAa: 3, CEAb: 13657,
		TYTh: 1, TYTk: 2, TYTr: [tytMaxK]int{10, 4097},
		SACr: 20, SACn: 2048, SACh: 11, SACHIdx: 5, SACLenC: 7,
		SACC: [sacMaxChain]int{1, 2, 3, 5, 10, 11, 20},
		SACA: [sacMaxParent]int{0, 0, 0, 1, 1, 2, 3, 3, 0, 4, 4, 4},
	},
}

// params is the Ctx selected for the build's ExtDeg.
var params Ctx

func init() {
	c, ok := paramTable[ExtDeg]
	if !ok {
		panic("gf2x: unsupported ExtDeg, no parameter record in paramTable")
	}
	if c.P != ExtDeg {
		panic("gf2x: parameter table entry does not match its own key")
	}
	params = c
	if err := params.Validate(); err != nil {
		panic("gf2x: parameter record failed validation: " + err.Error())
	}
}

// Params returns the Ctx selected for this build's ExtDeg.
func Params() *Ctx { return &params }

// Validate checks the decomposition identities every ctx record must
// satisfy: CEAa*CEAb = p-2, the product of the TYT factors plus TYTh =
// p-2, SACr*SACn+SACh = p-2 with SACn a power of two, and the SAC chain's
// well-formedness (C[0]=1 and each C[i] for i>=1 is the sum of two
// earlier chain values as named by A).
func (c *Ctx) Validate() error {
	if c.CEAa*c.CEAb != c.P-2 {
		return errCtx("CEA factorisation does not multiply to p-2")
	}
	prod := 1
	for i := 0; i < c.TYTk; i++ {
		prod *= c.TYTr[i]
	}
	if prod+c.TYTh != c.P-2 {
		return errCtx("TYT decomposition does not sum to p-2")
	}
	if c.SACr*c.SACn+c.SACh != c.P-2 {
		return errCtx("SAC decomposition does not sum to p-2")
	}
	if c.SACn&(c.SACn-1) != 0 {
		return errCtx("SAC n is not a power of two")
	}
	if c.SACLenC < 1 || c.SACC[0] != 1 {
		return errCtx("SAC chain must start at C[0]=1")
	}
	if c.SACC[c.SACLenC-1] != c.SACr {
		return errCtx("SAC chain must end at SACr")
	}
	if c.SACC[c.SACHIdx] != c.SACh {
		return errCtx("SAC chain entry at SACHIdx does not equal SACh")
	}
	for i := 1; i < c.SACLenC; i++ {
		i1, i2 := c.SACA[2*(i-1)], c.SACA[2*(i-1)+1]
		if c.SACC[i1]+c.SACC[i2] != c.SACC[i] {
			return errCtx("SAC chain is not well-formed at index")
		}
	}
	return nil
}

type ctxError string

func (e ctxError) Error() string { return string(e) }

func errCtx(msg string) error { return ctxError(msg) }
