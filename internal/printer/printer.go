// Package printer renders ring elements and parameter records for
// human inspection, grounded on original_source/gf2x_print.c's
// dot-padded hex-block layout.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"

	gf2x "gf2xinv.dev"
)

// limbsPerLine is the number of 64-bit limbs printed per output line,
// matching the reference printer's layout.
const limbsPerLine = 4

// PrintPoly writes p's limbs to w as dot-padded 16-hex-digit blocks,
// most-significant limb first, limbsPerLine per line.
func PrintPoly(w io.Writer, p *gf2x.Poly) {
	data := p.Data()
	for i := len(data) - 1; i >= 0; i-- {
		hex := fmt.Sprintf("%x", data[i])
		if pad := 16 - len(hex); pad > 0 {
			hex = strings.Repeat(".", pad) + hex
		}
		fmt.Fprint(w, hex)
		if i == 0 || (len(data)-i)%limbsPerLine == 0 {
			fmt.Fprintln(w)
		} else {
			fmt.Fprint(w, " ")
		}
	}
}

// DumpCtx writes a field-by-field dump of a parameter record, for
// debugging the parameter table during development.
func DumpCtx(w io.Writer, ctx *gf2x.Ctx) {
	spew.Fdump(w, ctx)
}

// BackendLine reports the active word-arithmetic backend and whether
// the host CPU advertises the carry-less multiply instruction this
// package substitutes a portable kernel for.
func BackendLine() string {
	return fmt.Sprintf("backend=%s hw-clmul=%t", gf2x.BackendName(), gf2x.HardwareClmulAvailable())
}
