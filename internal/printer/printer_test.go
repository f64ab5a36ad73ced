package printer

import (
	"bytes"
	"strings"
	"testing"

	gf2x "gf2xinv.dev"
)

func TestPrintPolyContainsDottedPadding(t *testing.T) {
	p := gf2x.NewElement()
	p.SetCoef(0, 1)

	var buf bytes.Buffer
	PrintPoly(&buf, p)

	out := buf.String()
	if !strings.Contains(out, ".") {
		t.Error("expected dot-padded short hex blocks in output")
	}
	if !strings.HasSuffix(strings.TrimRight(out, "\n"), "1") {
		t.Error("expected the low limb's hex digits at the end of the output")
	}
}

func TestDumpCtxWritesSomething(t *testing.T) {
	var buf bytes.Buffer
	DumpCtx(&buf, gf2x.Params())
	if buf.Len() == 0 {
		t.Error("DumpCtx should write a non-empty dump")
	}
}

func TestBackendLineMentionsBackend(t *testing.T) {
	line := BackendLine()
	if !strings.Contains(line, "backend=") {
		t.Errorf("expected BackendLine to report the backend, got %q", line)
	}
}
