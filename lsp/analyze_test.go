package lsp

import (
	"testing"

	"github.com/dhamidi/combi/calc"
	"github.com/google/go-cmp/cmp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(calc.ModeString, 100)
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}
	t.Cleanup(a.Close)
	return a
}

const document = "2*3\n\nx\r\n2*3-7))\n(1+2)*3"

type span struct {
	Line, Start, End uint32
	Message          string
}

func TestDiagnostics(t *testing.T) {
	a := newTestAnalyzer(t)

	var got []span
	for _, d := range a.Diagnostics(document) {
		if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
			t.Errorf("diagnostic %q has severity %v", d.Message, d.Severity)
		}
		got = append(got, span{uint32(d.Range.Start.Line), uint32(d.Range.Start.Character), uint32(d.Range.End.Character), d.Message})
	}

	want := []span{
		{2, 0, 1, `Expected string literal "(" at 0 ("x")`},
		{3, 5, 7, `Unparsed input remains at 5 ("... ))")`},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diagnostics (-want +got):\n%s", diff)
	}
}

func TestDiagnosticsCleanDocument(t *testing.T) {
	a := newTestAnalyzer(t)
	if got := a.Diagnostics("1+1\n\n2*2\n"); len(got) != 0 {
		t.Errorf("Diagnostics = %v, want none", got)
	}
}

func TestHover(t *testing.T) {
	a := newTestAnalyzer(t)

	tests := []struct {
		line     int
		expected string
		ok       bool
	}{
		{0, "= 6", true},
		{1, "", false},
		{2, "", false},
		{4, "= 9", true},
		{9, "", false},
	}

	for _, tt := range tests {
		got, ok := a.Hover(document, tt.line)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("Hover(line %d) = %q, %v, want %q, %v", tt.line, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestEvaluateCached(t *testing.T) {
	a := newTestAnalyzer(t)
	first := a.Evaluate("2*(3+7)")
	a.cache.Wait()
	if _, ok := a.cache.Get("2*(3+7)"); !ok {
		t.Skip("cache admission rejected the entry")
	}
	if second := a.Evaluate("2*(3+7)"); second != first {
		t.Errorf("cached evaluation = %v, want %v", second, first)
	}
}

func TestDiagnosticsCountUTF16(t *testing.T) {
	a := newTestAnalyzer(t)

	var got []span
	for _, d := range a.Diagnostics("(1+2)é\n😀") {
		got = append(got, span{uint32(d.Range.Start.Line), uint32(d.Range.Start.Character), uint32(d.Range.End.Character), ""})
	}
	want := []span{{0, 5, 6, ""}, {1, 0, 2, ""}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diagnostics (-want +got):\n%s", diff)
	}
}

func TestUTF16Column(t *testing.T) {
	tests := []struct {
		line     string
		offset   int
		expected uint32
	}{
		{"abc", 2, 2},
		{"é1", 3, 2},
		{"😀x", 4, 2},
		{"😀x", 5, 3},
	}
	for _, tt := range tests {
		if got := uint32(utf16Column(tt.line, tt.offset)); got != tt.expected {
			t.Errorf("utf16Column(%q, %d) = %d, want %d", tt.line, tt.offset, got, tt.expected)
		}
	}
}
